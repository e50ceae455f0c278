package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"contact-form-api/internal/database"
	"contact-form-api/internal/models"
	"contact-form-api/internal/repositories"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cfg := database.DefaultConnectionConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "submissions.db")
	cfg.Logger = logger

	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db
}

func TestSubmissionRepository_Put(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db, nil)
	defer repo.Close()

	ctx := context.Background()
	empty := ""
	phone := "0400 000 000"

	submissions := []*models.Submission{
		{ID: "a", CreatedAt: "2024-03-05T13:07:09.123456Z", Name: "Jo", Email: "jo@x.com", Problem: "leak"},
		{ID: "b", CreatedAt: "2024-03-05T13:07:10.000000Z", Name: "Al", Email: "al@x.com", Phone: &empty, Problem: "noise"},
		{ID: "c", CreatedAt: "2024-03-05T13:07:11.000000Z", Name: "Mo", Email: "mo@x.com", Phone: &phone, Problem: "draft"},
	}

	for _, s := range submissions {
		if err := repo.Put(ctx, s); err != nil {
			t.Fatalf("Put(%s) error = %v", s.ID, err)
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM submissions").Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != len(submissions) {
		t.Fatalf("Expected %d rows, got %d", len(submissions), count)
	}

	tests := []struct {
		id        string
		wantPhone sql.NullString
	}{
		{id: "a", wantPhone: sql.NullString{}},
		{id: "b", wantPhone: sql.NullString{String: "", Valid: true}},
		{id: "c", wantPhone: sql.NullString{String: phone, Valid: true}},
	}

	for _, tt := range tests {
		var got sql.NullString
		if err := db.QueryRowContext(ctx, "SELECT phone FROM submissions WHERE id = ?", tt.id).Scan(&got); err != nil {
			t.Fatalf("Failed to read phone for %s: %v", tt.id, err)
		}
		if got != tt.wantPhone {
			t.Errorf("phone for %s = %+v, want %+v", tt.id, got, tt.wantPhone)
		}
	}
}

func TestSubmissionRepository_PutRejectsEmptyRequiredField(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db, nil)
	defer repo.Close()

	err := repo.Put(context.Background(), &models.Submission{ID: "a", CreatedAt: "x", Name: "", Email: "jo@x.com", Problem: "leak"})
	if err == nil {
		t.Fatal("Expected CHECK constraint failure for empty name")
	}
	if !repositories.IsRepositoryError(err) {
		t.Errorf("Expected RepositoryError, got %T", err)
	}
}

func TestSubmissionRepository_PutInvalid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubmissionRepository(db, nil)
	defer repo.Close()

	err := repo.Put(context.Background(), nil)
	if !errors.Is(err, repositories.ErrInvalidEntity) {
		t.Fatalf("Expected ErrInvalidEntity, got %v", err)
	}
}
