package repositories

import (
	"context"
	"errors"
	"testing"

	"contact-form-api/internal/models"
)

func TestMemorySubmissionRepository_Put(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	defer repo.Close()

	ctx := context.Background()
	phone := ""

	tests := []struct {
		name       string
		submission *models.Submission
		wantErr    error
	}{
		{
			name:       "store submission",
			submission: &models.Submission{ID: "a", Name: "Jo", Email: "jo@x.com", Problem: "leak"},
		},
		{
			name:       "store submission with empty phone",
			submission: &models.Submission{ID: "b", Name: "Jo", Email: "jo@x.com", Phone: &phone, Problem: "leak"},
		},
		{
			name:       "same id is appended again",
			submission: &models.Submission{ID: "a", Name: "Jo", Email: "jo@x.com", Problem: "leak"},
		},
		{
			name:    "nil submission",
			wantErr: ErrInvalidEntity,
		},
		{
			name:       "missing id",
			submission: &models.Submission{Name: "Jo"},
			wantErr:    ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Put(ctx, tt.submission)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Put() unexpected error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Put() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	stored := repo.Submissions()
	if len(stored) != 3 {
		t.Fatalf("Expected 3 stored submissions, got %d", len(stored))
	}
	if stored[0].HasPhone() {
		t.Error("First submission should have no phone")
	}
	if !stored[1].HasPhone() || *stored[1].Phone != "" {
		t.Error("Second submission should keep its empty phone")
	}
}

func TestMemorySubmissionRepository_FailPuts(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx := context.Background()
	storeErr := errors.New("table unavailable")

	repo.FailPuts(storeErr)
	err := repo.Put(ctx, &models.Submission{ID: "a"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("Expected wrapped store error, got %v", err)
	}
	if !IsRepositoryError(err) {
		t.Error("Expected a RepositoryError")
	}
	if repo.Count() != 0 {
		t.Errorf("Failed put should not store anything, count = %d", repo.Count())
	}

	repo.FailPuts(nil)
	if err := repo.Put(ctx, &models.Submission{ID: "a"}); err != nil {
		t.Fatalf("Put after reset failed: %v", err)
	}
	if repo.Count() != 1 {
		t.Errorf("Expected 1 stored submission, got %d", repo.Count())
	}
}

func TestMemorySubmissionRepository_CancelledContext(t *testing.T) {
	repo := NewMemorySubmissionRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Put(ctx, &models.Submission{ID: "a"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}
