package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestOpenAppliesMigrations(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cfg := DefaultConnectionConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "nested", "submissions.db")
	cfg.Logger = logger

	db, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'submissions'").Scan(&name)
	if err != nil {
		t.Fatalf("submissions table not created: %v", err)
	}

	version, err := NewMigrationManager(db, logger).Version()
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if version != 1 {
		t.Errorf("Expected migration version 1, got %d", version)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cfg := DefaultConnectionConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "submissions.db")
	cfg.Logger = logger

	db, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := NewMigrationManager(db, logger).RunMigrations(); err != nil {
		t.Fatalf("Second RunMigrations() error = %v", err)
	}
}

func TestRollbackDropsSubmissions(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cfg := DefaultConnectionConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "submissions.db")
	cfg.Logger = logger

	db, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	manager := NewMigrationManager(db, logger)
	if err := manager.Rollback(); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'submissions'").Scan(&count); err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if count != 0 {
		t.Error("submissions table still present after Rollback()")
	}

	version, err := manager.Version()
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if version != 0 {
		t.Errorf("Expected migration version 0 after rollback, got %d", version)
	}
}
