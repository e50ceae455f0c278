package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// MemoryPath opens a private in-memory database instead of a file
const MemoryPath = ":memory:"

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	DatabasePath    string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Logger          *logrus.Logger
}

// DefaultConnectionConfig returns a default configuration
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		DatabasePath:    "./data/submissions.db",
		MaxOpenConns:    1, // SQLite works best with single connection
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		Logger:          logrus.StandardLogger(),
	}
}

// Open opens the SQLite database, verifies the connection and applies pending migrations
func Open(ctx context.Context, config *ConnectionConfig) (*sql.DB, error) {
	if config == nil {
		config = DefaultConnectionConfig()
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	dsn, err := buildDSN(config.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if err := NewMigrationManager(db, config.Logger).RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	config.Logger.WithField("db_path", config.DatabasePath).Info("Database connection established")
	return db, nil
}

func buildDSN(path string) (string, error) {
	if path == MemoryPath {
		// a single shared connection keeps the in-memory schema alive
		return "file::memory:?cache=shared&_busy_timeout=5000", nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute database path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create database directory: %w", err)
	}

	return fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", absPath), nil
}
