package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"contact-form-api/internal/models"
	"contact-form-api/internal/repositories"
)

const submissionsTable = "submissions"

// SubmissionRepository stores submissions in the local SQLite database
type SubmissionRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewSubmissionRepository creates a new SQLite submission repository.
// The schema is expected to be migrated already (see database.Open).
func NewSubmissionRepository(db *sql.DB, logger *logrus.Logger) *SubmissionRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// Put implements repositories.SubmissionRepository.Put.
// INSERT OR REPLACE mirrors DynamoDB PutItem: an existing row with the same id is overwritten.
func (r *SubmissionRepository) Put(ctx context.Context, submission *models.Submission) error {
	if submission == nil || submission.ID == "" {
		return repositories.NewRepositoryError("put", submissionsTable, "", repositories.ErrInvalidEntity)
	}

	query := `
		INSERT OR REPLACE INTO submissions (
			id, created_at, name, email, phone, problem
		) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		submission.ID,
		submission.CreatedAt,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.Problem,
	)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"operation": "put",
			"table":     submissionsTable,
			"error":     err.Error(),
		}).Debug("SQLite exec failed")
		return repositories.NewRepositoryError("put", submissionsTable, submission.ID, err)
	}

	return nil
}

// Close closes the underlying database
func (r *SubmissionRepository) Close() error {
	return r.db.Close()
}
