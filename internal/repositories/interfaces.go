package repositories

import (
	"context"

	"contact-form-api/internal/models"
)

// SubmissionRepository persists contact form submissions.
// Submissions are append-only: there is no read, update or delete path.
type SubmissionRepository interface {
	// Put inserts a submission keyed by its ID. No existence check is made.
	Put(ctx context.Context, submission *models.Submission) error

	// Close releases any resources held by the repository
	Close() error
}
