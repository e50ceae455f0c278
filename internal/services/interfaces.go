package services

import (
	"context"

	"contact-form-api/internal/models"
)

// SubmissionService defines the contact form submission operation
type SubmissionService interface {
	// Submit parses a raw JSON body, validates it and persists a new submission.
	// Errors can be classified with Classify.
	Submit(ctx context.Context, body []byte) (*models.Submission, error)
}
