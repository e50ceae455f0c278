package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"contact-form-api/internal/models"
	"contact-form-api/internal/repositories"
)

// submissionService implements the SubmissionService interface
type submissionService struct {
	repo      repositories.SubmissionRepository
	validator *validator.Validate
	logger    *logrus.Logger
	now       func() time.Time
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(repo repositories.SubmissionRepository, logger *logrus.Logger) SubmissionService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &submissionService{
		repo:      repo,
		validator: models.NewValidator(),
		logger:    logger,
		now:       time.Now,
	}
}

// Submit parses, validates, builds and stores a submission
func (s *submissionService) Submit(ctx context.Context, body []byte) (*models.Submission, error) {
	fields, err := decodeBody(body)
	if err != nil {
		return nil, err
	}

	req := models.NewSubmissionRequest(fields)
	if err := models.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	submission := models.NewSubmission(req, s.now())

	if err := s.repo.Put(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"submission_id": submission.ID,
		"created_at":    submission.CreatedAt,
		"has_phone":     submission.HasPhone(),
	}).Info("Submission stored")

	return submission, nil
}

// decodeBody parses the request body. Valid JSON that is not an object yields no fields.
func decodeBody(body []byte) (map[string]interface{}, error) {
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	fields, _ := payload.(map[string]interface{})
	return fields, nil
}
