package models

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the createdAt format: ISO-8601 in UTC with microsecond precision
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Submission represents a persisted contact form submission
type Submission struct {
	ID        string  `json:"id" dynamodbav:"id"`
	CreatedAt string  `json:"createdAt" dynamodbav:"createdAt"`
	Name      string  `json:"name" dynamodbav:"name"`
	Email     string  `json:"email" dynamodbav:"email"`
	Phone     *string `json:"phone,omitempty" dynamodbav:"-"`
	Problem   string  `json:"problem" dynamodbav:"problem"`
}

// SubmissionRequest holds the form fields extracted from an untrusted request body
type SubmissionRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required"`
	Phone   *string `json:"phone,omitempty"`
	Problem string  `json:"problem" validate:"required"`
}

// NewSubmissionRequest extracts the known form fields from a decoded JSON object.
// Values that are not JSON strings are treated as absent.
func NewSubmissionRequest(fields map[string]interface{}) *SubmissionRequest {
	req := &SubmissionRequest{
		Name:    stringField(fields, "name"),
		Email:   stringField(fields, "email"),
		Problem: stringField(fields, "problem"),
	}

	if phone, ok := fields["phone"].(string); ok {
		req.Phone = &phone
	}

	return req
}

// NewSubmission creates a new submission with a generated ID and creation timestamp
func NewSubmission(req *SubmissionRequest, now time.Time) *Submission {
	submission := &Submission{
		ID:        uuid.New().String(),
		CreatedAt: FormatTimestamp(now),
		Name:      req.Name,
		Email:     req.Email,
		Problem:   req.Problem,
	}

	if req.Phone != nil {
		phone := *req.Phone
		submission.Phone = &phone
	}

	return submission
}

// HasPhone reports whether the submitter supplied a phone value, including an empty one
func (s *Submission) HasPhone() bool {
	return s.Phone != nil
}

// FormatTimestamp renders t in the createdAt format
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func stringField(fields map[string]interface{}, key string) string {
	if value, ok := fields[key].(string); ok {
		return value
	}
	return ""
}
