package services

import (
	"errors"

	"contact-form-api/internal/models"
	"contact-form-api/internal/repositories"
)

// ErrMalformedPayload is returned when the request body is not valid JSON
var ErrMalformedPayload = errors.New("malformed payload")

// ErrorKind classifies failures of a submission
type ErrorKind int

const (
	// KindNone means no error occurred
	KindNone ErrorKind = iota
	// KindMalformedPayload means the body was not valid JSON
	KindMalformedPayload
	// KindValidation means a required field was missing or empty
	KindValidation
	// KindPersistence means the store write failed
	KindPersistence
	// KindUnclassified covers every other failure
	KindUnclassified
)

// String returns the log-friendly name of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMalformedPayload:
		return "malformed_payload"
	case KindValidation:
		return "validation_failure"
	case KindPersistence:
		return "persistence_failure"
	default:
		return "unclassified_failure"
	}
}

// Classify maps an error returned by SubmissionService to its kind
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMalformedPayload):
		return KindMalformedPayload
	case errors.Is(err, models.ErrValidation):
		return KindValidation
	case repositories.IsRepositoryError(err):
		return KindPersistence
	default:
		return KindUnclassified
	}
}
