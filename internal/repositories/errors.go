package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrInvalidEntity is returned when a nil or keyless entity is passed to a write
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrConnection is returned when the backing store cannot be reached or configured
	ErrConnection = errors.New("store connection error")

	// ErrUnsupported is returned when an unknown store type is requested
	ErrUnsupported = errors.New("unsupported store type")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity type or table
	ID     string // Entity ID (if applicable)
	Err    error  // Underlying error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(entity string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     "connect",
		Entity: entity,
		Err:    fmt.Errorf("%w: %v", ErrConnection, err),
	}
}

// IsRepositoryError reports whether err originated in a repository
func IsRepositoryError(err error) bool {
	var repoErr *RepositoryError
	return errors.As(err, &repoErr)
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}
