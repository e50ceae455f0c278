package repositories

import (
	"context"
	"sync"

	"contact-form-api/internal/models"
)

// MemorySubmissionRepository keeps submissions in process memory.
// It backs STORE_TYPE=memory and the package tests of the layers above.
type MemorySubmissionRepository struct {
	mu          sync.RWMutex
	submissions []models.Submission
	putErr      error
}

// NewMemorySubmissionRepository creates an empty in-memory repository
func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{}
}

// Put implements SubmissionRepository.Put
func (r *MemorySubmissionRepository) Put(ctx context.Context, submission *models.Submission) error {
	if submission == nil || submission.ID == "" {
		return NewRepositoryError("put", "submission", "", ErrInvalidEntity)
	}

	if err := ctx.Err(); err != nil {
		return NewRepositoryError("put", "submission", submission.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.putErr != nil {
		return NewRepositoryError("put", "submission", submission.ID, r.putErr)
	}

	stored := *submission
	if submission.Phone != nil {
		phone := *submission.Phone
		stored.Phone = &phone
	}
	r.submissions = append(r.submissions, stored)

	return nil
}

// FailPuts makes every subsequent Put return err; nil restores normal behaviour
func (r *MemorySubmissionRepository) FailPuts(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.putErr = err
}

// Submissions returns a copy of everything written so far, in write order
func (r *MemorySubmissionRepository) Submissions() []models.Submission {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Submission, len(r.submissions))
	copy(out, r.submissions)
	return out
}

// Count returns the number of writes performed
func (r *MemorySubmissionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.submissions)
}

// Close implements SubmissionRepository.Close
func (r *MemorySubmissionRepository) Close() error {
	return nil
}
