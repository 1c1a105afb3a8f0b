package ports

import (
	"context"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	Title        string
	Company      string
	Location     string
	Salary       string
	JobType      string
	Description  string
	Requirements string
}

// JobService defines use-case operations for job postings.
type JobService interface {
	// ListActive returns all active postings, newest first.
	ListActive(ctx context.Context) ([]*domain.Job, error)
	// ListOwn returns every posting owned by the recruiter, newest first.
	ListOwn(ctx context.Context, recruiterID string) ([]*domain.Job, error)
	Create(ctx context.Context, recruiterID string, input CreateJobInput) (string, error)
	// Delete removes the recruiter's own posting along with its applications
	// and saved entries. A missing or foreign job yields ErrJobNotFound.
	Delete(ctx context.Context, recruiterID, jobID string) error
}
