package ports

import (
	"context"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (string, error)
	// FindByID retrieves a job by id. When recruiterID is non-empty the query
	// is additionally filtered by owner, so a cross-owner lookup behaves
	// exactly like a missing job.
	FindByID(ctx context.Context, id string, recruiterID string) (*domain.Job, error)
	ListActive(ctx context.Context) ([]*domain.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
