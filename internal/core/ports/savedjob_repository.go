package ports

import (
	"context"
	"time"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

// SavedJobView is a saved entry joined with the posting it bookmarks.
type SavedJobView struct {
	ID           string         `json:"id"`
	JobID        string         `json:"job_id"`
	SavedAt      time.Time      `json:"saved_at"`
	Title        string         `json:"title"`
	Company      string         `json:"company"`
	Location     string         `json:"location,omitempty"`
	Salary       string         `json:"salary,omitempty"`
	JobType      domain.JobType `json:"job_type"`
	Description  string         `json:"description"`
	Requirements string         `json:"requirements,omitempty"`
}

// SavedJobRepository defines persistence operations for saved jobs.
type SavedJobRepository interface {
	// Create inserts a saved entry. A unique index on (seeker_id, job_id) is
	// the final arbiter for concurrent duplicates; a lost race surfaces as
	// domain.ErrAlreadySaved.
	Create(ctx context.Context, saved *domain.SavedJob) (string, error)
	FindBySeekerAndJob(ctx context.Context, seekerID, jobID string) (*domain.SavedJob, error)
	ListBySeeker(ctx context.Context, seekerID string) ([]*SavedJobView, error)
	// Delete removes the seeker's entry for jobID and reports whether one existed.
	Delete(ctx context.Context, seekerID, jobID string) (bool, error)
	DeleteByJob(ctx context.Context, jobID string) error
}
