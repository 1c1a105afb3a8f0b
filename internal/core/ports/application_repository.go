package ports

import (
	"context"
	"time"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

// SeekerApplication is an application joined with the posting it targets,
// as returned to the applying seeker.
type SeekerApplication struct {
	ID           string                   `json:"id"`
	JobID        string                   `json:"job_id"`
	Status       domain.ApplicationStatus `json:"status"`
	AppliedAt    time.Time                `json:"applied_at"`
	Title        string                   `json:"title"`
	Company      string                   `json:"company"`
	Location     string                   `json:"location,omitempty"`
	Salary       string                   `json:"salary,omitempty"`
	JobType      domain.JobType           `json:"job_type"`
	Description  string                   `json:"description"`
	Requirements string                   `json:"requirements,omitempty"`
}

// RecruiterApplication is an application joined with its posting and the
// applicant's public details, as returned to the posting's owner.
type RecruiterApplication struct {
	ID             string                   `json:"id"`
	JobID          string                   `json:"job_id"`
	Status         domain.ApplicationStatus `json:"status"`
	AppliedAt      time.Time                `json:"applied_at"`
	JobTitle       string                   `json:"job_title"`
	Company        string                   `json:"company"`
	Location       string                   `json:"location,omitempty"`
	ApplicantName  string                   `json:"applicant_name"`
	ApplicantEmail string                   `json:"applicant_email"`
}

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	// Create inserts an application. A unique index on (seeker_id, job_id) is
	// the final arbiter for concurrent duplicates; a lost race surfaces as
	// domain.ErrAlreadyApplied.
	Create(ctx context.Context, app *domain.Application) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindBySeekerAndJob(ctx context.Context, seekerID, jobID string) (*domain.Application, error)
	ListBySeeker(ctx context.Context, seekerID string) ([]*SeekerApplication, error)
	ListByRecruiter(ctx context.Context, recruiterID string) ([]*RecruiterApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	DeleteByJob(ctx context.Context, jobID string) error
}
