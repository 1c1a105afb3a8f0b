package ports

import "context"

// ApplicationService defines use-case operations for job applications.
type ApplicationService interface {
	// Apply creates an application with initial status "applied". Applying
	// twice to the same job yields domain.ErrAlreadyApplied.
	Apply(ctx context.Context, seekerID, jobID string) (string, error)
	ListForSeeker(ctx context.Context, seekerID string) ([]*SeekerApplication, error)
	ListForRecruiter(ctx context.Context, recruiterID string) ([]*RecruiterApplication, error)
	// UpdateStatus transitions an application's status on behalf of the
	// recruiter owning the referenced job. An application that does not exist
	// or targets another recruiter's job yields ErrApplicationNotFound.
	UpdateStatus(ctx context.Context, recruiterID, applicationID, status string) error
}
