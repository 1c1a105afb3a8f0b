package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

// ApplicationService implements application use-cases.
type ApplicationService struct {
	apps ports.ApplicationRepository
	jobs ports.JobRepository
	log  zerolog.Logger
}

func NewApplicationService(apps ports.ApplicationRepository, jobs ports.JobRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, log: log}
}

// Apply submits the seeker's application with initial status "applied".
// The duplicate pre-check produces a clean conflict before the insert; when
// two applications race past it, the unique index on (seeker_id, job_id)
// decides and the loser still sees ErrAlreadyApplied.
func (s *ApplicationService) Apply(ctx context.Context, seekerID, jobID string) (string, error) {
	if _, err := s.jobs.FindByID(ctx, jobID, ""); err != nil {
		return "", err
	}

	if _, err := s.apps.FindBySeekerAndJob(ctx, seekerID, jobID); err == nil {
		return "", domain.ErrAlreadyApplied
	} else if !errors.Is(err, domain.ErrApplicationNotFound) {
		return "", err
	}

	id, err := s.apps.Create(ctx, &domain.Application{
		SeekerID:  seekerID,
		JobID:     jobID,
		Status:    domain.StatusApplied,
		AppliedAt: time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("application_id", id).Str("seeker_id", seekerID).Str("job_id", jobID).Msg("application submitted")
	return id, nil
}

// ListForSeeker returns the seeker's applications joined with job details.
func (s *ApplicationService) ListForSeeker(ctx context.Context, seekerID string) ([]*ports.SeekerApplication, error) {
	return s.apps.ListBySeeker(ctx, seekerID)
}

// ListForRecruiter returns all applications targeting the recruiter's postings.
func (s *ApplicationService) ListForRecruiter(ctx context.Context, recruiterID string) ([]*ports.RecruiterApplication, error) {
	return s.apps.ListByRecruiter(ctx, recruiterID)
}

// UpdateStatus transitions an application on behalf of the recruiter owning
// the referenced job. Ownership mismatches are reported as not-found so a
// foreign recruiter cannot probe for application ids. accepted and rejected
// are terminal.
func (s *ApplicationService) UpdateStatus(ctx context.Context, recruiterID, applicationID, status string) error {
	next := domain.ApplicationStatus(status)
	if !next.Valid() {
		return domain.ErrInvalidStatus
	}

	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}

	if _, err := s.jobs.FindByID(ctx, app.JobID, recruiterID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return domain.ErrApplicationNotFound
		}
		return err
	}

	if !app.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}

	if err := s.apps.UpdateStatus(ctx, applicationID, next); err != nil {
		return err
	}

	s.log.Info().
		Str("application_id", applicationID).
		Str("recruiter_id", recruiterID).
		Str("from", string(app.Status)).
		Str("to", string(next)).
		Msg("application status updated")
	return nil
}
