package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

// SavedJobService implements a seeker's saved-jobs use-cases.
type SavedJobService struct {
	saved ports.SavedJobRepository
	jobs  ports.JobRepository
	log   zerolog.Logger
}

func NewSavedJobService(saved ports.SavedJobRepository, jobs ports.JobRepository, log zerolog.Logger) *SavedJobService {
	return &SavedJobService{saved: saved, jobs: jobs, log: log}
}

// Save bookmarks a job for the seeker. The duplicate pre-check mirrors the
// application flow; the unique index on (seeker_id, job_id) settles races.
func (s *SavedJobService) Save(ctx context.Context, seekerID, jobID string) (string, error) {
	if _, err := s.jobs.FindByID(ctx, jobID, ""); err != nil {
		return "", err
	}

	if _, err := s.saved.FindBySeekerAndJob(ctx, seekerID, jobID); err == nil {
		return "", domain.ErrAlreadySaved
	} else if !errors.Is(err, domain.ErrSavedJobNotFound) {
		return "", err
	}

	id, err := s.saved.Create(ctx, &domain.SavedJob{
		SeekerID: seekerID,
		JobID:    jobID,
		SavedAt:  time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("saved_job_id", id).Str("seeker_id", seekerID).Str("job_id", jobID).Msg("job saved")
	return id, nil
}

// List returns the seeker's saved entries joined with job details.
func (s *SavedJobService) List(ctx context.Context, seekerID string) ([]*ports.SavedJobView, error) {
	return s.saved.ListBySeeker(ctx, seekerID)
}

// Remove deletes the seeker's bookmark on jobID. Only the owning seeker's
// entry is matched, so a foreign or absent entry is not-found.
func (s *SavedJobService) Remove(ctx context.Context, seekerID, jobID string) error {
	deleted, err := s.saved.Delete(ctx, seekerID, jobID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrSavedJobNotFound
	}
	return nil
}
