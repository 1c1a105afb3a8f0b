package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

// JobService implements job posting use-cases.
type JobService struct {
	jobs     ports.JobRepository
	apps     ports.ApplicationRepository
	saved    ports.SavedJobRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewJobService(
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	saved ports.SavedJobRepository,
	accounts ports.AccountRepository,
	log zerolog.Logger,
) *JobService {
	return &JobService{jobs: jobs, apps: apps, saved: saved, accounts: accounts, log: log}
}

// ListActive returns all active postings, newest first.
func (s *JobService) ListActive(ctx context.Context) ([]*domain.Job, error) {
	return s.jobs.ListActive(ctx)
}

// ListOwn returns every posting owned by the recruiter, newest first.
func (s *JobService) ListOwn(ctx context.Context, recruiterID string) ([]*domain.Job, error) {
	return s.jobs.ListByRecruiter(ctx, recruiterID)
}

// Create posts a new active job owned by the recruiter. The recruiter's name
// is denormalised onto the posting so listings carry it without a join.
func (s *JobService) Create(ctx context.Context, recruiterID string, input ports.CreateJobInput) (string, error) {
	jobType := domain.JobType(input.JobType)
	if input.JobType == "" {
		jobType = domain.JobTypeFullTime
	}
	if !jobType.Valid() {
		return "", domain.ErrInvalidJobType
	}

	recruiter, err := s.accounts.FindByID(ctx, domain.RoleRecruiter, recruiterID)
	if err != nil {
		return "", err
	}

	job := &domain.Job{
		RecruiterID:   recruiterID,
		RecruiterName: recruiter.FullName,
		Title:         input.Title,
		Company:       input.Company,
		Location:      input.Location,
		Salary:        input.Salary,
		JobType:       jobType,
		Description:   input.Description,
		Requirements:  input.Requirements,
		Status:        domain.JobStatusActive,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.jobs.Create(ctx, job)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("job_id", id).Str("recruiter_id", recruiterID).Str("title", input.Title).Msg("job posted")
	return id, nil
}

// Delete removes the recruiter's own posting and cascades to its applications
// and saved entries. A job that does not exist, or belongs to another
// recruiter, yields ErrJobNotFound either way.
func (s *JobService) Delete(ctx context.Context, recruiterID, jobID string) error {
	if _, err := s.jobs.FindByID(ctx, jobID, recruiterID); err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return err
	}
	if err := s.apps.DeleteByJob(ctx, jobID); err != nil {
		return err
	}
	if err := s.saved.DeleteByJob(ctx, jobID); err != nil {
		return err
	}

	s.log.Info().Str("job_id", jobID).Str("recruiter_id", recruiterID).Msg("job deleted")
	return nil
}
