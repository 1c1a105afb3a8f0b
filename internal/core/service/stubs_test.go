package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

var testLogger = zerolog.Nop()

type stubJobRepo struct {
	jobs   map[string]*domain.Job
	nextID int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (string, error) {
	r.nextID++
	id := fmt.Sprintf("job-%d", r.nextID)
	clone := *job
	clone.ID = id
	r.jobs[id] = &clone
	return id, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string, recruiterID string) (*domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok || (recruiterID != "" && job.RecruiterID != recruiterID) {
		return nil, domain.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *stubJobRepo) ListActive(_ context.Context) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, job := range r.jobs {
		if job.Status == domain.JobStatusActive {
			clone := *job
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubJobRepo) ListByRecruiter(_ context.Context, recruiterID string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, job := range r.jobs {
		if job.RecruiterID == recruiterID {
			clone := *job
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type stubApplicationRepo struct {
	apps      map[string]*domain.Application
	nextID    int
	createErr error
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.Application) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	for _, existing := range r.apps {
		if existing.SeekerID == app.SeekerID && existing.JobID == app.JobID {
			return "", domain.ErrAlreadyApplied
		}
	}
	r.nextID++
	id := fmt.Sprintf("app-%d", r.nextID)
	clone := *app
	clone.ID = id
	r.apps[id] = &clone
	return id, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

func (r *stubApplicationRepo) FindBySeekerAndJob(_ context.Context, seekerID, jobID string) (*domain.Application, error) {
	for _, app := range r.apps {
		if app.SeekerID == seekerID && app.JobID == jobID {
			clone := *app
			return &clone, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) ListBySeeker(_ context.Context, seekerID string) ([]*ports.SeekerApplication, error) {
	var out []*ports.SeekerApplication
	for _, app := range r.apps {
		if app.SeekerID == seekerID {
			out = append(out, &ports.SeekerApplication{ID: app.ID, JobID: app.JobID, Status: app.Status, AppliedAt: app.AppliedAt})
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) ListByRecruiter(_ context.Context, _ string) ([]*ports.RecruiterApplication, error) {
	return nil, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) error {
	app, ok := r.apps[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (r *stubApplicationRepo) DeleteByJob(_ context.Context, jobID string) error {
	for id, app := range r.apps {
		if app.JobID == jobID {
			delete(r.apps, id)
		}
	}
	return nil
}

type stubSavedJobRepo struct {
	saved     map[string]*domain.SavedJob
	nextID    int
	createErr error
}

func newStubSavedJobRepo() *stubSavedJobRepo {
	return &stubSavedJobRepo{saved: make(map[string]*domain.SavedJob)}
}

func (r *stubSavedJobRepo) Create(_ context.Context, saved *domain.SavedJob) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	for _, existing := range r.saved {
		if existing.SeekerID == saved.SeekerID && existing.JobID == saved.JobID {
			return "", domain.ErrAlreadySaved
		}
	}
	r.nextID++
	id := fmt.Sprintf("saved-%d", r.nextID)
	clone := *saved
	clone.ID = id
	r.saved[id] = &clone
	return id, nil
}

func (r *stubSavedJobRepo) FindBySeekerAndJob(_ context.Context, seekerID, jobID string) (*domain.SavedJob, error) {
	for _, s := range r.saved {
		if s.SeekerID == seekerID && s.JobID == jobID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrSavedJobNotFound
}

func (r *stubSavedJobRepo) ListBySeeker(_ context.Context, seekerID string) ([]*ports.SavedJobView, error) {
	var out []*ports.SavedJobView
	for _, s := range r.saved {
		if s.SeekerID == seekerID {
			out = append(out, &ports.SavedJobView{ID: s.ID, JobID: s.JobID, SavedAt: s.SavedAt})
		}
	}
	return out, nil
}

func (r *stubSavedJobRepo) Delete(_ context.Context, seekerID, jobID string) (bool, error) {
	for id, s := range r.saved {
		if s.SeekerID == seekerID && s.JobID == jobID {
			delete(r.saved, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubSavedJobRepo) DeleteByJob(_ context.Context, jobID string) error {
	for id, s := range r.saved {
		if s.JobID == jobID {
			delete(r.saved, id)
		}
	}
	return nil
}
