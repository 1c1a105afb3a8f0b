package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

func seedJob(t *testing.T, jobs *stubJobRepo, recruiterID string) string {
	t.Helper()
	id, err := jobs.Create(context.Background(), &domain.Job{
		RecruiterID: recruiterID,
		Title:       "Backend Engineer",
		Company:     "Acme",
		JobType:     domain.JobTypeFullTime,
		Description: "Build services",
		Status:      domain.JobStatusActive,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return id
}

func TestApplicationService_Apply(t *testing.T) {
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()
	svc := NewApplicationService(apps, jobs, testLogger)

	jobID := seedJob(t, jobs, "rec-1")

	id, err := svc.Apply(context.Background(), "seeker-1", jobID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	app, err := apps.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find application: %v", err)
	}
	if app.Status != domain.StatusApplied {
		t.Errorf("initial status = %q, want applied", app.Status)
	}
	if app.SeekerID != "seeker-1" || app.JobID != jobID {
		t.Errorf("application keys = (%q, %q)", app.SeekerID, app.JobID)
	}
}

func TestApplicationService_Apply_MissingJob(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), newStubJobRepo(), testLogger)

	if _, err := svc.Apply(context.Background(), "seeker-1", "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()
	svc := NewApplicationService(apps, jobs, testLogger)
	jobID := seedJob(t, jobs, "rec-1")

	if _, err := svc.Apply(context.Background(), "seeker-1", jobID); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := svc.Apply(context.Background(), "seeker-1", jobID); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationService_Apply_LostRace(t *testing.T) {
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()
	svc := NewApplicationService(apps, jobs, testLogger)
	jobID := seedJob(t, jobs, "rec-1")

	// The pre-check passes but the insert loses to a concurrent writer; the
	// unique index surfaces the conflict from Create.
	apps.createErr = domain.ErrAlreadyApplied

	if _, err := svc.Apply(context.Background(), "seeker-1", jobID); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()
	svc := NewApplicationService(apps, jobs, testLogger)
	jobID := seedJob(t, jobs, "rec-1")

	appID, err := svc.Apply(context.Background(), "seeker-1", jobID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	for _, status := range []string{"under_review", "accepted"} {
		if err := svc.UpdateStatus(context.Background(), "rec-1", appID, status); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}

	app, _ := apps.FindByID(context.Background(), appID)
	if app.Status != domain.StatusAccepted {
		t.Fatalf("final status = %q, want accepted", app.Status)
	}
}

func TestApplicationService_UpdateStatus_TerminalRegression(t *testing.T) {
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()
	svc := NewApplicationService(apps, jobs, testLogger)
	jobID := seedJob(t, jobs, "rec-1")

	appID, err := svc.Apply(context.Background(), "seeker-1", jobID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), "rec-1", appID, "rejected"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	for _, status := range []string{"applied", "under_review", "accepted"} {
		if err := svc.UpdateStatus(context.Background(), "rec-1", appID, status); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("rejected -> %s: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), newStubJobRepo(), testLogger)

	if err := svc.UpdateStatus(context.Background(), "rec-1", "any", "shortlisted"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_ForeignJob(t *testing.T) {
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()
	svc := NewApplicationService(apps, jobs, testLogger)
	jobID := seedJob(t, jobs, "rec-1")

	appID, err := svc.Apply(context.Background(), "seeker-1", jobID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	err = svc.UpdateStatus(context.Background(), "rec-2", appID, "under_review")
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("foreign recruiter should see not-found, got %v", err)
	}

	app, _ := apps.FindByID(context.Background(), appID)
	if app.Status != domain.StatusApplied {
		t.Fatalf("status changed by foreign recruiter: %q", app.Status)
	}
}

func TestApplicationService_ListForSeeker(t *testing.T) {
	jobs := newStubJobRepo()
	apps := newStubApplicationRepo()
	svc := NewApplicationService(apps, jobs, testLogger)

	first := seedJob(t, jobs, "rec-1")
	second := seedJob(t, jobs, "rec-2")
	if _, err := svc.Apply(context.Background(), "seeker-1", first); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := svc.Apply(context.Background(), "seeker-1", second); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := svc.Apply(context.Background(), "seeker-2", first); err != nil {
		t.Fatalf("apply: %v", err)
	}

	list, err := svc.ListForSeeker(context.Background(), "seeker-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d applications, want 2", len(list))
	}
}
