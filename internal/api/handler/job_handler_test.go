package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

func TestJobHandler_List(t *testing.T) {
	svc := &stubJobService{active: []*domain.Job{
		{ID: "job-1", Title: "Backend Engineer", Company: "Acme"},
		{ID: "job-2", Title: "SRE", Company: "Beta"},
	}}
	h := NewJobHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/jobs", "")
	asSeeker(c, "seeker-1")

	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeBody(t, rec)
	jobs, _ := resp["jobs"].([]any)
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
}

func TestJobHandler_ListOwn(t *testing.T) {
	svc := &stubJobService{own: []*domain.Job{{ID: "job-1", RecruiterID: "rec-1"}}}
	h := NewJobHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/jobs/recruiter", "")
	asRecruiter(c, "rec-1")

	if err := h.ListOwn(c); err != nil {
		t.Fatalf("list own: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.gotRecruiterID != "rec-1" {
		t.Errorf("recruiter id passed to service = %q", svc.gotRecruiterID)
	}
}

func TestJobHandler_Create(t *testing.T) {
	svc := &stubJobService{createdID: "job-9"}
	h := NewJobHandler(svc)

	body := `{"title":"Backend Engineer","company":"Acme","location":"Remote","job_type":"Contract","description":"Build services"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/jobs", body)
	asRecruiter(c, "rec-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.gotRecruiterID != "rec-1" {
		t.Errorf("recruiter id = %q", svc.gotRecruiterID)
	}
	if svc.gotInput.JobType != "Contract" {
		t.Errorf("job type = %q", svc.gotInput.JobType)
	}
	resp := decodeBody(t, rec)
	if resp["job_id"] != "job-9" {
		t.Errorf("job_id = %v", resp["job_id"])
	}
}

func TestJobHandler_Create_InvalidPayload(t *testing.T) {
	h := NewJobHandler(&stubJobService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"company":"Acme","description":"Work"}`},
		{"missing company", `{"title":"Engineer","description":"Work"}`},
		{"missing description", `{"title":"Engineer","company":"Acme"}`},
		{"bad job type", `{"title":"Engineer","company":"Acme","description":"Work","job_type":"Freelance"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/api/jobs", tc.body)
			asRecruiter(c, "rec-1")
			err := h.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestJobHandler_Create_NoIdentity(t *testing.T) {
	h := NewJobHandler(&stubJobService{})
	body := `{"title":"Engineer","company":"Acme","description":"Work"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/jobs", body)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}

func TestJobHandler_Delete(t *testing.T) {
	svc := &stubJobService{}
	h := NewJobHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/jobs/job-1", "")
	asRecruiter(c, "rec-1")
	c.SetParamNames("jobId")
	c.SetParamValues("job-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.deletedJobID != "job-1" || svc.gotRecruiterID != "rec-1" {
		t.Errorf("delete called with (%q, %q)", svc.gotRecruiterID, svc.deletedJobID)
	}
}

func TestJobHandler_Delete_NotFound(t *testing.T) {
	svc := &stubJobService{deleteErr: domain.ErrJobNotFound}
	h := NewJobHandler(svc)

	c, _ := newTestContext(t, http.MethodDelete, "/api/jobs/missing", "")
	asRecruiter(c, "rec-1")
	c.SetParamNames("jobId")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
