package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/api/middleware"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asSeeker(c echo.Context, id string) {
	c.Set(middleware.CtxSubjectID, id)
	c.Set(middleware.CtxRole, string(domain.RoleSeeker))
	c.Set(middleware.CtxEmail, id+"@example.com")
}

func asRecruiter(c echo.Context, id string) {
	c.Set(middleware.CtxSubjectID, id)
	c.Set(middleware.CtxRole, string(domain.RoleRecruiter))
	c.Set(middleware.CtxEmail, id+"@example.com")
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

type stubAuthService struct {
	signupAccount *domain.Account
	signupErr     error
	loginToken    string
	loginAccount  *domain.Account
	loginErr      error

	gotRole  domain.Role
	gotInput ports.SignupInput
}

func (s *stubAuthService) Signup(_ context.Context, role domain.Role, input ports.SignupInput) (*domain.Account, error) {
	s.gotRole = role
	s.gotInput = input
	return s.signupAccount, s.signupErr
}

func (s *stubAuthService) Login(_ context.Context, role domain.Role, _, _ string) (string, *domain.Account, error) {
	s.gotRole = role
	return s.loginToken, s.loginAccount, s.loginErr
}

type stubJobService struct {
	active    []*domain.Job
	own       []*domain.Job
	createdID string
	createErr error
	deleteErr error

	gotRecruiterID string
	gotInput       ports.CreateJobInput
	deletedJobID   string
}

func (s *stubJobService) ListActive(context.Context) ([]*domain.Job, error) {
	return s.active, nil
}

func (s *stubJobService) ListOwn(_ context.Context, recruiterID string) ([]*domain.Job, error) {
	s.gotRecruiterID = recruiterID
	return s.own, nil
}

func (s *stubJobService) Create(_ context.Context, recruiterID string, input ports.CreateJobInput) (string, error) {
	s.gotRecruiterID = recruiterID
	s.gotInput = input
	return s.createdID, s.createErr
}

func (s *stubJobService) Delete(_ context.Context, recruiterID, jobID string) error {
	s.gotRecruiterID = recruiterID
	s.deletedJobID = jobID
	return s.deleteErr
}

type stubApplicationService struct {
	applyID   string
	applyErr  error
	seeker    []*ports.SeekerApplication
	recruiter []*ports.RecruiterApplication
	updateErr error

	gotSeekerID      string
	gotJobID         string
	gotRecruiterID   string
	gotApplicationID string
	gotStatus        string
}

func (s *stubApplicationService) Apply(_ context.Context, seekerID, jobID string) (string, error) {
	s.gotSeekerID = seekerID
	s.gotJobID = jobID
	return s.applyID, s.applyErr
}

func (s *stubApplicationService) ListForSeeker(_ context.Context, seekerID string) ([]*ports.SeekerApplication, error) {
	s.gotSeekerID = seekerID
	return s.seeker, nil
}

func (s *stubApplicationService) ListForRecruiter(_ context.Context, recruiterID string) ([]*ports.RecruiterApplication, error) {
	s.gotRecruiterID = recruiterID
	return s.recruiter, nil
}

func (s *stubApplicationService) UpdateStatus(_ context.Context, recruiterID, applicationID, status string) error {
	s.gotRecruiterID = recruiterID
	s.gotApplicationID = applicationID
	s.gotStatus = status
	return s.updateErr
}

type stubSavedJobService struct {
	saveID    string
	saveErr   error
	list      []*ports.SavedJobView
	removeErr error

	gotSeekerID string
	gotJobID    string
}

func (s *stubSavedJobService) Save(_ context.Context, seekerID, jobID string) (string, error) {
	s.gotSeekerID = seekerID
	s.gotJobID = jobID
	return s.saveID, s.saveErr
}

func (s *stubSavedJobService) List(_ context.Context, seekerID string) ([]*ports.SavedJobView, error) {
	s.gotSeekerID = seekerID
	return s.list, nil
}

func (s *stubSavedJobService) Remove(_ context.Context, seekerID, jobID string) error {
	s.gotSeekerID = seekerID
	s.gotJobID = jobID
	return s.removeErr
}
