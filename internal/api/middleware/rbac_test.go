package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
)

func invokeRequireRole(role string, allowed ...domain.Role) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/recruiter", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set(CtxRole, role)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return RequireRole(allowed...)(next)(c)
}

func TestRequireRole_Allows(t *testing.T) {
	if err := invokeRequireRole("recruiter", domain.RoleRecruiter); err != nil {
		t.Fatalf("matching role rejected: %v", err)
	}
	if err := invokeRequireRole("seeker", domain.RoleSeeker, domain.RoleRecruiter); err != nil {
		t.Fatalf("role in allowed set rejected: %v", err)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	err := invokeRequireRole("seeker", domain.RoleRecruiter)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestRequireRole_MissingRole(t *testing.T) {
	err := invokeRequireRole("", domain.RoleSeeker)
	assertHTTPStatus(t, err, http.StatusForbidden)
}
