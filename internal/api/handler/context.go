package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a protected handler
// reached without a subject id means the middleware did not run.
func ctxIdentity(c echo.Context) (subjectID, role string, err error) {
	subjectID, _ = c.Get(middleware.CtxSubjectID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if subjectID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subjectID, role, nil
}
