package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/api/metrics"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applyRequest struct {
	JobID string `json:"job_id" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=applied under_review accepted rejected"`
}

type applyResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
}

type seekerApplicationsResponse struct {
	Success      bool                       `json:"success"`
	Applications []*ports.SeekerApplication `json:"applications"`
}

type recruiterApplicationsResponse struct {
	Success      bool                          `json:"success"`
	Applications []*ports.RecruiterApplication `json:"applications"`
}

// Apply submits the calling seeker's application to a job.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Target job"
// @Success      201   {object}  applyResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	seekerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Apply(c.Request().Context(), seekerID, req.JobID)
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, applyResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: id,
	})
}

// ListForSeeker returns the calling seeker's applications with job details.
//
// @Summary      List the caller's applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  seekerApplicationsResponse
// @Failure      403  {object}  map[string]any
// @Router       /applications/user [get]
func (h *ApplicationHandler) ListForSeeker(c echo.Context) error {
	seekerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListForSeeker(c.Request().Context(), seekerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seekerApplicationsResponse{Success: true, Applications: apps})
}

// ListForRecruiter returns all applications targeting the caller's postings.
//
// @Summary      List applications to the caller's jobs
// @Tags         applications
// @Produce     json
// @Security     BearerAuth
// @Success      200  {object}  recruiterApplicationsResponse
// @Failure      403  {object}  map[string]any
// @Router       /applications/recruiter [get]
func (h *ApplicationHandler) ListForRecruiter(c echo.Context) error {
	recruiterID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	apps, err := h.service.ListForRecruiter(c.Request().Context(), recruiterID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recruiterApplicationsResponse{Success: true, Applications: apps})
}

// UpdateStatus transitions an application's status on behalf of the recruiter
// owning the referenced job.
//
// @Summary      Update an application's status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Application id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  ackResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	recruiterID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), recruiterID, c.Param("id"), req.Status); err != nil {
		return err
	}

	metrics.ApplicationTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, ackResponse{Success: true, Message: "Application status updated successfully"})
}
