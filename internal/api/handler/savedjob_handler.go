package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

// SavedJobHandler handles HTTP requests for a seeker's saved jobs.
type SavedJobHandler struct {
	service ports.SavedJobService
}

func NewSavedJobHandler(service ports.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{service: service}
}

type saveJobRequest struct {
	JobID string `json:"job_id" validate:"required"`
}

type saveJobResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	SavedJobID string `json:"saved_job_id"`
}

type savedJobsResponse struct {
	Success   bool                  `json:"success"`
	SavedJobs []*ports.SavedJobView `json:"saved_jobs"`
}

// Save bookmarks a job for the calling seeker.
//
// @Summary      Save a job
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveJobRequest  true  "Target job"
// @Success      201   {object}  saveJobResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /saved-jobs [post]
func (h *SavedJobHandler) Save(c echo.Context) error {
	seekerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req saveJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Save(c.Request().Context(), seekerID, req.JobID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, saveJobResponse{
		Success:    true,
		Message:    "Job saved successfully",
		SavedJobID: id,
	})
}

// List returns the calling seeker's saved jobs with job details.
//
// @Summary      List saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  savedJobsResponse
// @Failure      403  {object}  map[string]any
// @Router       /saved-jobs [get]
func (h *SavedJobHandler) List(c echo.Context) error {
	seekerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	saved, err := h.service.List(c.Request().Context(), seekerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, savedJobsResponse{Success: true, SavedJobs: saved})
}

// Remove deletes the calling seeker's bookmark on a job.
//
// @Summary      Remove a saved job
// @Tags         saved-jobs
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {object}  ackResponse
// @Failure      404    {object}  map[string]any
// @Router       /saved-jobs/{jobId} [delete]
func (h *SavedJobHandler) Remove(c echo.Context) error {
	seekerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), seekerID, c.Param("jobId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{Success: true, Message: "Saved job removed successfully"})
}
