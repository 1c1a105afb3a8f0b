package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/api/metrics"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/domain"
	"github.com/tamiresatyajayanth58/JOB-PORTAL/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type createJobRequest struct {
	Title        string `json:"title" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Location     string `json:"location"`
	Salary       string `json:"salary"`
	JobType      string `json:"job_type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Description  string `json:"description" validate:"required"`
	Requirements string `json:"requirements"`
}

type jobListResponse struct {
	Success bool          `json:"success"`
	Jobs    []*domain.Job `json:"jobs"`
}

type createJobResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   string `json:"job_id"`
}

// List returns all active postings for any authenticated account.
//
// @Summary      List active jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  jobListResponse
// @Failure      401  {object}  map[string]any
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobListResponse{Success: true, Jobs: jobs})
}

// ListOwn returns the calling recruiter's postings, active or not.
//
// @Summary      List the caller's own jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  jobListResponse
// @Failure      403  {object}  map[string]any
// @Router       /jobs/recruiter [get]
func (h *JobHandler) ListOwn(c echo.Context) error {
	recruiterID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListOwn(c.Request().Context(), recruiterID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobListResponse{Success: true, Jobs: jobs})
}

// Create posts a new job owned by the calling recruiter.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  createJobResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	recruiterID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), recruiterID, ports.CreateJobInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Salary:       req.Salary,
		JobType:      req.JobType,
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		return err
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = string(domain.JobTypeFullTime)
	}
	metrics.JobsCreatedTotal.WithLabelValues(jobType).Inc()
	return c.JSON(http.StatusCreated, createJobResponse{Success: true, Message: "Job posted successfully", JobID: id})
}

// Delete removes the calling recruiter's own posting. A job owned by another
// recruiter is indistinguishable from a missing one.
//
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {object}  ackResponse
// @Failure      403    {object}  map[string]any
// @Failure      404    {object}  map[string]any
// @Router       /jobs/{jobId} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	recruiterID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), recruiterID, c.Param("jobId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ackResponse{Success: true, Message: "Job deleted successfully"})
}
