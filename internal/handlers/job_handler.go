package handlers

import (
	"net/http"
	"strconv"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("", h.CreateJob)
		jobs.GET("/:jobId", h.GetJob)
		jobs.PUT("/:jobId", h.UpdateJob)
		jobs.PATCH("/:jobId", h.UpdateJob)
		jobs.DELETE("/:jobId", h.DeleteJob)
	}
}

// ListJobs godoc
// @Summary List job postings
// @Description Employers see their own postings; everyone else sees active postings.
// @Tags jobs
// @Produce json
// @Param title query string false "Title contains"
// @Param description query string false "Description contains"
// @Param category query string false "Category"
// @Param country query string false "Location country"
// @Param city query string false "Location city"
// @Param salary_min query number false "Minimum salary"
// @Success 200 {array} dto.JobDTO
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := repositories.JobFilter{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Category:    models.JobCategory(c.Query("category")),
		Country:     c.Query("country"),
		City:        c.Query("city"),
	}
	if raw := c.Query("salary_min"); raw != "" {
		if salary, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.SalaryMin = salary
		}
	}

	jobs, err := h.jobService.ListJobs(
		c.Request.Context(),
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		filter,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get one job posting
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job posting id"
// @Success 200 {object} dto.JobDTO
// @Failure 404 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{jobId} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		c.Param("jobId"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Job posting data"
// @Success 201 {object} dto.JobDTO
// @Failure 400 {object} appErrors.ErrorResponse
// @Failure 403 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(
		c.Request.Context(),
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		&req,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param jobId path string true "Job posting id"
// @Param request body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobDTO
// @Failure 400 {object} appErrors.ErrorResponse
// @Failure 404 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{jobId} [patch]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(
		c.Request.Context(),
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		c.Param("jobId"),
		&req,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete a job posting and its applications
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job posting id"
// @Success 204
// @Failure 404 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{jobId} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	err := h.jobService.DeleteJob(
		c.Request.Context(),
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		c.Param("jobId"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
