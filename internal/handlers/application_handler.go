package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.GET("", h.ListApplications)
		applications.POST("", h.SubmitApplication)
		applications.GET("/:applicationId", h.GetApplication)
		applications.PATCH("/:applicationId", h.UpdateApplicationStatus)
	}

	jobApplications := rg.Group("/jobs/:jobId/applications")
	jobApplications.Use(middleware.AuthMiddleware())
	{
		jobApplications.GET("", h.ListJobApplications)
	}
}

// ListApplications godoc
// @Summary List applications visible to the caller
// @Description Admins see all, employers see applications to their postings, seekers see their own.
// @Tags applications
// @Produce json
// @Success 200 {array} dto.ApplicationDTO
// @Security BearerAuth
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.applicationService.ListApplications(
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// SubmitApplication godoc
// @Summary Apply to a job posting
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Target job posting"
// @Success 201 {object} dto.ApplicationDTO
// @Failure 403 {object} appErrors.ErrorResponse
// @Failure 404 {object} appErrors.ErrorResponse
// @Failure 409 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	app, err := h.applicationService.SubmitApplication(
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		&req,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// GetApplication godoc
// @Summary Get one application
// @Tags applications
// @Produce json
// @Param applicationId path string true "Application id"
// @Success 200 {object} dto.ApplicationDTO
// @Failure 403 {object} appErrors.ErrorResponse
// @Failure 404 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{applicationId} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.applicationService.GetApplication(
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		c.Param("applicationId"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// UpdateApplicationStatus godoc
// @Summary Change an application's status
// @Description Accepted transitions notify the applicant by email.
// @Tags applications
// @Accept json
// @Produce json
// @Param applicationId path string true "Application id"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.ApplicationDTO
// @Failure 400 {object} appErrors.ErrorResponse
// @Failure 403 {object} appErrors.ErrorResponse
// @Failure 404 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /applications/{applicationId} [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateApplicationStatus(
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		c.Param("applicationId"),
		req.Status,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// ListJobApplications godoc
// @Summary List every application to one job posting
// @Description Available to the posting's owner and to admins.
// @Tags applications
// @Produce json
// @Param jobId path string true "Job posting id"
// @Success 200 {array} dto.ApplicationDTO
// @Failure 403 {object} appErrors.ErrorResponse
// @Failure 404 {object} appErrors.ErrorResponse
// @Security BearerAuth
// @Router /jobs/{jobId}/applications [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	apps, err := h.applicationService.ListJobApplications(
		middleware.GetUserRole(c),
		middleware.GetUserID(c),
		c.Param("jobId"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}
