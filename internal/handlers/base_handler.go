package handlers

import (
	"jobboard_backend/internal/appErrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the binding and error plumbing shared by all handlers.
type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds the request body into obj and reports false after writing
// the validation error response.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		appErrors.HandleValidationError(c, err)
		return false
	}
	return true
}

// HandleServiceError writes a service error to the response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	appErrors.HandleError(c, err)
}
