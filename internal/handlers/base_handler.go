package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litconnect/account-service/internal/services"
	"github.com/litconnect/account-service/internal/utils"
	"github.com/litconnect/account-service/internal/validator"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// BaseHandler provides common functionality for all handlers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, operation string, args ...any) {
	logger := utils.LoggerFromContext(c.Request.Context(), h.logger)
	fields := append([]any{"operation", operation, "method", c.Request.Method, "path", c.Request.URL.Path}, args...)
	logger.Info("handling request", fields...)
}

func (h *BaseHandler) LogError(c *gin.Context, operation string, err error) {
	logger := utils.LoggerFromContext(c.Request.Context(), h.logger)
	logger.Error("request failed", "operation", operation, "error", err)
}

// handleServiceError maps service-layer errors onto the HTTP surface.
// Anything unrecognized is a 500 with a generic body; the detail stays in
// the logs.
func (h *BaseHandler) handleServiceError(c *gin.Context, operation string, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Errors: verrs})
		return
	}

	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Email already registered"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid credentials"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
	case errors.Is(err, services.ErrInvalidUserID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid user id"})
	default:
		h.LogError(c, operation, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Server error"})
	}
}

// handleBindError covers malformed request bodies before validation runs.
func (h *BaseHandler) handleBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
}
