package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litconnect/account-service/internal/services"
	"github.com/litconnect/account-service/internal/utils"
)

// UserHandler serves the public user directory and the directory export.
type UserHandler struct {
	*BaseHandler
	accountService services.AccountService
	exportService  services.ExportService
}

func NewUserHandler(accountService services.AccountService, exportService services.ExportService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler:    NewBaseHandler(logger),
		accountService: accountService,
		exportService:  exportService,
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.accountService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, "list_users", err)
		return
	}

	c.JSON(http.StatusOK, services.UserListResponse{Users: users})
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.accountService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, "get_user", err)
		return
	}

	c.JSON(http.StatusOK, services.UserResponse{User: user})
}

// ExportUsers handles GET /api/users/export
func (h *UserHandler) ExportUsers(c *gin.Context) {
	data, err := h.exportService.ExportUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, "export_users", err)
		return
	}

	filename := fmt.Sprintf("users_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
