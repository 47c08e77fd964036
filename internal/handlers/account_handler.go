package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litconnect/account-service/internal/services"
	"github.com/litconnect/account-service/internal/utils"
)

// AccountHandler serves registration, login, and the authenticated
// self-profile operations.
type AccountHandler struct {
	*BaseHandler
	accountService services.AccountService
}

func NewAccountHandler(accountService services.AccountService, logger utils.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    NewBaseHandler(logger),
		accountService: accountService,
	}
}

// Register handles POST /api/users/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.accountService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, "register", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/users/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.accountService.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMe handles GET /api/users/me
func (h *AccountHandler) GetMe(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	user, err := h.accountService.GetMe(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, "get_me", err)
		return
	}

	c.JSON(http.StatusOK, services.UserResponse{User: user})
}

// UpdateMe handles PUT /api/users/me
func (h *AccountHandler) UpdateMe(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	user, err := h.accountService.UpdateMe(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, "update_me", err)
		return
	}

	c.JSON(http.StatusOK, services.UserResponse{User: user})
}
