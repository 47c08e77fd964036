package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litconnect/account-service/internal/auth"
	"github.com/litconnect/account-service/internal/services"
	"github.com/litconnect/account-service/internal/utils"
	"github.com/litconnect/account-service/internal/validator"
)

// HandlerManager holds the handlers and wires them into the router.
type HandlerManager struct {
	accountHandler *AccountHandler
	userHandler    *UserHandler
	authMiddleware *TokenAuthMiddleware
	serviceManager services.ServiceManager
	logger         utils.Logger
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	v *validator.Validator,
	logger utils.Logger,
	tokens *auth.TokenManager,
) *HandlerManager {
	return &HandlerManager{
		accountHandler: NewAccountHandler(serviceManager.Account(), logger),
		userHandler:    NewUserHandler(serviceManager.Account(), serviceManager.Export(), logger),
		authMiddleware: NewTokenAuthMiddleware(tokens, logger),
		serviceManager: serviceManager,
		logger:         logger,
	}
}

// SetupRoutes registers the REST surface.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			// Public: registration, login, directory.
			users.POST("/register", hm.accountHandler.Register)
			users.POST("/login", hm.accountHandler.Login)
			users.GET("", hm.userHandler.ListUsers)

			// Authenticated: own profile and the directory export.
			authed := users.Group("")
			authed.Use(hm.authMiddleware.AuthMiddleware())
			{
				authed.GET("/me", hm.accountHandler.GetMe)
				authed.PUT("/me", hm.accountHandler.UpdateMe)
				authed.GET("/export", hm.userHandler.ExportUsers)
			}

			// Keep the parameterized route last; static segments win over it.
			users.GET("/:id", hm.userHandler.GetUser)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Route not found"})
	})
}

// healthCheck is liveness only and always answers 200. A failing dependency
// is logged, never surfaced to the caller.
func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		hm.logger.Warn("health check dependency failure", "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
