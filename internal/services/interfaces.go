package services

import (
	"context"

	"github.com/litconnect/account-service/internal/models"
	"github.com/litconnect/account-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type UpdateProfileRequest = validator.UpdateProfileRequest

// AuthResponse carries the sanitized user and the freshly issued session
// token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type UserResponse struct {
	User *models.User `json:"user"`
}

type UserListResponse struct {
	Users []*models.User `json:"users"`
}

// ===== SERVICES =====

// AccountService orchestrates registration, login, session-bound profile
// operations, and the public directory.
type AccountService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)

	// Identity-scoped operations; subjectID comes from the auth gate.
	GetMe(ctx context.Context, subjectID string) (*models.User, error)
	UpdateMe(ctx context.Context, subjectID string, req *UpdateProfileRequest) (*models.User, error)

	// Public directory operations, no ownership check.
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// ExportService renders the user directory as a spreadsheet.
type ExportService interface {
	ExportUsers(ctx context.Context) ([]byte, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Account() AccountService
	Export() ExportService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
