package services

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/litconnect/account-service/internal/auth"
	"github.com/litconnect/account-service/internal/events"
	"github.com/litconnect/account-service/internal/repositories"
	"github.com/litconnect/account-service/internal/validator"
)

// ManagerConfig carries every dependency the service layer needs. All of it
// is injected from main; services never construct their own collaborators.
type ManagerConfig struct {
	Repo      repositories.Repository
	DB        *gorm.DB
	Logger    *slog.Logger
	Validator *validator.Validator
	Hasher    auth.PasswordHasher
	Tokens    *auth.TokenManager
	Publisher events.EventPublisher
}

// DefaultServiceManager wires the concrete services together.
type DefaultServiceManager struct {
	config ManagerConfig

	account AccountService
	export  ExportService
}

func NewDefaultServiceManager(config ManagerConfig) *DefaultServiceManager {
	return &DefaultServiceManager{config: config}
}

func (m *DefaultServiceManager) Initialize(ctx context.Context) error {
	m.account = NewAccountService(
		m.config.Repo,
		m.config.Logger,
		m.config.Validator,
		m.config.Hasher,
		m.config.Tokens,
		m.config.Publisher,
	)
	m.export = NewExportService(m.config.Repo, m.config.Logger)
	return nil
}

func (m *DefaultServiceManager) Account() AccountService {
	return m.account
}

func (m *DefaultServiceManager) Export() ExportService {
	return m.export
}

func (m *DefaultServiceManager) HealthCheck(ctx context.Context) error {
	return m.config.Repo.Ping(ctx)
}

func (m *DefaultServiceManager) Shutdown(ctx context.Context) error {
	return nil
}
