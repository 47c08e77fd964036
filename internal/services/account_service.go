package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/litconnect/account-service/internal/auth"
	"github.com/litconnect/account-service/internal/events"
	"github.com/litconnect/account-service/internal/models"
	"github.com/litconnect/account-service/internal/repositories"
	"github.com/litconnect/account-service/internal/validator"
)

// directoryLimit caps the public user directory.
const directoryLimit = 50

type accountService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	hasher    auth.PasswordHasher
	tokens    *auth.TokenManager
	publisher events.EventPublisher
}

func NewAccountService(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	hasher auth.PasswordHasher,
	tokens *auth.TokenManager,
	publisher events.EventPublisher,
) AccountService {
	return &accountService{
		repo:      repo,
		logger:    logger,
		validator: v,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
	}
}

// Register creates an account and immediately opens a session for it.
func (s *accountService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	// Normalize before validating so padded input is accepted, not rejected.
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = normalizeEmail(req.Email)
	req.Headline = trimPtr(req.Headline)
	req.School = trimPtr(req.School)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	email := req.Email

	// Fast-path duplicate check. The unique index remains the authority; a
	// concurrent insert between this check and Create is caught below.
	exists, err := s.repo.User().ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: hash,
		Headline:     req.Headline,
		School:       req.School,
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		if repositories.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.publishRegistered(user)

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return &AuthResponse{User: user, Token: token}, nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password collapse into the same error.
func (s *accountService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &AuthResponse{User: user, Token: token}, nil
}

// GetMe resolves the authenticated subject to its current account row.
func (s *accountService) GetMe(ctx context.Context, subjectID string) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, subjectID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			// Valid token for a since-deleted account.
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// UpdateMe applies a partial profile update to the authenticated subject's
// own row. Fields left nil in the request stay untouched.
func (s *accountService) UpdateMe(ctx context.Context, subjectID string, req *UpdateProfileRequest) (*models.User, error) {
	req.FullName = trimPtr(req.FullName)
	req.Headline = trimPtr(req.Headline)
	req.School = trimPtr(req.School)

	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	update := repositories.UserUpdate{
		FullName: req.FullName,
		Headline: req.Headline,
		School:   req.School,
	}

	user, err := s.repo.User().UpdateProfile(ctx, subjectID, update)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	s.logger.Info("profile updated", "user_id", subjectID)
	return user, nil
}

// ListUsers returns the newest accounts, capped at directoryLimit.
func (s *accountService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.User().List(ctx, directoryLimit)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// GetUserByID fetches any account by its opaque identifier. A malformed id
// is rejected before touching the store.
func (s *accountService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// publishRegistered emits the registration event best-effort. A broker
// outage must not fail the registration itself.
func (s *accountService) publishRegistered(user *models.User) {
	event := events.UserRegistered{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         string(user.Role),
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(events.TopicUserRegistered, event); err != nil {
		s.logger.Warn("failed to publish registration event", "user_id", user.ID, "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
