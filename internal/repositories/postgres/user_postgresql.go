package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/litconnect/account-service/internal/cache"
	"github.com/litconnect/account-service/internal/models"
	"github.com/litconnect/account-service/internal/repositories"
)

type userRepository struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewUserPostgreSQL(db *gorm.DB, cacheManager *cache.CacheManager) repositories.UserRepository {
	return &userRepository{db: db, cacheManager: cacheManager}
}

// ===== BASIC CRUD OPERATIONS =====

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return handleDBError(err, "create user")
	}
	cache.InvalidateUserCache(ctx, r.cacheManager, user.ID, user.Email)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	cacheKey := fmt.Sprintf("id:%s", id)

	var cached models.User
	if err := r.cacheManager.User.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get user by id")
	}

	// Cache failures never fail the read.
	_ = r.cacheManager.User.Set(ctx, cacheKey, &user, cache.UserCacheConfig.TTL)
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, handleDBError(err, "get user by email")
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, update repositories.UserUpdate) (*models.User, error) {
	columns := map[string]interface{}{}
	if update.FullName != nil {
		columns["full_name"] = *update.FullName
	}
	if update.Headline != nil {
		columns["headline"] = *update.Headline
	}
	if update.School != nil {
		columns["school"] = *update.School
	}

	var user models.User
	if len(columns) > 0 {
		result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(columns)
		if result.Error != nil {
			return nil, handleDBError(result.Error, "update user profile")
		}
		if result.RowsAffected == 0 {
			return nil, repositories.ErrNotFound
		}
	}

	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "reload user after update")
	}

	cache.InvalidateUserCache(ctx, r.cacheManager, user.ID, user.Email)
	return &user, nil
}

// ===== QUERY OPERATIONS =====

func (r *userRepository) List(ctx context.Context, limit int) ([]*models.User, error) {
	cacheKey := fmt.Sprintf("list:%d", limit)

	var cached []*models.User
	if err := r.cacheManager.Directory.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	var users []*models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, handleDBError(err, "list users")
	}

	// Best-effort; the store already answered.
	_ = r.cacheManager.Directory.Set(ctx, cacheKey, users, cache.DirectoryCacheConfig.TTL)
	return users, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, handleDBError(err, "check email exists")
	}
	return count > 0, nil
}

// handleDBError translates GORM errors into the repository taxonomy.
// ErrDuplicatedKey relies on TranslateError being enabled on the connection.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", operation, repositories.ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", operation, repositories.ErrDuplicateKey)
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}
