package repositories

import (
	"context"

	"github.com/litconnect/account-service/internal/models"
)

// UserUpdate carries a partial profile update. Nil fields are left unchanged
// in the store.
type UserUpdate struct {
	FullName *string
	Headline *string
	School   *string
}

// UserRepository is the Credential Store interface.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error

	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateProfile applies only the non-nil fields of update and returns the
	// resulting row.
	UpdateProfile(ctx context.Context, id string, update UserUpdate) (*models.User, error)

	// List returns up to limit users, newest-created first.
	List(ctx context.Context, limit int) ([]*models.User, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
