package ports

import (
	"context"

	"github.com/devmarket/devmarket-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// Projection contract: FindByEmail is the only read that returns the
// password hash (it exists for credential verification). Every other read
// excludes the hash at the query level.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}
