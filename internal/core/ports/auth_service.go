package ports

import (
	"context"

	"github.com/devmarket/devmarket-api/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	FullName string
	Address  string
	Role     string
	Wallet   string
}

// AuthService defines account and credential use cases. Register issues a
// token for the new account, so registering doubles as a login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
