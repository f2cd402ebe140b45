package ports

import (
	"context"

	"github.com/devmarket/devmarket-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// Upsert atomically creates or updates the profile keyed by its owner
	// and returns the post-write document.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// FindViewByUserID returns the profile joined with the owner's name and
	// avatar. Malformed ids are reported as domain.ErrProfileNotFound.
	FindViewByUserID(ctx context.Context, userID string) (*domain.ProfileView, error)
	FindAllViews(ctx context.Context) ([]domain.ProfileView, error)
	// SetExperience replaces the experience list of the owner's profile and
	// returns the updated document.
	SetExperience(ctx context.Context, userID string, exp []domain.Experience) (*domain.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
