package ports

import (
	"context"
	"time"

	"github.com/devmarket/devmarket-api/internal/core/domain"
)

// UpsertProfileInput carries the profile fields an owner may set. Skills is
// the raw comma-delimited string from the client.
type UpsertProfileInput struct {
	UserID    string
	Status    string
	Skills    string
	YouTube   string
	Facebook  string
	LinkedIn  string
	Instagram string
}

// AddExperienceInput carries a new work-history entry.
type AddExperienceInput struct {
	UserID      string
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// ProfileService defines profile use cases.
type ProfileService interface {
	GetMine(ctx context.Context, userID string) (*domain.ProfileView, error)
	Upsert(ctx context.Context, input UpsertProfileInput) (*domain.Profile, error)
	ListAll(ctx context.Context) ([]domain.ProfileView, error)
	GetByUser(ctx context.Context, userID string) (*domain.ProfileView, error)
	// DeleteMine removes the caller's profile and the account itself.
	DeleteMine(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, input AddExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error)
}
