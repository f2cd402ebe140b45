package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devmarket/devmarket-api/internal/core/domain"
	"github.com/devmarket/devmarket-api/internal/core/ports"
)

// DirectoryCache abstracts the cache in front of the public profile
// directory (Redis). Failures are never fatal; callers fall through to the
// repository.
type DirectoryCache interface {
	GetDirectory(ctx context.Context) ([]domain.ProfileView, bool, error)
	SetDirectory(ctx context.Context, views []domain.ProfileView) error
	Invalidate(ctx context.Context) error
}

// ProfileService implements profile use cases.
type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	cache    DirectoryCache
	log      zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, users ports.UserRepository, cache DirectoryCache, log zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, cache: cache, log: log}
}

// GetMine returns the caller's profile joined with owner name and avatar.
func (s *ProfileService) GetMine(ctx context.Context, userID string) (*domain.ProfileView, error) {
	return s.profiles.FindViewByUserID(ctx, userID)
}

// Upsert creates or updates the caller's profile. At most one profile per
// account exists afterward (owner-keyed atomic upsert).
func (s *ProfileService) Upsert(ctx context.Context, input ports.UpsertProfileInput) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID: input.UserID,
		Status: input.Status,
		Skills: domain.ParseSkills(input.Skills),
		Social: domain.SocialLinks{
			YouTube:   input.YouTube,
			Facebook:  input.Facebook,
			LinkedIn:  input.LinkedIn,
			Instagram: input.Instagram,
		},
	}

	updated, err := s.profiles.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	s.invalidateDirectory(ctx)
	s.log.Info().Str("user_id", input.UserID).Msg("profile upserted")
	return updated, nil
}

// ListAll returns every profile joined with owner fields, served from the
// directory cache when warm.
func (s *ProfileService) ListAll(ctx context.Context) ([]domain.ProfileView, error) {
	if views, ok, err := s.cache.GetDirectory(ctx); err != nil {
		s.log.Warn().Err(err).Msg("directory cache read failed, falling back to store")
	} else if ok {
		return views, nil
	}

	views, err := s.profiles.FindAllViews(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetDirectory(ctx, views); err != nil {
		s.log.Warn().Err(err).Msg("directory cache write failed")
	}
	return views, nil
}

// GetByUser returns the profile of the given account.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*domain.ProfileView, error) {
	return s.profiles.FindViewByUserID(ctx, userID)
}

// DeleteMine removes the caller's profile and then the account itself —
// deleting your profile deletes your login. The two deletes are sequential
// best-effort; a failure between them leaves the account intact and
// re-registerable. Listings owned by the account are left in place.
func (s *ProfileService) DeleteMine(ctx context.Context, userID string) error {
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return fmt.Errorf("delete profile: %w", err)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.invalidateDirectory(ctx)
	s.log.Info().Str("user_id", userID).Msg("profile and account deleted")
	return nil
}

// AddExperience prepends a work-history entry to the caller's profile.
// Callers without a profile get domain.ErrProfileNotFound.
func (s *ProfileService) AddExperience(ctx context.Context, input ports.AddExperienceInput) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	profile.AddExperience(domain.Experience{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	})

	updated, err := s.profiles.SetExperience(ctx, input.UserID, profile.Experience)
	if err != nil {
		return nil, fmt.Errorf("add experience: %w", err)
	}
	return updated, nil
}

// RemoveExperience deletes the entry with the given id from the caller's
// profile. Unknown ids fail with domain.ErrExperienceNotFound and leave the
// list unchanged.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := profile.RemoveExperience(experienceID); err != nil {
		return nil, err
	}

	updated, err := s.profiles.SetExperience(ctx, userID, profile.Experience)
	if err != nil {
		return nil, fmt.Errorf("remove experience: %w", err)
	}
	return updated, nil
}

func (s *ProfileService) invalidateDirectory(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("directory cache invalidation failed")
	}
}
