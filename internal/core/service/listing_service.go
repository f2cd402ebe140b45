package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/devmarket/devmarket-api/internal/core/domain"
	"github.com/devmarket/devmarket-api/internal/core/ports"
)

// ListingService implements listing use cases with ownership enforcement on
// mutations.
type ListingService struct {
	repo ports.ListingRepository
	log  zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, log zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, log: log}
}

// Create persists a new listing owned by the caller.
func (s *ListingService) Create(ctx context.Context, input ports.CreateListingInput) (*domain.Listing, error) {
	currency := input.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	listing := &domain.Listing{
		UserID:           input.UserID,
		Name:             input.Name,
		Price:            input.Price,
		DealPrice:        input.DealPrice,
		Currency:         currency,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		Image:            input.Image,
		Images:           input.Images,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.log.Info().Str("listing_id", created.ID).Str("user_id", input.UserID).Msg("listing created")
	return created, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ListingService) List(ctx context.Context) ([]domain.Listing, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial update after verifying the caller owns the
// listing. Non-owners fail with domain.ErrForbidden.
func (s *ListingService) Update(ctx context.Context, input ports.UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.repo.FindByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if !listing.OwnedBy(input.CallerID) {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		listing.Name = *input.Name
	}
	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.DealPrice != nil {
		listing.DealPrice = *input.DealPrice
	}
	if input.Currency != nil {
		listing.Currency = *input.Currency
	}
	if input.ShortDescription != nil {
		listing.ShortDescription = *input.ShortDescription
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Image != nil {
		listing.Image = *input.Image
	}
	if input.Images != nil {
		listing.Images = input.Images
	}

	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	s.log.Info().Str("listing_id", listing.ID).Str("user_id", input.CallerID).Msg("listing updated")
	return listing, nil
}

// Delete removes a listing after verifying ownership.
func (s *ListingService) Delete(ctx context.Context, callerID, id string) error {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !listing.OwnedBy(callerID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	s.log.Info().Str("listing_id", id).Str("user_id", callerID).Msg("listing deleted")
	return nil
}
