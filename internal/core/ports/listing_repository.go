package ports

import (
	"context"

	"github.com/devmarket/devmarket-api/internal/core/domain"
)

// ListingRepository defines persistence operations for listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	// FindByID retrieves a listing. Malformed ids are reported as
	// domain.ErrListingNotFound.
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	FindAll(ctx context.Context) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
}
