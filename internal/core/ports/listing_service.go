package ports

import (
	"context"

	"github.com/devmarket/devmarket-api/internal/core/domain"
)

// CreateListingInput carries the fields for a new listing.
type CreateListingInput struct {
	UserID           string
	Name             string
	Price            float64
	DealPrice        float64
	Currency         string
	ShortDescription string
	Description      string
	Image            string
	Images           []string
}

// UpdateListingInput carries a partial update. Nil pointers leave the
// corresponding field unchanged.
type UpdateListingInput struct {
	CallerID         string
	ListingID        string
	Name             *string
	Price            *float64
	DealPrice        *float64
	Currency         *string
	ShortDescription *string
	Description      *string
	Image            *string
	Images           []string
}

// ListingService defines listing use cases. Update and Delete enforce
// ownership: only the account that created a listing may mutate it.
type ListingService interface {
	Create(ctx context.Context, input CreateListingInput) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
	Update(ctx context.Context, input UpdateListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, callerID, id string) error
}
