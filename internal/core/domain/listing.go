package domain

import (
	"errors"
	"time"
)

var ErrListingNotFound = errors.New("listing not found")
var ErrForbidden = errors.New("access forbidden")

// DefaultCurrency applies when a listing is created without one.
const DefaultCurrency = "USD"

// Listing is a sellable item owned by a single user.
type Listing struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	UserID           string    `json:"user" bson:"user_id"`
	Name             string    `json:"name" bson:"name"`
	Price            float64   `json:"price" bson:"price"`
	DealPrice        float64   `json:"deal_price" bson:"deal_price"`
	Currency         string    `json:"currency" bson:"currency"`
	ShortDescription string    `json:"short_des,omitempty" bson:"short_des,omitempty"`
	Description      string    `json:"des,omitempty" bson:"des,omitempty"`
	Image            string    `json:"image,omitempty" bson:"image,omitempty"`
	Images           []string  `json:"images,omitempty" bson:"images,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// OwnedBy reports whether the listing belongs to the given user.
func (l *Listing) OwnedBy(userID string) bool {
	return l.UserID == userID
}
