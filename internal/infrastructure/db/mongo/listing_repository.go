package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devmarket/devmarket-api/internal/core/domain"
)

const listingsCollection = "listings"

type ListingRepository struct {
	coll *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{coll: db.Collection(listingsCollection)}
}

type listingDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Name      string             `bson:"name"`
	Price     float64            `bson:"price"`
	DealPrice float64            `bson:"deal_price"`
	Currency  string             `bson:"currency"`
	ShortDes  string             `bson:"short_des,omitempty"`
	Des       string             `bson:"des,omitempty"`
	Image     string             `bson:"image,omitempty"`
	Images    []string           `bson:"images,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(listing.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := listingDoc{
		UserID:    oid,
		Name:      listing.Name,
		Price:     listing.Price,
		DealPrice: listing.DealPrice,
		Currency:  listing.Currency,
		ShortDes:  listing.ShortDescription,
		Des:       listing.Description,
		Image:     listing.Image,
		Images:    listing.Images,
		CreatedAt: listing.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}

	created := *listing
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrListingNotFound
	}

	var doc listingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return docToListing(doc), nil
}

func (r *ListingRepository) FindAll(ctx context.Context) ([]domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer cur.Close(ctx)

	var listings []domain.Listing
	for cur.Next(ctx) {
		var doc listingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode listing: %w", err)
		}
		listings = append(listings, *docToListing(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(listing.ID)
	if err != nil {
		return domain.ErrListingNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":       listing.Name,
		"price":      listing.Price,
		"deal_price": listing.DealPrice,
		"currency":   listing.Currency,
		"short_des":  listing.ShortDescription,
		"des":        listing.Description,
		"image":      listing.Image,
		"images":     listing.Images,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrListingNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by ownership lookups.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func docToListing(doc listingDoc) *domain.Listing {
	return &domain.Listing{
		ID:               doc.ID.Hex(),
		UserID:           doc.UserID.Hex(),
		Name:             doc.Name,
		Price:            doc.Price,
		DealPrice:        doc.DealPrice,
		Currency:         doc.Currency,
		ShortDescription: doc.ShortDes,
		Description:      doc.Des,
		Image:            doc.Image,
		Images:           doc.Images,
		CreatedAt:        doc.CreatedAt,
	}
}
