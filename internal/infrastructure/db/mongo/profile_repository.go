package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devmarket/devmarket-api/internal/core/domain"
)

const profilesCollection = "profiles"

type ProfileRepository struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		coll:  db.Collection(profilesCollection),
		users: db.Collection(usersCollection),
	}
}

type profileDoc struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	UserID    primitive.ObjectID  `bson:"user_id"`
	Status    string              `bson:"status"`
	Skills    []string            `bson:"skills"`
	Exp       []domain.Experience `bson:"exp"`
	Social    domain.SocialLinks  `bson:"social"`
	CreatedAt time.Time           `bson:"created_at"`
}

// Upsert creates or updates the profile keyed by owner in a single
// FindOneAndUpdate, so concurrent upserts by the same owner cannot produce
// two documents.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(profile.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"status": profile.Status,
			"skills": profile.Skills,
			"social": profile.Social,
		},
		"$setOnInsert": bson.M{
			"user_id":    oid,
			"exp":        []domain.Experience{},
			"created_at": time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc profileDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": oid}, update, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return docToProfile(doc), nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := r.findDoc(ctx, userID)
	if err != nil {
		return nil, err
	}
	return docToProfile(*doc), nil
}

// FindViewByUserID returns the profile joined with the owner's name and
// avatar. Malformed ids collapse to domain.ErrProfileNotFound.
func (r *ProfileRepository) FindViewByUserID(ctx context.Context, userID string) (*domain.ProfileView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := r.findDoc(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.toView(ctx, *doc)
}

func (r *ProfileRepository) FindAllViews(ctx context.Context) ([]domain.ProfileView, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	var views []domain.ProfileView
	for cur.Next(ctx) {
		var doc profileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		view, err := r.toView(ctx, doc)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return views, nil
}

func (r *ProfileRepository) SetExperience(ctx context.Context, userID string, exp []domain.Experience) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}
	if exp == nil {
		exp = []domain.Experience{}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc profileDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": oid}, bson.M{"$set": bson.M{"exp": exp}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("set experience: %w", err)
	}
	return docToProfile(doc), nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrProfileNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": oid})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// EnsureIndexes creates the unique owner index backing the one-profile-per-
// account invariant.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ProfileRepository) findDoc(ctx context.Context, userID string) (*profileDoc, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var doc profileDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &doc, nil
}

// toView attaches the owner's public fields. Profiles whose owner vanished
// (account deleted mid-read) keep empty owner fields rather than failing.
func (r *ProfileRepository) toView(ctx context.Context, doc profileDoc) (*domain.ProfileView, error) {
	view := domain.ProfileView{Profile: *docToProfile(doc)}

	var owner struct {
		Name   string `bson:"name"`
		Avatar string `bson:"avatar"`
	}
	err := r.users.FindOne(ctx, bson.M{"_id": doc.UserID},
		options.FindOne().SetProjection(bson.M{"name": 1, "avatar": 1})).Decode(&owner)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("join profile owner: %w", err)
	}

	view.UserName = owner.Name
	view.UserAvatar = owner.Avatar
	return &view, nil
}

func docToProfile(doc profileDoc) *domain.Profile {
	exp := doc.Exp
	if exp == nil {
		exp = []domain.Experience{}
	}
	skills := doc.Skills
	if skills == nil {
		skills = []string{}
	}
	return &domain.Profile{
		ID:         doc.ID.Hex(),
		UserID:     doc.UserID.Hex(),
		Status:     doc.Status,
		Skills:     skills,
		Experience: exp,
		Social:     doc.Social,
		CreatedAt:  doc.CreatedAt,
	}
}
