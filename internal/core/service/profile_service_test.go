package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/devmarket/devmarket-api/internal/core/domain"
	"github.com/devmarket/devmarket-api/internal/core/ports"
)

type stubProfileRepo struct {
	profiles map[string]*domain.Profile // keyed by owner id
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func cloneProfile(p *domain.Profile) *domain.Profile {
	clone := *p
	clone.Skills = append([]string(nil), p.Skills...)
	clone.Experience = append([]domain.Experience(nil), p.Experience...)
	return &clone
}

func (r *stubProfileRepo) Upsert(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	existing, ok := r.profiles[profile.UserID]
	if !ok {
		created := cloneProfile(profile)
		created.ID = "profile_" + profile.UserID
		created.CreatedAt = time.Now().UTC()
		if created.Experience == nil {
			created.Experience = []domain.Experience{}
		}
		r.profiles[profile.UserID] = created
		return cloneProfile(created), nil
	}
	existing.Status = profile.Status
	existing.Skills = append([]string(nil), profile.Skills...)
	existing.Social = profile.Social
	return cloneProfile(existing), nil
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) FindViewByUserID(ctx context.Context, userID string) (*domain.ProfileView, error) {
	p, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.ProfileView{Profile: *p, UserName: "Test User"}, nil
}

func (r *stubProfileRepo) FindAllViews(_ context.Context) ([]domain.ProfileView, error) {
	var views []domain.ProfileView
	for _, p := range r.profiles {
		views = append(views, domain.ProfileView{Profile: *cloneProfile(p)})
	}
	return views, nil
}

func (r *stubProfileRepo) SetExperience(_ context.Context, userID string, exp []domain.Experience) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	p.Experience = append([]domain.Experience(nil), exp...)
	return cloneProfile(p), nil
}

func (r *stubProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	if _, ok := r.profiles[userID]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.profiles, userID)
	return nil
}

type stubDirectoryCache struct {
	views        []domain.ProfileView
	warm         bool
	sets         int
	invalidates  int
	getErr       error
	setErr       error
	invalidatErr error
}

func (c *stubDirectoryCache) GetDirectory(context.Context) ([]domain.ProfileView, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.views, c.warm, nil
}

func (c *stubDirectoryCache) SetDirectory(_ context.Context, views []domain.ProfileView) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.views = views
	c.warm = true
	c.sets++
	return nil
}

func (c *stubDirectoryCache) Invalidate(context.Context) error {
	if c.invalidatErr != nil {
		return c.invalidatErr
	}
	c.views = nil
	c.warm = false
	c.invalidates++
	return nil
}

func newProfileService(profiles *stubProfileRepo, users *stubUserRepo, cache *stubDirectoryCache) *ProfileService {
	return NewProfileService(profiles, users, cache, zerolog.Nop())
}

func TestProfileService_Upsert_Idempotent(t *testing.T) {
	repo := newStubProfileRepo()
	svc := newProfileService(repo, newStubUserRepo(), &stubDirectoryCache{})

	input := ports.UpsertProfileInput{
		UserID: "u1",
		Status: "open to work",
		Skills: "Go, MongoDB , Redis",
	}

	first, err := svc.Upsert(context.Background(), input)
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	second, err := svc.Upsert(context.Background(), input)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if len(repo.profiles) != 1 {
		t.Fatalf("expected exactly one profile, got %d", len(repo.profiles))
	}
	if first.ID != second.ID {
		t.Fatalf("upsert created a second document: %s vs %s", first.ID, second.ID)
	}
	if want := []string{"Go", "MongoDB", "Redis"}; !reflect.DeepEqual(second.Skills, want) {
		t.Fatalf("skills = %v, want %v", second.Skills, want)
	}
}

func TestProfileService_Upsert_InvalidatesDirectory(t *testing.T) {
	cache := &stubDirectoryCache{warm: true}
	svc := newProfileService(newStubProfileRepo(), newStubUserRepo(), cache)

	if _, err := svc.Upsert(context.Background(), ports.UpsertProfileInput{UserID: "u1", Status: "x", Skills: "go"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("expected 1 invalidation, got %d", cache.invalidates)
	}
}

func TestProfileService_ListAll_CacheHit(t *testing.T) {
	cached := []domain.ProfileView{{UserName: "Cached"}}
	cache := &stubDirectoryCache{views: cached, warm: true}
	repo := newStubProfileRepo()
	repo.profiles["u1"] = &domain.Profile{ID: "p1", UserID: "u1"}
	svc := newProfileService(repo, newStubUserRepo(), cache)

	views, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(views) != 1 || views[0].UserName != "Cached" {
		t.Fatalf("expected cached directory, got %+v", views)
	}
}

func TestProfileService_ListAll_CacheMissPopulates(t *testing.T) {
	cache := &stubDirectoryCache{}
	repo := newStubProfileRepo()
	repo.profiles["u1"] = &domain.Profile{ID: "p1", UserID: "u1"}
	svc := newProfileService(repo, newStubUserRepo(), cache)

	views, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(views))
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache to be populated")
	}
}

func TestProfileService_ListAll_CacheErrorFallsThrough(t *testing.T) {
	cache := &stubDirectoryCache{getErr: context.DeadlineExceeded}
	repo := newStubProfileRepo()
	repo.profiles["u1"] = &domain.Profile{ID: "p1", UserID: "u1"}
	svc := newProfileService(repo, newStubUserRepo(), cache)

	views, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("cache error should fall through to store, got %+v", views)
	}
}

func TestProfileService_Experience_RoundTrip(t *testing.T) {
	repo := newStubProfileRepo()
	svc := newProfileService(repo, newStubUserRepo(), &stubDirectoryCache{})

	_, _ = svc.Upsert(context.Background(), ports.UpsertProfileInput{UserID: "u1", Status: "x", Skills: "go"})

	updated, err := svc.AddExperience(context.Background(), ports.AddExperienceInput{
		UserID:  "u1",
		Title:   "Backend Engineer",
		Company: "Acme",
		From:    time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("AddExperience failed: %v", err)
	}
	if len(updated.Experience) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(updated.Experience))
	}
	id := updated.Experience[0].ID
	if id == "" {
		t.Fatalf("expected generated experience id")
	}

	restored, err := svc.RemoveExperience(context.Background(), "u1", id)
	if err != nil {
		t.Fatalf("RemoveExperience failed: %v", err)
	}
	if len(restored.Experience) != 0 {
		t.Fatalf("add-then-remove did not restore list: %v", restored.Experience)
	}
}

func TestProfileService_AddExperience_NoProfile(t *testing.T) {
	svc := newProfileService(newStubProfileRepo(), newStubUserRepo(), &stubDirectoryCache{})

	_, err := svc.AddExperience(context.Background(), ports.AddExperienceInput{UserID: "ghost", Title: "T", Company: "C"})
	if err != domain.ErrProfileNotFound {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileService_RemoveExperience_UnknownID(t *testing.T) {
	repo := newStubProfileRepo()
	svc := newProfileService(repo, newStubUserRepo(), &stubDirectoryCache{})

	_, _ = svc.Upsert(context.Background(), ports.UpsertProfileInput{UserID: "u1", Status: "x", Skills: "go"})
	_, _ = svc.AddExperience(context.Background(), ports.AddExperienceInput{UserID: "u1", Title: "T", Company: "C"})

	if _, err := svc.RemoveExperience(context.Background(), "u1", "missing"); err != domain.ErrExperienceNotFound {
		t.Fatalf("expected ErrExperienceNotFound, got %v", err)
	}
	if len(repo.profiles["u1"].Experience) != 1 {
		t.Fatalf("experience list was modified on unknown id")
	}
}

func TestProfileService_DeleteMine_CascadesToAccount(t *testing.T) {
	users := newStubUserRepo()
	created, _ := users.Create(context.Background(), &domain.User{Email: "a@example.com"})

	profiles := newStubProfileRepo()
	svc := newProfileService(profiles, users, &stubDirectoryCache{})
	_, _ = svc.Upsert(context.Background(), ports.UpsertProfileInput{UserID: created.ID, Status: "x", Skills: "go"})

	if err := svc.DeleteMine(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteMine failed: %v", err)
	}
	if len(profiles.profiles) != 0 {
		t.Fatalf("profile not removed")
	}
	if len(users.deleted) != 1 || users.deleted[0] != created.ID {
		t.Fatalf("account not removed: %v", users.deleted)
	}
}

func TestProfileService_DeleteMine_NoProfileStillDeletesAccount(t *testing.T) {
	users := newStubUserRepo()
	created, _ := users.Create(context.Background(), &domain.User{Email: "b@example.com"})

	svc := newProfileService(newStubProfileRepo(), users, &stubDirectoryCache{})
	if err := svc.DeleteMine(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteMine failed: %v", err)
	}
	if len(users.deleted) != 1 {
		t.Fatalf("account not removed")
	}
}
