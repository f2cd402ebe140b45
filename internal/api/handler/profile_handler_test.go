package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devmarket/devmarket-api/internal/core/domain"
	"github.com/devmarket/devmarket-api/internal/core/ports"
)

type stubProfileService struct {
	getMineFn    func(ctx context.Context, userID string) (*domain.ProfileView, error)
	upsertFn     func(ctx context.Context, input ports.UpsertProfileInput) (*domain.Profile, error)
	listAllFn    func(ctx context.Context) ([]domain.ProfileView, error)
	getByUserFn  func(ctx context.Context, userID string) (*domain.ProfileView, error)
	deleteMineFn func(ctx context.Context, userID string) error
	addExpFn     func(ctx context.Context, input ports.AddExperienceInput) (*domain.Profile, error)
	removeExpFn  func(ctx context.Context, userID, experienceID string) (*domain.Profile, error)
}

func (s *stubProfileService) GetMine(ctx context.Context, userID string) (*domain.ProfileView, error) {
	return s.getMineFn(ctx, userID)
}

func (s *stubProfileService) Upsert(ctx context.Context, input ports.UpsertProfileInput) (*domain.Profile, error) {
	return s.upsertFn(ctx, input)
}

func (s *stubProfileService) ListAll(ctx context.Context) ([]domain.ProfileView, error) {
	return s.listAllFn(ctx)
}

func (s *stubProfileService) GetByUser(ctx context.Context, userID string) (*domain.ProfileView, error) {
	return s.getByUserFn(ctx, userID)
}

func (s *stubProfileService) DeleteMine(ctx context.Context, userID string) error {
	return s.deleteMineFn(ctx, userID)
}

func (s *stubProfileService) AddExperience(ctx context.Context, input ports.AddExperienceInput) (*domain.Profile, error) {
	return s.addExpFn(ctx, input)
}

func (s *stubProfileService) RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
	return s.removeExpFn(ctx, userID, experienceID)
}

func TestProfileHandler_GetMine_RequiresAuth(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/profile/me", "")

	err := h.GetMine(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestProfileHandler_GetMine_NotFoundPropagates(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		getMineFn: func(context.Context, string) (*domain.ProfileView, error) {
			return nil, domain.ErrProfileNotFound
		},
	})

	c, _ := newTestContext(t, http.MethodGet, "/api/profile/me", "")
	c.Set("user_id", "u1")

	if err := h.GetMine(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileHandler_Upsert_Success(t *testing.T) {
	var got ports.UpsertProfileInput
	h := NewProfileHandler(&stubProfileService{
		upsertFn: func(_ context.Context, input ports.UpsertProfileInput) (*domain.Profile, error) {
			got = input
			return &domain.Profile{ID: "p1", UserID: input.UserID}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/profile",
		`{"status":"freelancer","skills":"Go, Redis","youtube":"https://youtube.com/@dev"}`)
	c.Set("user_id", "u1")

	if err := h.Upsert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.UserID != "u1" || got.Skills != "Go, Redis" || got.YouTube == "" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestProfileHandler_Upsert_MissingFields(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/profile", `{}`)
	c.Set("user_id", "u1")

	err := h.Upsert(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected status and skills errors, got %+v", ve.Fields)
	}
}

func TestProfileHandler_AddExperience_MissingTitle(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/profile/exp",
		`{"company":"Acme","from":"2023-01-02"}`)
	c.Set("user_id", "u1")

	err := h.AddExperience(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	found := false
	for _, fe := range ve.Fields {
		if fe.Field == "title" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an error for title, got %+v", ve.Fields)
	}
}

func TestProfileHandler_AddExperience_Success(t *testing.T) {
	var got ports.AddExperienceInput
	h := NewProfileHandler(&stubProfileService{
		addExpFn: func(_ context.Context, input ports.AddExperienceInput) (*domain.Profile, error) {
			got = input
			return &domain.Profile{ID: "p1"}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPut, "/api/profile/exp",
		`{"title":"Backend Engineer","company":"Acme","from":"2023-01-02","current":true}`)
	c.Set("user_id", "u1")

	if err := h.AddExperience(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Title != "Backend Engineer" || !got.Current {
		t.Fatalf("unexpected input: %+v", got)
	}
	if got.From.Year() != 2023 {
		t.Fatalf("from date not parsed: %v", got.From)
	}
	if got.To != nil {
		t.Fatalf("expected nil to date, got %v", got.To)
	}
}

func TestProfileHandler_AddExperience_BadDate(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/profile/exp",
		`{"title":"T","company":"C","from":"yesterday"}`)
	c.Set("user_id", "u1")

	err := h.AddExperience(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "from" {
		t.Fatalf("expected a from error, got %+v", ve.Fields)
	}
}

func TestProfileHandler_RemoveExperience_PassesParams(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		removeExpFn: func(_ context.Context, userID, experienceID string) (*domain.Profile, error) {
			if userID != "u1" || experienceID != "exp42" {
				t.Fatalf("unexpected args: %s %s", userID, experienceID)
			}
			return &domain.Profile{ID: "p1"}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodDelete, "/api/profile/exp/exp42", "")
	c.SetParamNames("exp_id")
	c.SetParamValues("exp42")
	c.Set("user_id", "u1")

	if err := h.RemoveExperience(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_DeleteMine_ReturnsMessage(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		deleteMineFn: func(_ context.Context, userID string) error {
			if userID != "u1" {
				t.Fatalf("unexpected user: %s", userID)
			}
			return nil
		},
	})

	c, rec := newTestContext(t, http.MethodDelete, "/api/profile", "")
	c.Set("user_id", "u1")

	if err := h.DeleteMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["msg"] != "user deleted" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestProfileHandler_ListAll_EmptyIsArray(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		listAllFn: func(context.Context) ([]domain.ProfileView, error) {
			return nil, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/profile", "")

	if err := h.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
