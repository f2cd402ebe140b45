package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devmarket/devmarket-api/internal/api/handler"
	"github.com/devmarket/devmarket-api/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_ValidationErrorList(t *testing.T) {
	rec, body := render(t, &handler.ValidationError{Fields: []handler.FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "company", Message: "company is required"},
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", body)
	}
	first, _ := errs[0].(map[string]any)
	if first["field"] != "title" || first["message"] != "title is required" {
		t.Fatalf("unexpected first error: %v", first)
	}
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrProfileNotFound, http.StatusNotFound, "profile not found"},
		{domain.ErrExperienceNotFound, http.StatusNotFound, "experience entry not found"},
		{domain.ErrListingNotFound, http.StatusNotFound, "listing not found"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	}

	for _, tc := range cases {
		rec, body := render(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] != tc.msg {
			t.Fatalf("%v: expected %q, got %v", tc.err, tc.msg, body["error"])
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec, _ := render(t, errors.Join(errors.New("delete profile"), domain.ErrProfileNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", rec.Code)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	rec, body := render(t, errors.New("mongo: socket was unexpectedly closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body["error"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "missing authorization header" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}
