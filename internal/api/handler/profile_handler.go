package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devmarket/devmarket-api/internal/api/metrics"
	"github.com/devmarket/devmarket-api/internal/core/domain"
	"github.com/devmarket/devmarket-api/internal/core/ports"
)

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMine returns the caller's profile with owner name and avatar.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ProfileView
// @Failure      404  {object}  map[string]string
// @Router       /api/profile/me [get]
func (h *ProfileHandler) GetMine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.service.GetMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Upsert creates or updates the caller's profile.
//
// @Summary      Create or update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upsertProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Router       /api/profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Upsert(c.Request().Context(), ports.UpsertProfileInput{
		UserID:    userID,
		Status:    req.Status,
		Skills:    req.Skills,
		YouTube:   req.YouTube,
		Facebook:  req.Facebook,
		LinkedIn:  req.LinkedIn,
		Instagram: req.Instagram,
	})
	if err != nil {
		return err
	}

	metrics.ProfileUpsertsTotal.Inc()
	return c.JSON(http.StatusOK, profile)
}

// ListAll returns the public profile directory.
//
// @Summary      List all profiles
// @Tags         profile
// @Produce      json
// @Success      200  {array}  domain.ProfileView
// @Router       /api/profile [get]
func (h *ProfileHandler) ListAll(c echo.Context) error {
	views, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if views == nil {
		views = []domain.ProfileView{}
	}
	return c.JSON(http.StatusOK, views)
}

// GetByUser returns the profile of the given account.
//
// @Summary      Get a profile by account id
// @Tags         profile
// @Produce      json
// @Param        user_id  path      string  true  "Account id"
// @Success      200      {object}  domain.ProfileView
// @Failure      404      {object}  map[string]string
// @Router       /api/profile/user/{user_id} [get]
func (h *ProfileHandler) GetByUser(c echo.Context) error {
	view, err := h.service.GetByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteMine removes the caller's profile and account.
//
// @Summary      Delete own profile and account
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  msgResponse
// @Router       /api/profile [delete]
func (h *ProfileHandler) DeleteMine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteMine(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "user deleted"})
}

// AddExperience prepends a work-history entry to the caller's profile.
//
// @Summary      Add a work-history entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addExperienceRequest  true  "Experience entry"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/profile/exp [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	from, err := parseDate(req.From)
	if err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "from", Message: "from must be a valid date"}}}
	}
	var to *time.Time
	if req.To != "" {
		t, err := parseDate(req.To)
		if err != nil {
			return &ValidationError{Fields: []FieldError{{Field: "to", Message: "to must be a valid date"}}}
		}
		to = &t
	}

	profile, err := h.service.AddExperience(c.Request().Context(), ports.AddExperienceInput{
		UserID:      userID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ExperienceMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, profile)
}

// RemoveExperience deletes an entry from the caller's profile by id.
//
// @Summary      Remove a work-history entry
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        exp_id  path      string  true  "Experience entry id"
// @Success      200     {object}  domain.Profile
// @Failure      404     {object}  map[string]string
// @Router       /api/profile/exp/{exp_id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.RemoveExperience(c.Request().Context(), userID, c.Param("exp_id"))
	if err != nil {
		return err
	}

	metrics.ExperienceMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, profile)
}
