package handler

import (
	"fmt"
	"time"
)

type upsertProfileRequest struct {
	Status    string `json:"status" validate:"required"`
	Skills    string `json:"skills" validate:"required"`
	YouTube   string `json:"youtube"   validate:"omitempty,url"`
	Facebook  string `json:"facebook"  validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin"  validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
}

// addExperienceRequest carries a new work-history entry. Dates arrive as
// strings so both RFC 3339 timestamps and plain YYYY-MM-DD dates bind.
type addExperienceRequest struct {
	Title       string `json:"title"   validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// parseDate accepts RFC 3339 or YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
