package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")
var ErrExperienceNotFound = errors.New("experience entry not found")

// SocialLinks holds the optional social media URLs of a profile.
type SocialLinks struct {
	YouTube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

// Experience is a work-history entry embedded in a Profile. It has no
// lifecycle of its own; the ID only identifies it for removal.
type Experience struct {
	ID          string     `json:"id" bson:"id"`
	Title       string     `json:"title" bson:"title"`
	Company     string     `json:"company" bson:"company"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time  `json:"from" bson:"from"`
	To          *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool       `json:"current" bson:"current"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
}

// Profile is the public-facing extension of a User. At most one exists per
// user, enforced by the owner-keyed upsert and a unique index on user_id.
type Profile struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	UserID     string       `json:"user" bson:"user_id"`
	Status     string       `json:"status" bson:"status"`
	Skills     []string     `json:"skills" bson:"skills"`
	Experience []Experience `json:"exp" bson:"exp"`
	Social     SocialLinks  `json:"social" bson:"social"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at"`
}

// AddExperience prepends an entry so the list stays most-recent-first.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append([]Experience{e}, p.Experience...)
}

// RemoveExperience removes the entry with the given id. Unknown ids return
// ErrExperienceNotFound and leave the list untouched.
func (p *Profile) RemoveExperience(id string) error {
	for i, e := range p.Experience {
		if e.ID == id {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return nil
		}
	}
	return ErrExperienceNotFound
}

// ParseSkills splits a comma-delimited skills string into an ordered list,
// trimming whitespace and dropping empty items.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ProfileView is a Profile joined with the limited owner fields exposed on
// public reads (the "populate user" shape of the directory endpoints).
type ProfileView struct {
	Profile
	UserName   string `json:"name"`
	UserAvatar string `json:"avatar"`
}
