package domain

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an authenticatable account. PasswordHash is never serialized
// and is projected out of reads at the repository boundary.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullname,omitempty"`
	Address      string    `json:"address,omitempty"`
	AvatarURL    string    `json:"avatar"`
	Role         string    `json:"role,omitempty"`
	Wallet       string    `json:"wallet,omitempty"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// AvatarFor derives a deterministic Gravatar URL from an email address
// (200px, PG rated, "mystery man" fallback).
func AvatarFor(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
