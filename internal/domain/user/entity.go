// Package user contains the user account domain model.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrNameRequired  = errors.New("name is required")
	ErrPasswordShort = errors.New("password must be at least 8 characters")
)

// User is an account holder. Favorites are recipe slugs against the
// static catalog.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Favorites    []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// NewUser creates a user with a pre-computed password hash.
func NewUser(email, name, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: passwordHash,
		Favorites:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsFavorite reports whether slug is in the user's favorites.
func (u *User) IsFavorite(slug string) bool {
	for _, s := range u.Favorites {
		if s == slug {
			return true
		}
	}
	return false
}

// ToggleFavorite adds or removes a recipe slug and reports whether it is
// a favorite afterwards.
func (u *User) ToggleFavorite(slug string) bool {
	for i, s := range u.Favorites {
		if s == slug {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			u.UpdatedAt = time.Now()
			return false
		}
	}
	u.Favorites = append(u.Favorites, slug)
	u.UpdatedAt = time.Now()
	return true
}
