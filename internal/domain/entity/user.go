// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserColor is the color assigned to users created without one.
const DefaultUserColor = "#1976d2"

// User represents a household member that transactions are attributed to.
// Users are never hard-deleted; Active flips to false instead so existing
// transactions keep resolving their owner in joined reads.
type User struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new active User entity.
func NewUser(name, color string) *User {
	if color == "" {
		color = DefaultUserColor
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
