// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/domain/entity"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Upsert inserts the user or, when a row with the same name already
	// exists, updates its color in place. The entity is updated with the
	// persisted row's identity either way.
	Upsert(ctx context.Context, user *entity.User) error

	// FindAll retrieves every user ordered by active DESC, name ASC.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Deactivate flips the user's active flag to false. The row is kept so
	// transaction joins still resolve.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
