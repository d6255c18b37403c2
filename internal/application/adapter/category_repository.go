// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	// Upsert inserts the category or, when a row with the same name already
	// exists, updates its color and type in place.
	Upsert(ctx context.Context, category *entity.Category) error

	// FindAll retrieves every category ordered by active DESC, name ASC.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Deactivate flips the category's active flag to false.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
