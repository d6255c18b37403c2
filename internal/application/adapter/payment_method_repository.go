// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"

	"github.com/household-finance/backend/internal/domain/entity"
)

// PaymentMethodRepository defines the interface for payment method data access.
type PaymentMethodRepository interface {
	// FindAll retrieves every payment method ordered by name ASC.
	FindAll(ctx context.Context) ([]*entity.PaymentMethod, error)

	// EnsureExists inserts the payment method unless a row with the same
	// name already exists. Used by seeding.
	EnsureExists(ctx context.Context, method *entity.PaymentMethod) error
}
