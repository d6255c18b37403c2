// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is reference data describing how a transaction was paid.
// It has no lifecycle beyond creation.
type PaymentMethod struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewPaymentMethod creates a new PaymentMethod entity.
func NewPaymentMethod(name string) *PaymentMethod {
	return &PaymentMethod{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
