// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/domain/entity"
)

// PaymentMethodModel represents the payment_methods table in the database.
type PaymentMethodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaymentMethodModel.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToEntity converts a PaymentMethodModel to a domain PaymentMethod entity.
func (m *PaymentMethodModel) ToEntity() *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// PaymentMethodFromEntity creates a PaymentMethodModel from a domain PaymentMethod entity.
func PaymentMethodFromEntity(method *entity.PaymentMethod) *PaymentMethodModel {
	return &PaymentMethodModel{
		ID:        method.ID,
		Name:      method.Name,
		CreatedAt: method.CreatedAt,
	}
}
