// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
	"github.com/household-finance/backend/internal/integration/persistence/model"
)

// paymentMethodRepository implements the adapter.PaymentMethodRepository interface.
type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository instance.
func NewPaymentMethodRepository(db *gorm.DB) adapter.PaymentMethodRepository {
	return &paymentMethodRepository{
		db: db,
	}
}

// FindAll retrieves every payment method ordered by name.
func (r *paymentMethodRepository) FindAll(ctx context.Context) ([]*entity.PaymentMethod, error) {
	var methodModels []model.PaymentMethodModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&methodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	methods := make([]*entity.PaymentMethod, len(methodModels))
	for i, mm := range methodModels {
		methods[i] = mm.ToEntity()
	}
	return methods, nil
}

// EnsureExists inserts the payment method unless its name is already taken.
func (r *paymentMethodRepository) EnsureExists(ctx context.Context, method *entity.PaymentMethod) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PaymentMethodModel
		err := tx.Where("name = ?", method.Name).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(model.PaymentMethodFromEntity(method)).Error
			}
			return err
		}

		*method = *existing.ToEntity()
		return nil
	})
}
