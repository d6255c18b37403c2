// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/application/adapter"
)

// DeactivateCategoryUseCase handles the soft delete of a category.
type DeactivateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeactivateCategoryUseCase creates a new DeactivateCategoryUseCase instance.
func NewDeactivateCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeactivateCategoryUseCase {
	return &DeactivateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute flips the category's active flag to false. Deactivating an
// already inactive or unknown category is a no-op.
func (uc *DeactivateCategoryUseCase) Execute(ctx context.Context, categoryID uuid.UUID) error {
	if err := uc.categoryRepo.Deactivate(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to deactivate category: %w", err)
	}
	return nil
}
