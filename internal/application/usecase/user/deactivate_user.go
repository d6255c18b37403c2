// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/application/adapter"
)

// DeactivateUserUseCase handles the soft delete of a user. The row is never
// removed so transaction joins keep resolving.
type DeactivateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeactivateUserUseCase creates a new DeactivateUserUseCase instance.
func NewDeactivateUserUseCase(userRepo adapter.UserRepository) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{userRepo: userRepo}
}

// Execute flips the user's active flag to false. Deactivating an already
// inactive or unknown user is a no-op.
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	if err := uc.userRepo.Deactivate(ctx, userID); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}
