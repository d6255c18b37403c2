// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// UpdateUserInput represents the input for user update. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	UserID uuid.UUID
	Name   *string
	Color  *string
	Active *bool
}

// UpdateUserOutput represents the output of user update.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles user update logic.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo}
}

// Execute performs the user update. An unknown id is a not-found error.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Color != nil && *input.Color != "" {
		user.Color = *input.Color
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateUserOutput{User: user}, nil
}
