// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// CreateUserInput represents the input for user creation.
type CreateUserInput struct {
	Name  string
	Color string
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles user creation logic. Creation is an upsert by
// unique name: re-issuing the same request never duplicates a row, and a
// changed color updates the existing row in place.
type CreateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(userRepo adapter.UserRepository) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo}
}

// Execute performs the user creation.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserNameRequired,
			"name is required",
			domainerror.ErrUserNameRequired,
		)
	}

	user := entity.NewUser(name, input.Color)
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{User: user}, nil
}
