// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-finance/backend/internal/domain/entity"
)

// CreateUserRequest represents the request body for user creation.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Color string `json:"color,omitempty" binding:"omitempty,max=7"`
}

// UpdateUserRequest represents the request body for user update.
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Color  *string `json:"color,omitempty" binding:"omitempty,max=7"`
	Active *bool   `json:"active,omitempty"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a User entity to a UserResponse.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Color:     user.Color,
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserListResponse converts a list of User entities to responses.
func ToUserListResponse(users []*entity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
