// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/application/usecase/user"
	domainerror "github.com/household-finance/backend/internal/domain/error"
	"github.com/household-finance/backend/internal/integration/entrypoint/dto"
)

// UserController handles user endpoints.
type UserController struct {
	createUseCase     *user.CreateUserUseCase
	listUseCase       *user.ListUsersUseCase
	updateUseCase     *user.UpdateUserUseCase
	deactivateUseCase *user.DeactivateUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	listUseCase *user.ListUsersUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deactivateUseCase *user.DeactivateUserUseCase,
) *UserController {
	return &UserController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deactivateUseCase: deactivateUseCase,
	}
}

// Create handles POST /users requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeUserNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), user.CreateUserInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		var userErr *domainerror.UserError
		if errors.As(err, &userErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: userErr.Message,
				Code:  string(userErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create user",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// List handles GET /users requests.
func (c *UserController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve users",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// Update handles PUT /users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), user.UpdateUserInput{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
		Active: req.Active,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update user",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Deactivate handles DELETE /users/:id requests. Unknown ids still return
// 204 so the operation stays idempotent.
func (c *UserController) Deactivate(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	if err := c.deactivateUseCase.Execute(ctx.Request.Context(), userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to deactivate user",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
