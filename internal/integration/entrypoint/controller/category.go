// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/application/usecase/category"
	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
	"github.com/household-finance/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	createUseCase     *category.CreateCategoryUseCase
	listUseCase       *category.ListCategoriesUseCase
	updateUseCase     *category.UpdateCategoryUseCase
	deactivateUseCase *category.DeactivateCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deactivateUseCase *category.DeactivateCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deactivateUseCase: deactivateUseCase,
	}
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name:  req.Name,
		Type:  entity.CategoryType(req.Type),
		Color: req.Color,
	})
	if err != nil {
		var categoryErr *domainerror.CategoryError
		if errors.As(err, &categoryErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: categoryErr.Message,
				Code:  string(categoryErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create category",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Update handles PUT /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateCategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
		Color:      req.Color,
		Active:     req.Active,
	}
	if req.Type != nil {
		categoryType := entity.CategoryType(*req.Type)
		input.Type = &categoryType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Category not found",
				Code:  string(domainerror.ErrCodeCategoryNotFound),
			})
			return
		}
		var categoryErr *domainerror.CategoryError
		if errors.As(err, &categoryErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: categoryErr.Message,
				Code:  string(categoryErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update category",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Deactivate handles DELETE /categories/:id requests. Unknown ids still
// return 204 so the operation stays idempotent.
func (c *CategoryController) Deactivate(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	if err := c.deactivateUseCase.Execute(ctx.Request.Context(), categoryID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to deactivate category",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
