// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-finance/backend/internal/application/usecase/asset"
	"github.com/household-finance/backend/internal/integration/entrypoint/dto"
)

// AssetController handles asset endpoints.
type AssetController struct {
	listUseCase *asset.ListAssetsUseCase
}

// NewAssetController creates a new asset controller instance.
func NewAssetController(listUseCase *asset.ListAssetsUseCase) *AssetController {
	return &AssetController{listUseCase: listUseCase}
}

// List handles GET /assets requests.
func (c *AssetController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve assets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetListResponse(output.Assets))
}
