// Package asset contains asset use cases.
package asset

import (
	"context"
	"fmt"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
)

// ListAssetsOutput represents the output of listing assets.
type ListAssetsOutput struct {
	Assets []*entity.Asset
}

// ListAssetsUseCase handles the read-only asset listing. Assets are only
// ever created as a side effect of transaction creation.
type ListAssetsUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewListAssetsUseCase creates a new ListAssetsUseCase instance.
func NewListAssetsUseCase(assetRepo adapter.AssetRepository) *ListAssetsUseCase {
	return &ListAssetsUseCase{assetRepo: assetRepo}
}

// Execute retrieves all assets ordered by ticker.
func (uc *ListAssetsUseCase) Execute(ctx context.Context) (*ListAssetsOutput, error) {
	assets, err := uc.assetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return &ListAssetsOutput{Assets: assets}, nil
}
