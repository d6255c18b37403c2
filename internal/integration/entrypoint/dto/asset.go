// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-finance/backend/internal/domain/entity"
)

// AssetResponse represents an asset in API responses.
type AssetResponse struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAssetListResponse converts a list of Asset entities to responses.
func ToAssetListResponse(assets []*entity.Asset) []AssetResponse {
	responses := make([]AssetResponse, len(assets))
	for i, asset := range assets {
		responses[i] = AssetResponse{
			ID:        asset.ID.String(),
			Ticker:    asset.Ticker,
			CreatedAt: asset.CreatedAt,
		}
	}
	return responses
}
