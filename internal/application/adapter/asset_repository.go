// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"

	"github.com/household-finance/backend/internal/domain/entity"
)

// AssetRepository defines the interface for asset data access.
type AssetRepository interface {
	// FindAll retrieves every asset ordered by ticker ASC.
	FindAll(ctx context.Context) ([]*entity.Asset, error)
}
