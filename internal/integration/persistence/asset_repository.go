// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
	"github.com/household-finance/backend/internal/integration/persistence/model"
)

// assetRepository implements the adapter.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository instance.
func NewAssetRepository(db *gorm.DB) adapter.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// FindAll retrieves every asset ordered by ticker.
func (r *assetRepository) FindAll(ctx context.Context) ([]*entity.Asset, error) {
	var assetModels []model.AssetModel
	result := r.db.WithContext(ctx).
		Order("ticker ASC").
		Find(&assetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	assets := make([]*entity.Asset, len(assetModels))
	for i, am := range assetModels {
		assets[i] = am.ToEntity()
	}
	return assets, nil
}
