// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/domain/entity"
)

// AssetModel represents the assets table in the database. Tickers are
// stored normalized (trimmed, upper case) and unique.
type AssetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Ticker    string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts an AssetModel to a domain Asset entity.
func (m *AssetModel) ToEntity() *entity.Asset {
	return &entity.Asset{
		ID:        m.ID,
		Ticker:    m.Ticker,
		CreatedAt: m.CreatedAt,
	}
}

// AssetFromEntity creates an AssetModel from a domain Asset entity.
func AssetFromEntity(asset *entity.Asset) *AssetModel {
	return &AssetModel{
		ID:        asset.ID,
		Ticker:    asset.Ticker,
		CreatedAt: asset.CreatedAt,
	}
}
