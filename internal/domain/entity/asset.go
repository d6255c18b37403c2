// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Asset is an investment instrument identified by its ticker. Assets are
// created lazily whenever a transaction references an unseen ticker.
type Asset struct {
	ID        uuid.UUID
	Ticker    string
	CreatedAt time.Time
}

// NewAsset creates a new Asset entity with a normalized ticker.
func NewAsset(ticker string) *Asset {
	return &Asset{
		ID:        uuid.New(),
		Ticker:    NormalizeTicker(ticker),
		CreatedAt: time.Now().UTC(),
	}
}

// NormalizeTicker trims and upper-cases a ticker for unique storage.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
