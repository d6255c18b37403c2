// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction data access.
type TransactionRepository interface {
	// CreateBatch persists every transaction atomically. When assetTicker is
	// non-empty the asset is upserted by its normalized ticker inside the
	// same database transaction and its id is assigned to every row before
	// insertion. Any failure rolls the whole batch back.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction, assetTicker string) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAllDetailed retrieves the full joined listing ordered by
	// date DESC, created_at DESC, with user/category/payment-method names
	// and colors denormalized. Reference rows missing from the join resolve
	// to the inactive display fallbacks.
	FindAllDetailed(ctx context.Context) ([]*entity.TransactionDetail, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteByID removes one transaction row, reporting whether it existed.
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteByGroup removes every transaction sharing the installment group,
	// returning the number of rows removed.
	DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int64, error)

	// SumByTypeInRange aggregates income and expense totals over rows whose
	// date falls in [start, end). Nil bounds leave the corresponding side
	// open; missing sums coerce to zero.
	SumByTypeInRange(ctx context.Context, start, end *time.Time) (*entity.TransactionTotals, error)
}
