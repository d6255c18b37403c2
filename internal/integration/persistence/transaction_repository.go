// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
	"github.com/household-finance/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateBatch persists every row in one database transaction. A non-empty
// assetTicker is resolved to an asset id first, creating the asset when
// the ticker is unseen, and assigned to every row.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.Transaction, assetTicker string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assetID *uuid.UUID
		if assetTicker != "" {
			var assetModel model.AssetModel
			err := tx.Where("ticker = ?", assetTicker).First(&assetModel).Error
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				assetModel = *model.AssetFromEntity(entity.NewAsset(assetTicker))
				if err := tx.Create(&assetModel).Error; err != nil {
					return err
				}
			}
			assetID = &assetModel.ID
		}

		transactionModels := make([]*model.TransactionModel, len(transactions))
		for i, t := range transactions {
			t.AssetID = assetID
			transactionModels[i] = model.TransactionFromEntity(t)
		}
		return tx.Create(&transactionModels).Error
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// detailedRow receives one row of the joined listing.
type detailedRow struct {
	ID                 uuid.UUID        `gorm:"column:id"`
	Description        string           `gorm:"column:description"`
	Amount             decimal.Decimal  `gorm:"column:amount"`
	Type               string           `gorm:"column:type"`
	Date               time.Time        `gorm:"column:date"`
	UserID             uuid.UUID        `gorm:"column:user_id"`
	CategoryID         uuid.UUID        `gorm:"column:category_id"`
	PaymentMethodID    uuid.UUID        `gorm:"column:payment_method_id"`
	AssetID            *uuid.UUID       `gorm:"column:asset_id"`
	Quantity           *decimal.Decimal `gorm:"column:quantity"`
	InstallmentGroupID *uuid.UUID       `gorm:"column:installment_group_id"`
	CreatedAt          time.Time        `gorm:"column:created_at"`
	UpdatedAt          time.Time        `gorm:"column:updated_at"`
	UserName           string           `gorm:"column:user_name"`
	UserColor          string           `gorm:"column:user_color"`
	CategoryName       string           `gorm:"column:category_name"`
	CategoryColor      string           `gorm:"column:category_color"`
	PaymentMethodName  string           `gorm:"column:payment_method_name"`
	AssetTicker        string           `gorm:"column:asset_ticker"`
}

// FindAllDetailed retrieves the full listing with reference names joined
// in. Unresolvable references fall back to the inactive display names so
// rows never disappear from the listing.
func (r *transactionRepository) FindAllDetailed(ctx context.Context) ([]*entity.TransactionDetail, error) {
	query := `
		SELECT
			t.id, t.description, t.amount, t.type, t.date,
			t.user_id, t.category_id, t.payment_method_id, t.asset_id,
			t.quantity, t.installment_group_id, t.created_at, t.updated_at,
			COALESCE(u.name, ?) AS user_name,
			COALESCE(u.color, ?) AS user_color,
			COALESCE(c.name, ?) AS category_name,
			COALESCE(c.color, ?) AS category_color,
			COALESCE(p.name, '') AS payment_method_name,
			COALESCE(a.ticker, '') AS asset_ticker
		FROM transactions t
		LEFT JOIN users u ON u.id = t.user_id
		LEFT JOIN categories c ON c.id = t.category_id
		LEFT JOIN payment_methods p ON p.id = t.payment_method_id
		LEFT JOIN assets a ON a.id = t.asset_id
		ORDER BY t.date DESC, t.created_at DESC
	`

	var rows []detailedRow
	result := r.db.WithContext(ctx).Raw(query,
		entity.InactiveUserName,
		entity.DefaultCategoryColor,
		entity.InactiveCategoryName,
		entity.DefaultCategoryColor,
	).Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	details := make([]*entity.TransactionDetail, len(rows))
	for i, row := range rows {
		details[i] = &entity.TransactionDetail{
			Transaction: entity.Transaction{
				ID:                 row.ID,
				Description:        row.Description,
				Amount:             row.Amount,
				Type:               entity.TransactionType(row.Type),
				Date:               row.Date,
				UserID:             row.UserID,
				CategoryID:         row.CategoryID,
				PaymentMethodID:    row.PaymentMethodID,
				AssetID:            row.AssetID,
				Quantity:           row.Quantity,
				InstallmentGroupID: row.InstallmentGroupID,
				CreatedAt:          row.CreatedAt,
				UpdatedAt:          row.UpdatedAt,
			},
			UserName:          row.UserName,
			UserColor:         row.UserColor,
			CategoryName:      row.CategoryName,
			CategoryColor:     row.CategoryColor,
			PaymentMethodName: row.PaymentMethodName,
			AssetTicker:       row.AssetTicker,
		}
	}
	return details, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Save(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByID removes one transaction row, reporting whether it existed.
func (r *transactionRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteByGroup removes every row of an installment group.
func (r *transactionRepository) DeleteByGroup(ctx context.Context, groupID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "installment_group_id = ?", groupID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// totalsRow receives the income/expense aggregation.
type totalsRow struct {
	Income  decimal.Decimal `gorm:"column:income"`
	Expense decimal.Decimal `gorm:"column:expense"`
}

// SumByTypeInRange aggregates income and expense totals over [start, end).
func (r *transactionRepository) SumByTypeInRange(ctx context.Context, start, end *time.Time) (*entity.TransactionTotals, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(`
			COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0) AS expense
		`)
	if start != nil {
		query = query.Where("date >= ?", *start)
	}
	if end != nil {
		query = query.Where("date < ?", *end)
	}

	var row totalsRow
	if err := query.Scan(&row).Error; err != nil {
		return nil, err
	}

	return &entity.TransactionTotals{
		Income:  row.Income,
		Expense: row.Expense,
	}, nil
}
