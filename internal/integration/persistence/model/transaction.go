// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Installments of one purchase share an InstallmentGroupID.
type TransactionModel struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Description        string           `gorm:"type:varchar(255);not null"`
	Amount             decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Type               string           `gorm:"type:varchar(10);not null;index"`
	Date               time.Time        `gorm:"type:date;not null;index"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;index"`
	CategoryID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	PaymentMethodID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	AssetID            *uuid.UUID       `gorm:"type:uuid;index"`
	Quantity           *decimal.Decimal `gorm:"type:decimal(15,6)"`
	InstallmentGroupID *uuid.UUID       `gorm:"type:uuid;index"`
	CreatedAt          time.Time        `gorm:"not null"`
	UpdatedAt          time.Time        `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                 m.ID,
		Description:        m.Description,
		Amount:             m.Amount,
		Type:               entity.TransactionType(m.Type),
		Date:               m.Date,
		UserID:             m.UserID,
		CategoryID:         m.CategoryID,
		PaymentMethodID:    m.PaymentMethodID,
		AssetID:            m.AssetID,
		Quantity:           m.Quantity,
		InstallmentGroupID: m.InstallmentGroupID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                 transaction.ID,
		Description:        transaction.Description,
		Amount:             transaction.Amount,
		Type:               string(transaction.Type),
		Date:               transaction.Date,
		UserID:             transaction.UserID,
		CategoryID:         transaction.CategoryID,
		PaymentMethodID:    transaction.PaymentMethodID,
		AssetID:            transaction.AssetID,
		Quantity:           transaction.Quantity,
		InstallmentGroupID: transaction.InstallmentGroupID,
		CreatedAt:          transaction.CreatedAt,
		UpdatedAt:          transaction.UpdatedAt,
	}
}
