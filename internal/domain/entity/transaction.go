// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction represents a single financial movement. A group of rows
// sharing a non-nil InstallmentGroupID is one logical purchase split across
// consecutive calendar months.
type Transaction struct {
	ID                 uuid.UUID
	Description        string
	Amount             decimal.Decimal
	Type               TransactionType
	Date               time.Time
	UserID             uuid.UUID
	CategoryID         uuid.UUID
	PaymentMethodID    uuid.UUID
	AssetID            *uuid.UUID
	Quantity           *decimal.Decimal
	InstallmentGroupID *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	date time.Time,
	userID, categoryID, paymentMethodID uuid.UUID,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:              uuid.New(),
		Description:     description,
		Amount:          amount,
		Type:            transactionType,
		Date:            date,
		UserID:          userID,
		CategoryID:      categoryID,
		PaymentMethodID: paymentMethodID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsValidTransactionType reports whether the given type is INCOME or EXPENSE.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// InactiveUserName is the display fallback for transactions whose user row
// cannot be resolved in joined reads.
const InactiveUserName = "Inativo"

// InactiveCategoryName is the display fallback for transactions whose
// category row cannot be resolved in joined reads.
const InactiveCategoryName = "Inativa"

// TransactionDetail is a transaction with its reference data denormalized,
// as returned by the joined listing.
type TransactionDetail struct {
	Transaction
	UserName          string
	UserColor         string
	CategoryName      string
	CategoryColor     string
	PaymentMethodName string
	AssetTicker       string
}

// TransactionTotals represents aggregated income/expense totals.
type TransactionTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Balance returns income minus expense.
func (t TransactionTotals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}
