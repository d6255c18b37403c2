// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged; the update applies to one row only, never to
// the rest of its installment group.
type UpdateTransactionInput struct {
	TransactionID   uuid.UUID
	Description     *string
	Amount          *decimal.Decimal
	Type            *entity.TransactionType
	Date            *time.Time
	UserID          *uuid.UUID
	CategoryID      *uuid.UUID
	PaymentMethodID *uuid.UUID
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles single-row transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute performs the transaction update. An unknown id is a not-found
// error.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'INCOME' or 'EXPENSE'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must be a positive number",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}
	if input.Description != nil && *input.Description != "" {
		transaction.Description = *input.Description
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.UserID != nil {
		transaction.UserID = *input.UserID
	}
	if input.CategoryID != nil {
		transaction.CategoryID = *input.CategoryID
	}
	if input.PaymentMethodID != nil {
		transaction.PaymentMethodID = *input.PaymentMethodID
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
