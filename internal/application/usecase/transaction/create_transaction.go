// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Description     string
	Amount          decimal.Decimal
	Type            entity.TransactionType
	Date            time.Time
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	PaymentMethodID uuid.UUID
	Installments    int
	AssetTicker     string
	Quantity        *decimal.Decimal
}

// CreateTransactionOutput represents the output of transaction creation.
// Transaction is the first installment of the generated schedule.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation, including the
// installment split. A request for N installments produces N rows, each
// carrying Amount/N, dated one calendar month apart and linked by a shared
// group id. The whole batch is persisted atomically.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute validates the input, expands the installment schedule and
// persists every row in one database transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" || input.UserID == uuid.Nil || input.CategoryID == uuid.Nil ||
		input.PaymentMethodID == uuid.Nil || input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description, amount, type, date, user_id, category_id and payment_method_id are required",
			domainerror.ErrMissingTransactionFields,
		)
	}

	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'INCOME' or 'EXPENSE'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	installments := input.Installments
	if installments == 0 {
		installments = 1
	}
	if installments < 1 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installments must be at least 1",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	perInstallment := input.Amount.Div(decimal.NewFromInt(int64(installments)))

	var groupID *uuid.UUID
	if installments > 1 {
		id := uuid.New()
		groupID = &id
	}

	transactions := make([]*entity.Transaction, 0, installments)
	for i := 0; i < installments; i++ {
		rowDescription := description
		if installments > 1 {
			rowDescription = fmt.Sprintf("%s (%d/%d)", description, i+1, installments)
		}

		t := entity.NewTransaction(
			rowDescription,
			perInstallment,
			input.Type,
			installmentDate(input.Date, i),
			input.UserID,
			input.CategoryID,
			input.PaymentMethodID,
		)
		t.InstallmentGroupID = groupID
		t.Quantity = input.Quantity
		transactions = append(transactions, t)
	}

	ticker := entity.NormalizeTicker(input.AssetTicker)
	if err := uc.transactionRepo.CreateBatch(ctx, transactions, ticker); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transactions[0]}, nil
}
