// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-finance/backend/internal/application/adapter"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

// DeleteTransactionUseCase handles the hard delete of a single transaction
// row. Deleting one installment never touches its siblings.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute removes the transaction. An unknown id is a not-found error.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, transactionID uuid.UUID) error {
	deleted, err := uc.transactionRepo.DeleteByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if !deleted {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return nil
}
