// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/household-finance/backend/internal/application/adapter"
	"github.com/household-finance/backend/internal/domain/entity"
)

// ListTransactionsOutput represents the output of the joined listing.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionDetail
}

// ListTransactionsUseCase handles the denormalized transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute retrieves every transaction with reference names resolved,
// newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAllDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}
