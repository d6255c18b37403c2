package summary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

type stubTransactionRepo struct {
	totals *entity.TransactionTotals
	start  *time.Time
	end    *time.Time
}

func (s *stubTransactionRepo) CreateBatch(context.Context, []*entity.Transaction, string) error {
	return nil
}

func (s *stubTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (s *stubTransactionRepo) FindAllDetailed(context.Context) ([]*entity.TransactionDetail, error) {
	return nil, nil
}

func (s *stubTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }

func (s *stubTransactionRepo) DeleteByID(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubTransactionRepo) DeleteByGroup(context.Context, uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubTransactionRepo) SumByTypeInRange(_ context.Context, start, end *time.Time) (*entity.TransactionTotals, error) {
	s.start = start
	s.end = end
	return s.totals, nil
}

func intPtr(v int) *int { return &v }

func TestGetSummaryUseCase_Execute(t *testing.T) {
	totals := &entity.TransactionTotals{
		Income:  decimal.NewFromInt(5000),
		Expense: decimal.NewFromInt(3200),
	}

	t.Run("aggregates all time when no filter is given", func(t *testing.T) {
		repo := &stubTransactionRepo{totals: totals}
		uc := NewGetSummaryUseCase(repo)

		output, err := uc.Execute(context.Background(), GetSummaryInput{})

		require.NoError(t, err)
		assert.Nil(t, repo.start)
		assert.Nil(t, repo.end)
		assert.True(t, output.TotalIncome.Equal(decimal.NewFromInt(5000)))
		assert.True(t, output.TotalExpense.Equal(decimal.NewFromInt(3200)))
		assert.True(t, output.Balance.Equal(decimal.NewFromInt(1800)))
	})

	t.Run("translates month and year into a month range", func(t *testing.T) {
		repo := &stubTransactionRepo{totals: totals}
		uc := NewGetSummaryUseCase(repo)

		_, err := uc.Execute(context.Background(), GetSummaryInput{Month: intPtr(2), Year: intPtr(2025)})

		require.NoError(t, err)
		require.NotNil(t, repo.start)
		require.NotNil(t, repo.end)
		assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), *repo.start)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), *repo.end)
	})

	t.Run("translates a bare year into a year range", func(t *testing.T) {
		repo := &stubTransactionRepo{totals: totals}
		uc := NewGetSummaryUseCase(repo)

		_, err := uc.Execute(context.Background(), GetSummaryInput{Year: intPtr(2024)})

		require.NoError(t, err)
		require.NotNil(t, repo.start)
		require.NotNil(t, repo.end)
		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *repo.start)
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *repo.end)
	})

	t.Run("rejects month without year", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&stubTransactionRepo{totals: totals})

		_, err := uc.Execute(context.Background(), GetSummaryInput{Month: intPtr(5)})

		assert.ErrorIs(t, err, domainerror.ErrMonthWithoutYear)
	})

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&stubTransactionRepo{totals: totals})

		_, err := uc.Execute(context.Background(), GetSummaryInput{Month: intPtr(13), Year: intPtr(2025)})

		assert.ErrorIs(t, err, domainerror.ErrInvalidMonth)
	})
}
