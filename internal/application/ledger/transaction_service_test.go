package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
)

// MockTransactionRepository is a mock ledger.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter ledger.TransactionFilter) ([]ledger.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Count(ctx context.Context, filter ledger.TransactionFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *ledger.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) SumByCategory(ctx context.Context) ([]ledger.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.CategoryTotal), args.Error(1)
}

func (m *MockTransactionRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]ledger.Transaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func TestTransactionServiceCreate(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("stores transaction", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(tx *ledger.Transaction) bool {
			return tx.Merchant == "iFood" && tx.Category == "Alimentação"
		})).Return(nil)

		svc := NewTransactionService(repo, zap.NewNop())
		tx, err := svc.Create(ctx, CreateTransactionInput{
			Amount:   decimal.NewFromFloat(-55.90),
			Merchant: "iFood",
			Date:     date,
			Category: "Alimentação",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tx.ID)
		repo.AssertExpectations(t)
	})

	t.Run("defaults missing category", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		svc := NewTransactionService(repo, zap.NewNop())
		tx, err := svc.Create(ctx, CreateTransactionInput{
			Amount:   decimal.NewFromInt(-10),
			Merchant: "Padaria",
			Date:     date,
		})
		require.NoError(t, err)
		assert.Equal(t, ledger.CategoryOther, tx.Category)
	})

	t.Run("rejects missing merchant", func(t *testing.T) {
		svc := NewTransactionService(new(MockTransactionRepository), zap.NewNop())
		_, err := svc.Create(ctx, CreateTransactionInput{
			Amount: decimal.NewFromInt(-10),
			Date:   date,
		})
		assert.Error(t, err)
	})
}

func TestTransactionServiceUpdate(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)

	t.Run("applies partial changes", func(t *testing.T) {
		existing, err := ledger.NewTransaction("", decimal.NewFromInt(-10), "iFood", date, "Alimentação")
		require.NoError(t, err)

		repo := new(MockTransactionRepository)
		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(tx *ledger.Transaction) bool {
			return tx.Category == "Delivery" && tx.Merchant == "iFood"
		})).Return(nil)

		svc := NewTransactionService(repo, zap.NewNop())
		newCategory := "Delivery"
		updated, err := svc.Update(ctx, existing.ID, UpdateTransactionInput{Category: &newCategory})
		require.NoError(t, err)
		assert.Equal(t, "Delivery", updated.Category)
		repo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		svc := NewTransactionService(repo, zap.NewNop())
		_, err := svc.Update(ctx, id, UpdateTransactionInput{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestTransactionServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns page items with the filter-wide total", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		filter := ledger.TransactionFilter{Category: "Transporte", Limit: 2}
		page := []ledger.Transaction{{Merchant: "Uber"}, {Merchant: "99"}}
		repo.On("FindAll", ctx, filter).Return(page, nil)
		repo.On("Count", ctx, filter).Return(int64(5), nil)

		svc := NewTransactionService(repo, zap.NewNop())
		txs, total, err := svc.List(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, int64(5), total)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindAll", ctx, mock.Anything).Return(nil, assert.AnError)

		svc := NewTransactionService(repo, zap.NewNop())
		_, _, err := svc.List(ctx, ledger.TransactionFilter{})
		assert.Error(t, err)
	})
}

func TestTransactionServiceSpendingByCategory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	repo.On("SumByCategory", ctx).Return([]ledger.CategoryTotal{
		{Category: "Transporte", Total: decimal.NewFromInt(125)},
		{Category: "Lazer", Total: decimal.NewFromInt(50)},
	}, nil)

	svc := NewTransactionService(repo, zap.NewNop())
	totals, err := svc.SpendingByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "Transporte", totals[0].Category)
}
