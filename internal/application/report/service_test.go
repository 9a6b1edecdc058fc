package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
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

// MockRenderer is a mock Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderReport(ctx context.Context, summary *Summary) ([]byte, error) {
	args := m.Called(ctx, summary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestServiceSummarize(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates period", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByDateRange", ctx, from, to).Return([]ledger.Transaction{
			tx(t, 1200, "Salário", "Renda", 1),
			tx(t, -300, "Aluguel", "Moradia", 5),
			tx(t, -100, "Uber", "Transporte", 10),
		}, nil)

		svc := NewService(repo, new(MockRenderer), t.TempDir(), 5, zap.NewNop())
		summary, err := svc.Summarize(ctx, from, to)
		require.NoError(t, err)

		assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(1200)))
		assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(400)))
		assert.True(t, summary.Balance.Equal(decimal.NewFromInt(800)))
		assert.Len(t, summary.ByCategory, 2)
		assert.Len(t, summary.TopExpenses, 2)
		assert.Len(t, summary.TopIncomes, 1)
	})

	t.Run("empty period returns ErrNoTransactions", func(t *testing.T) {
		repo := new(MockTransactionRepository)
		repo.On("FindByDateRange", ctx, from, to).Return([]ledger.Transaction{}, nil)

		svc := NewService(repo, new(MockRenderer), t.TempDir(), 5, zap.NewNop())
		_, err := svc.Summarize(ctx, from, to)
		assert.ErrorIs(t, err, ErrNoTransactions)
	})
}

func TestServiceGenerate(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)

	repo := new(MockTransactionRepository)
	repo.On("FindByDateRange", ctx, from, to).Return([]ledger.Transaction{
		tx(t, -55.90, "iFood", "Alimentação", 15),
		tx(t, -30, "Uber", "Transporte", 16),
	}, nil)

	renderer := new(MockRenderer)
	renderer.On("RenderReport", ctx, mock.Anything).Return([]byte("%PDF-1.4 fake"), nil)

	dir := t.TempDir()
	svc := NewService(repo, renderer, dir, 5, zap.NewNop())

	path, summary, err := svc.Generate(ctx, from, to)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, filepath.Join(dir, "report_2024-08-01_2024-08-31.pdf"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), content)
}
