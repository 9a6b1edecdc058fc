package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/ledger"
)

// TransactionService provides application-level transaction operations
type TransactionService struct {
	transactions ledger.TransactionRepository
	logger       *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactions ledger.TransactionRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		logger:       logger.Named("transactions"),
	}
}

// CreateTransactionInput carries the fields for a manual transaction
type CreateTransactionInput struct {
	RawText  string
	Amount   decimal.Decimal
	Merchant string
	Date     time.Time
	Category string
}

// Create stores a manually entered transaction
func (s *TransactionService) Create(ctx context.Context, input CreateTransactionInput) (*ledger.Transaction, error) {
	tx, err := ledger.NewTransaction(input.RawText, input.Amount, input.Merchant, input.Date, input.Category)
	if err != nil {
		return nil, err
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.logger.Info("transaction created",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("merchant", tx.Merchant),
	)
	return tx, nil
}

// Get returns a transaction by ID
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	return s.transactions.FindByID(ctx, id)
}

// List returns transactions matching the filter along with the total
// number of matches across all pages.
func (s *TransactionService) List(ctx context.Context, filter ledger.TransactionFilter) ([]ledger.Transaction, int64, error) {
	txs, err := s.transactions.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.transactions.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

// UpdateTransactionInput carries partial updates; nil fields keep their value
type UpdateTransactionInput struct {
	RawText  *string
	Amount   *decimal.Decimal
	Merchant *string
	Date     *time.Time
	Category *string
}

// Update applies the given changes to an existing transaction
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, input UpdateTransactionInput) (*ledger.Transaction, error) {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RawText != nil {
		tx.RawText = *input.RawText
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Merchant != nil {
		tx.Merchant = *input.Merchant
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}
	tx.Touch()

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Delete removes a transaction
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.transactions.Delete(ctx, id)
}

// SpendingByCategory aggregates transaction totals per category
func (s *TransactionService) SpendingByCategory(ctx context.Context) ([]ledger.CategoryTotal, error) {
	return s.transactions.SumByCategory(ctx)
}
