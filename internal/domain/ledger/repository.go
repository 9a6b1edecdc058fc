package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows transaction queries.
type TransactionFilter struct {
	Category string
	Merchant string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// CategoryTotal is an aggregated spend per category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// TransactionRepository persists transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindAll(ctx context.Context, filter TransactionFilter) ([]Transaction, error)
	Count(ctx context.Context, filter TransactionFilter) (int64, error)
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	SumByCategory(ctx context.Context) ([]CategoryTotal, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]Transaction, error)
}

// ClassificationRepository persists merchant classifications.
type ClassificationRepository interface {
	FindByMerchant(ctx context.Context, merchant string) (*MerchantClassification, error)
	// SaveIfAbsent inserts the classification unless the merchant already
	// has one. It reports whether the row was written.
	SaveIfAbsent(ctx context.Context, c *MerchantClassification) (bool, error)
	Seed(ctx context.Context, entries []MerchantClassification) error
}
