package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Arthur-Marques-IA/moneytora/internal/domain/shared"
)

// CategoryOther is assigned when no classification source can name a category.
const CategoryOther = "Outros"

// Transaction is a single financial movement. Amount is positive for
// income and negative for expenses.
type Transaction struct {
	shared.BaseEntity
	RawText  string
	Amount   decimal.Decimal
	Merchant string
	Date     time.Time
	Category string
}

// NewTransaction builds a transaction, defaulting the category when empty.
func NewTransaction(rawText string, amount decimal.Decimal, merchant string, date time.Time, category string) (*Transaction, error) {
	if merchant == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "merchant is required")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "date is required")
	}
	if category == "" {
		category = CategoryOther
	}
	return &Transaction{
		BaseEntity: shared.NewBaseEntity(),
		RawText:    rawText,
		Amount:     amount,
		Merchant:   merchant,
		Date:       date,
		Category:   category,
	}, nil
}

// IsExpense reports whether the transaction reduces the balance.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// Magnitude returns the absolute amount.
func (t *Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
