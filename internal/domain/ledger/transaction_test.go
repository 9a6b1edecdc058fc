package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	date := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)

	tx, err := NewTransaction("Compra no iFood", decimal.NewFromFloat(-55.90), "iFood", date, "Alimentação")
	require.NoError(t, err)
	assert.NotEqual(t, tx.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.True(t, tx.IsExpense())
	assert.True(t, tx.Magnitude().Equal(decimal.NewFromFloat(55.90)))

	tx, err = NewTransaction("Pix recebido", decimal.NewFromInt(1200), "Empresa X", date, "")
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, tx.Category)
	assert.False(t, tx.IsExpense())

	_, err = NewTransaction("sem loja", decimal.NewFromInt(10), "", date, "Outros")
	assert.Error(t, err)

	_, err = NewTransaction("sem data", decimal.NewFromInt(10), "Loja", time.Time{}, "Outros")
	assert.Error(t, err)
}
