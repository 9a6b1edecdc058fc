package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMerchant(t *testing.T) {
	assert.Equal(t, "ifood", NormalizeMerchant("  iFood "))
	assert.Equal(t, "uber trip", NormalizeMerchant("Uber Trip"))
	assert.Equal(t, "", NormalizeMerchant("   "))
}

func TestFallbackCategory(t *testing.T) {
	tests := []struct {
		merchant string
		want     string
		found    bool
	}{
		{"iFood", "Alimentação", true},
		{"Uber Trip SP", "Transporte", true},
		{"NETFLIX.COM", "Lazer", true},
		{"Amazon Marketplace", "Compras", true},
		{"McDonald's Paulista", "Alimentação", true},
		{"Padaria do Zé", "", false},
	}
	for _, tt := range tests {
		got, ok := FallbackCategory(tt.merchant)
		assert.Equal(t, tt.found, ok, tt.merchant)
		assert.Equal(t, tt.want, got, tt.merchant)
	}
}

func TestNewMerchantClassification(t *testing.T) {
	c, err := NewMerchantClassification("  Uber ", "Transporte")
	assert.NoError(t, err)
	assert.Equal(t, "uber", c.Merchant)
	assert.Equal(t, "Transporte", c.Category)

	c, err = NewMerchantClassification("padaria", "")
	assert.NoError(t, err)
	assert.Equal(t, CategoryOther, c.Category)

	_, err = NewMerchantClassification("  ", "Lazer")
	assert.Error(t, err)
}
