package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_DefaultCurrency(t *testing.T) {
	m := NewMoney(decimal.NewFromInt(10), "")
	assert.Equal(t, "USD", m.Currency)
}

func TestMoney_Add(t *testing.T) {
	a := NewMoneyFromFloat(10.50, "USD")
	b := NewMoneyFromFloat(4.25, "USD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.NewFromFloat(14.75)))
}

func TestMoney_Add_CurrencyMismatch(t *testing.T) {
	a := NewMoneyFromFloat(10, "USD")
	b := NewMoneyFromFloat(10, "EUR")

	_, err := a.Add(b)
	assert.Error(t, err)
}

func TestMoney_Mul(t *testing.T) {
	m := NewMoneyFromFloat(9.99, "USD").Mul(3)
	assert.True(t, m.Amount.Equal(decimal.NewFromFloat(29.97)))
}

func TestMoney_String(t *testing.T) {
	m := NewMoneyFromFloat(5, "USD")
	assert.Equal(t, "5.00 USD", m.String())
}
