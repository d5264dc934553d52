package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with currency
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney creates a new Money value object
func NewMoney(amount decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = "USD"
	}
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// NewMoneyFromFloat creates Money from a float64 amount
func NewMoneyFromFloat(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Zero returns a zero money value in the given currency
func Zero(currency string) Money {
	return NewMoney(decimal.Zero, currency)
}

// Add adds two money values of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot add %s to %s", other.Currency, m.Currency)
	}
	return NewMoney(m.Amount.Add(other.Amount), m.Currency), nil
}

// Sub subtracts another money value of the same currency
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot subtract %s from %s", other.Currency, m.Currency)
	}
	return NewMoney(m.Amount.Sub(other.Amount), m.Currency), nil
}

// Mul multiplies the amount by a quantity
func (m Money) Mul(qty int64) Money {
	return NewMoney(m.Amount.Mul(decimal.NewFromInt(qty)), m.Currency)
}

// IsNegative reports whether the amount is negative
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Equals compares two money values
func (m Money) Equals(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// String returns a human readable representation
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}
