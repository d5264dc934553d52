package partner

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

func validCard(t *testing.T) *CreditCard {
	t.Helper()
	card, err := NewCreditCard(uuid.New(), "4111111111111111", "Jane Doe", 6, 2030, "123")
	require.NoError(t, err)
	return card
}

func TestCreditCard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		holder  string
		month   int
		year    int
		cvv     string
		wantErr bool
	}{
		{"valid visa", "4111111111111111", "Jane Doe", 6, 2030, "123", false},
		{"valid four digit cvv", "371449635398431", "Jane Doe", 12, 2025, "1234", false},
		{"thirteen digit number", "4111111111111", "Jane Doe", 1, 2050, "123", false},
		{"number too short", "411111111111", "Jane Doe", 6, 2030, "123", true},
		{"number too long", "41111111111111111111", "Jane Doe", 6, 2030, "123", true},
		{"number with letters", "4111-1111-1111", "Jane Doe", 6, 2030, "123", true},
		{"holder too short", "4111111111111111", "J", 6, 2030, "123", true},
		{"holder too long", "4111111111111111", strings.Repeat("a", 51), 6, 2030, "123", true},
		{"month zero", "4111111111111111", "Jane Doe", 0, 2030, "123", true},
		{"month thirteen", "4111111111111111", "Jane Doe", 13, 2030, "123", true},
		{"year too early", "4111111111111111", "Jane Doe", 6, 2024, "123", true},
		{"year too late", "4111111111111111", "Jane Doe", 6, 2051, "123", true},
		{"cvv too short", "4111111111111111", "Jane Doe", 6, 2030, "12", true},
		{"cvv too long", "4111111111111111", "Jane Doe", 6, 2030, "12345", true},
		{"cvv with letters", "4111111111111111", "Jane Doe", 6, 2030, "12a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreditCard(uuid.New(), tt.number, tt.holder, tt.month, tt.year, tt.cvv)
			if tt.wantErr {
				require.Error(t, err)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "INVALID_CARD", domainErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreditCard_Update(t *testing.T) {
	card := validCard(t)

	t.Run("overwrites in place", func(t *testing.T) {
		require.NoError(t, card.Update("5500005555555559", "John Roe", 1, 2028, "456"))
		assert.Equal(t, "5500005555555559", card.CardNumber)
		assert.Equal(t, "John Roe", card.HolderName)
	})

	t.Run("invalid update leaves card untouched", func(t *testing.T) {
		before := *card
		require.Error(t, card.Update("bad", "John Roe", 1, 2028, "456"))
		assert.Equal(t, before.CardNumber, card.CardNumber)
	})
}

func TestCreditCard_MaskedNumber(t *testing.T) {
	card := validCard(t)
	assert.Equal(t, "************1111", card.MaskedNumber())
}

func TestCustomer_IsProfileComplete(t *testing.T) {
	customer, err := NewCustomer(uuid.New(), "jane@example.com")
	require.NoError(t, err)
	assert.False(t, customer.IsProfileComplete())

	customer.UpdateProfile("Jane Doe", "jane@example.com", "", "1 Main St")
	assert.True(t, customer.IsProfileComplete())

	customer.UpdateProfile("Jane Doe", "jane@example.com", "", "")
	assert.False(t, customer.IsProfileComplete())
}

func TestNewSeller(t *testing.T) {
	_, err := NewSeller(uuid.New(), "", "shop@example.com")
	assert.Error(t, err)

	seller, err := NewSeller(uuid.New(), "Acme", "shop@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Acme", seller.StoreName)
}
