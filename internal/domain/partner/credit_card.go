package partner

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// Expiry year bounds accepted by the payment form
const (
	minExpiryYear = 2025
	maxExpiryYear = 2050
)

// CreditCard is a customer's saved payment card. Each customer keeps
// at most one card; saving again overwrites it in place.
type CreditCard struct {
	shared.BaseAggregateRoot
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CardNumber  string    `gorm:"not null"`
	HolderName  string    `gorm:"not null"`
	ExpiryMonth int       `gorm:"not null"`
	ExpiryYear  int       `gorm:"not null"`
	CVV         string    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CreditCard) TableName() string {
	return "credit_cards"
}

// NewCreditCard creates and validates a saved card
func NewCreditCard(customerID uuid.UUID, number, holder string, month, year int, cvv string) (*CreditCard, error) {
	card := &CreditCard{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		CardNumber:        number,
		HolderName:        holder,
		ExpiryMonth:       month,
		ExpiryYear:        year,
		CVV:               cvv,
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID is required")
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

// Validate checks the card fields against the payment form rules
func (c *CreditCard) Validate() error {
	if !cardNumberPattern.MatchString(c.CardNumber) {
		return shared.NewDomainError("INVALID_CARD", "Card number must be 13 to 19 digits")
	}
	if len(c.HolderName) < 2 || len(c.HolderName) > 50 {
		return shared.NewDomainError("INVALID_CARD", "Card holder name must be 2 to 50 characters")
	}
	if c.ExpiryMonth < 1 || c.ExpiryMonth > 12 {
		return shared.NewDomainError("INVALID_CARD", "Expiry month must be between 1 and 12")
	}
	if c.ExpiryYear < minExpiryYear || c.ExpiryYear > maxExpiryYear {
		return shared.NewDomainError("INVALID_CARD", "Expiry year is out of range")
	}
	if !cvvPattern.MatchString(c.CVV) {
		return shared.NewDomainError("INVALID_CARD", "CVV must be 3 or 4 digits")
	}
	return nil
}

// Update overwrites the stored card details after validating them
func (c *CreditCard) Update(number, holder string, month, year int, cvv string) error {
	next := *c
	next.CardNumber = number
	next.HolderName = holder
	next.ExpiryMonth = month
	next.ExpiryYear = year
	next.CVV = cvv
	if err := next.Validate(); err != nil {
		return err
	}
	c.CardNumber = number
	c.HolderName = holder
	c.ExpiryMonth = month
	c.ExpiryYear = year
	c.CVV = cvv
	return nil
}

// MaskedNumber returns the card number with all but the last four
// digits hidden
func (c *CreditCard) MaskedNumber() string {
	if len(c.CardNumber) < 4 {
		return c.CardNumber
	}
	masked := make([]byte, len(c.CardNumber))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[len(masked)-4:], c.CardNumber[len(c.CardNumber)-4:])
	return string(masked)
}
