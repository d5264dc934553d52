package partner

import (
	"github.com/google/uuid"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// Customer is a buying party. The profile starts sparse at signup and
// must be completed before checkout.
type Customer struct {
	shared.BaseAggregateRoot
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FullName string
	Email    string `gorm:"index"`
	Phone    string
	Address  string
}

// TableName specifies the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a customer profile linked to a user account
func NewCustomer(userID uuid.UUID, email string) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Email:             email,
	}, nil
}

// UpdateProfile sets the customer's contact details
func (c *Customer) UpdateProfile(fullName, email, phone, address string) {
	c.FullName = fullName
	c.Email = email
	c.Phone = phone
	c.Address = address
}

// IsProfileComplete reports whether the fields required for checkout
// are present
func (c *Customer) IsProfileComplete() bool {
	return c.FullName != "" && c.Email != "" && c.Address != ""
}
