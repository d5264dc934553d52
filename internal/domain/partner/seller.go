package partner

import (
	"github.com/google/uuid"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// Seller is a merchant that lists products and fulfills its slice of
// each order
type Seller struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	StoreName string    `gorm:"not null"`
	Email     string    `gorm:"index"`
	Phone     string
}

// TableName specifies the table name for GORM
func (Seller) TableName() string {
	return "sellers"
}

// NewSeller creates a seller profile linked to a user account
func NewSeller(userID uuid.UUID, storeName, email string) (*Seller, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	if storeName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Store name is required")
	}
	return &Seller{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		StoreName:         storeName,
		Email:             email,
	}, nil
}

// UpdateProfile sets the seller's store details
func (s *Seller) UpdateProfile(storeName, email, phone string) error {
	if storeName == "" {
		return shared.NewDomainError("INVALID_INPUT", "Store name is required")
	}
	s.StoreName = storeName
	s.Email = email
	s.Phone = phone
	return nil
}
