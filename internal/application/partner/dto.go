package partner

import (
	"github.com/google/uuid"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
)

// UpdateProfileRequest represents a customer profile update
type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"max=30"`
	Address  string `json:"address" binding:"required,min=5,max=500"`
}

// CustomerResponse represents a customer profile in API responses
type CustomerResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	ProfileComplete bool      `json:"profile_complete"`
}

// ToCustomerResponse maps a customer to its API representation
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		FullName:        c.FullName,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		ProfileComplete: c.IsProfileComplete(),
	}
}

// SaveCardRequest represents a request to save or replace the payment card
type SaveCardRequest struct {
	CardNumber  string `json:"card_number" binding:"required"`
	HolderName  string `json:"holder_name" binding:"required"`
	ExpiryMonth int    `json:"expiry_month" binding:"required"`
	ExpiryYear  int    `json:"expiry_year" binding:"required"`
	CVV         string `json:"cvv" binding:"required"`
}

// CardResponse represents the saved card with the number masked
type CardResponse struct {
	MaskedNumber string `json:"masked_number"`
	HolderName   string `json:"holder_name"`
	ExpiryMonth  int    `json:"expiry_month"`
	ExpiryYear   int    `json:"expiry_year"`
}

// ToCardResponse maps a saved card to its API representation
func ToCardResponse(c *partner.CreditCard) CardResponse {
	return CardResponse{
		MaskedNumber: c.MaskedNumber(),
		HolderName:   c.HolderName,
		ExpiryMonth:  c.ExpiryMonth,
		ExpiryYear:   c.ExpiryYear,
	}
}

// SellerResponse represents a seller profile in API responses
type SellerResponse struct {
	ID        uuid.UUID `json:"id"`
	StoreName string    `json:"store_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

// UpdateSellerRequest represents a seller profile update
type UpdateSellerRequest struct {
	StoreName string `json:"store_name" binding:"required,min=1,max=200"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"max=30"`
}

// ToSellerResponse maps a seller to its API representation
func ToSellerResponse(s *partner.Seller) SellerResponse {
	return SellerResponse{
		ID:        s.ID,
		StoreName: s.StoreName,
		Email:     s.Email,
		Phone:     s.Phone,
	}
}
