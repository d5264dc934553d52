package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// Product is a sellable catalog entry owned by one seller
type Product struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Stock       int             `gorm:"not null;default:0"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, price decimal.Decimal, stock int, sellerID, categoryID uuid.UUID) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product stock cannot be negative")
	}
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Seller ID is required")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category ID is required")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Price:             price,
		Stock:             stock,
		SellerID:          sellerID,
		CategoryID:        categoryID,
	}, nil
}

// UpdateDetails updates the mutable product fields
func (p *Product) UpdateDetails(name, description string, price decimal.Decimal, stock int, categoryID uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Product stock cannot be negative")
	}
	p.Name = name
	p.Description = description
	p.Price = price
	p.Stock = stock
	if categoryID != uuid.Nil {
		p.CategoryID = categoryID
	}
	return nil
}

// IsInStock reports whether any units remain
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// DecreaseStock removes sold units from stock
func (p *Product) DecreaseStock(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be at least 1")
	}
	if quantity > p.Stock {
		return shared.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

// IncreaseStock adds restocked units
func (p *Product) IncreaseStock(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be at least 1")
	}
	p.Stock += quantity
	return nil
}
