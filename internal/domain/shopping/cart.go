package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// CartItem is a product line in a customer's cart. UnitPrice is the
// catalog price captured when the line was added; checkout snapshots
// this value, not the live price.
type CartItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_cart_product,unique"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index:idx_cart_product,unique"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	AddedAt   time.Time
}

// Cart is the shopping cart aggregate, one per customer
type Cart struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Items      []CartItem `gorm:"foreignKey:CartID"`
}

// TableName specifies the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates an empty cart for a customer
func NewCart(customerID uuid.UUID) (*Cart, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID is required")
	}
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
	}, nil
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemFor returns the cart line for a product, if present
func (c *Cart) ItemFor(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem adds a product to the cart, merging with an existing line
// for the same product. The resulting quantity is silently clamped to
// the available stock. A merged line keeps the price it was added at.
func (c *Cart) AddItem(productID uuid.UUID, unitPrice decimal.Decimal, quantity, stock int) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Product ID is required")
	}
	if quantity < 1 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be at least 1")
	}
	if stock < 1 {
		return shared.ErrInsufficientStock
	}

	if existing := c.ItemFor(productID); existing != nil {
		existing.Quantity = clamp(existing.Quantity+quantity, stock)
		return nil
	}
	c.Items = append(c.Items, CartItem{
		ID:        uuid.New(),
		CartID:    c.ID,
		ProductID: productID,
		Quantity:  clamp(quantity, stock),
		UnitPrice: unitPrice,
		AddedAt:   time.Now(),
	})
	return nil
}

// UpdateQuantity sets the quantity of an existing line, clamped to stock.
// A quantity of zero removes the line.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity, stock int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity cannot be negative")
	}
	item := c.ItemFor(productID)
	if item == nil {
		return shared.ErrNotFound
	}
	if quantity == 0 {
		return c.RemoveItem(productID)
	}
	if stock < 1 {
		return shared.ErrInsufficientStock
	}
	item.Quantity = clamp(quantity, stock)
	return nil
}

// RemoveItem deletes a product line from the cart
func (c *Cart) RemoveItem(productID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear removes all items from the cart
func (c *Cart) Clear() {
	c.Items = nil
}

func clamp(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}
