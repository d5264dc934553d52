package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// Repository defines persistence operations for orders
type Repository interface {
	// FindByID loads an order with its items and fulfillments
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByCustomer lists orders placed by a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[Order], error)
	// FindBySeller lists orders that contain a fulfillment slot for the seller
	FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (shared.Paginated[Order], error)
	// FindAll lists all orders
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Order], error)
	// Save persists a new order
	Save(ctx context.Context, order *Order) error
	// SaveWithLock persists order changes using optimistic locking on the version column
	SaveWithLock(ctx context.Context, order *Order, expectedVersion int) error
	// Delete removes the order with its items and fulfillments
	Delete(ctx context.Context, id uuid.UUID) error
}

// CheckoutRepository persists orders produced by checkout flows
type CheckoutRepository interface {
	// CreateFromCart persists the order and empties the cart in one transaction.
	// Either both succeed or neither does.
	CreateFromCart(ctx context.Context, order *Order, cartID uuid.UUID) error
	// Create persists an order that did not originate from a cart
	Create(ctx context.Context, order *Order) error
}
