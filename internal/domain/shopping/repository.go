package shopping

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for carts
type Repository interface {
	// FindByCustomer loads the customer's cart with items, or ErrNotFound
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*Cart, error)
	// Save persists the cart and its items
	Save(ctx context.Context, cart *Cart) error
	// Delete removes the cart and its items
	Delete(ctx context.Context, id uuid.UUID) error
}
