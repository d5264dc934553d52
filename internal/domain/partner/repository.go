package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Customer], error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SellerRepository defines persistence operations for sellers
type SellerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Seller, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Seller, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Seller], error)
	Save(ctx context.Context, seller *Seller) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditCardRepository defines persistence operations for saved cards
type CreditCardRepository interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*CreditCard, error)
	Save(ctx context.Context, card *CreditCard) error
	Delete(ctx context.Context, id uuid.UUID) error
}
