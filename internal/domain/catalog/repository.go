package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindByIDs loads several products at once, keyed by ID
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Product], error)
	FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (shared.Paginated[Product], error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) (shared.Paginated[Product], error)
	Save(ctx context.Context, product *Product) error
	SaveWithLock(ctx context.Context, product *Product, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Category], error)
	// CountProducts returns how many products reference the category
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
