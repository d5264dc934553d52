package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/ordering"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shopping"
)

// GormOrderRepository implements ordering.Repository and
// ordering.CheckoutRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID with items and fulfillments
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Fulfillments").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByCustomer finds orders placed by a customer
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	query := r.db.WithContext(ctx).Model(&ordering.Order{}).
		Where("customer_id = ?", customerID)
	return r.paginate(query, filter)
}

// FindBySeller finds orders that carry a fulfillment slot for the seller
func (r *GormOrderRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	query := r.db.WithContext(ctx).Model(&ordering.Order{}).
		Joins("JOIN fulfillments ON fulfillments.order_id = orders.id").
		Where("fulfillments.seller_id = ?", sellerID)
	return r.paginate(query, filter)
}

// FindAll finds all orders
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	query := r.db.WithContext(ctx).Model(&ordering.Order{})
	return r.paginate(query, filter)
}

func (r *GormOrderRepository) paginate(query *gorm.DB, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	var total int64
	if err := query.Distinct("orders.id").Count(&total).Error; err != nil {
		return shared.Paginated[ordering.Order]{}, err
	}

	orderBy := "orders.created_at DESC"
	if filter.OrderBy != "" {
		dir := "DESC"
		if filter.OrderDir == "asc" {
			dir = "ASC"
		}
		orderBy = "orders." + filter.OrderBy + " " + dir
	}

	var orders []ordering.Order
	if err := query.
		Distinct("orders.*").
		Preload("Items").
		Preload("Fulfillments").
		Order(orderBy).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&orders).Error; err != nil {
		return shared.Paginated[ordering.Order]{}, err
	}
	return shared.NewPaginated(orders, total, filter.Page, filter.PageSize), nil
}

// Save creates a new order with its items and fulfillments
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveOrderGraph(tx, order)
	})
}

// SaveWithLock updates an order with optimistic locking on the version
// column. The expected version is the value loaded before mutation.
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, order *ordering.Order, expectedVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order.Version = expectedVersion + 1
		order.UpdatedAt = time.Now()

		result := tx.Model(&ordering.Order{}).
			Where("id = ? AND version = ?", order.ID, expectedVersion).
			Updates(map[string]interface{}{
				"status":     order.Status,
				"version":    order.Version,
				"updated_at": order.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			order.Version = expectedVersion
			return shared.ErrConcurrencyConflict
		}

		for i := range order.Fulfillments {
			order.Fulfillments[i].OrderID = order.ID
			if err := tx.Save(&order.Fulfillments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an order with its items and fulfillments
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ordering.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&ordering.Fulfillment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ordering.Order{}, "id = ?", id).Error
	})
}

// Create persists an order that did not originate from a cart
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	return r.Save(ctx, order)
}

// CreateFromCart persists the order and empties the cart in a single
// transaction. Either both happen or neither does.
func (r *GormOrderRepository) CreateFromCart(ctx context.Context, order *ordering.Order, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveOrderGraph(tx, order); err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cartID).Delete(&shopping.CartItem{}).Error
	})
}

func saveOrderGraph(tx *gorm.DB, order *ordering.Order) error {
	if err := tx.Omit("Items", "Fulfillments").Create(order).Error; err != nil {
		return err
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		if err := tx.Create(&order.Items[i]).Error; err != nil {
			return err
		}
	}
	for i := range order.Fulfillments {
		order.Fulfillments[i].OrderID = order.ID
		if err := tx.Create(&order.Fulfillments[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
