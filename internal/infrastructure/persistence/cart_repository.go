package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shopping"
)

// GormCartRepository implements shopping.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByCustomer finds the customer's cart with items
func (r *GormCartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*shopping.Cart, error) {
	var cart shopping.Cart
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&cart, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// Save persists the cart, replacing removed items
func (r *GormCartRepository) Save(ctx context.Context, cart *shopping.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(cart).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uuid.UUID, len(cart.Items))
		for i, item := range cart.Items {
			currentItemIDs[i] = item.ID
		}
		if len(currentItemIDs) > 0 {
			if err := tx.Where("cart_id = ? AND id NOT IN ?", cart.ID, currentItemIDs).
				Delete(&shopping.CartItem{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("cart_id = ?", cart.ID).
				Delete(&shopping.CartItem{}).Error; err != nil {
				return err
			}
		}

		for i := range cart.Items {
			cart.Items[i].CartID = cart.ID
			if err := tx.Save(&cart.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the cart and its items
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", id).Delete(&shopping.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&shopping.Cart{}, "id = ?", id).Error
	})
}
