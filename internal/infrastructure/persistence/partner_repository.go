package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByUserID finds a customer by linked user account
func (r *GormCustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).First(&customer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll finds all customers
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Customer], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&partner.Customer{})
	if filter.Search != "" {
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[partner.Customer]{}, err
	}

	var customers []partner.Customer
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&customers).Error; err != nil {
		return shared.Paginated[partner.Customer]{}, err
	}
	return shared.NewPaginated(customers, total, filter.Page, filter.PageSize), nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete removes a customer
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&partner.Customer{}, "id = ?", id).Error
}

// GormSellerRepository implements partner.SellerRepository using GORM
type GormSellerRepository struct {
	db *gorm.DB
}

// NewGormSellerRepository creates a new GormSellerRepository
func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// FindByID finds a seller by ID
func (r *GormSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Seller, error) {
	var seller partner.Seller
	if err := r.db.WithContext(ctx).First(&seller, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &seller, nil
}

// FindByUserID finds a seller by linked user account
func (r *GormSellerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Seller, error) {
	var seller partner.Seller
	if err := r.db.WithContext(ctx).First(&seller, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &seller, nil
}

// FindAll finds all sellers
func (r *GormSellerRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Seller], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	query := r.db.WithContext(ctx).Model(&partner.Seller{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[partner.Seller]{}, err
	}

	var sellers []partner.Seller
	if err := query.
		Order("store_name ASC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&sellers).Error; err != nil {
		return shared.Paginated[partner.Seller]{}, err
	}
	return shared.NewPaginated(sellers, total, filter.Page, filter.PageSize), nil
}

// Save creates or updates a seller
func (r *GormSellerRepository) Save(ctx context.Context, seller *partner.Seller) error {
	return r.db.WithContext(ctx).Save(seller).Error
}

// Delete removes a seller
func (r *GormSellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&partner.Seller{}, "id = ?", id).Error
}

// GormCreditCardRepository implements partner.CreditCardRepository using GORM
type GormCreditCardRepository struct {
	db *gorm.DB
}

// NewGormCreditCardRepository creates a new GormCreditCardRepository
func NewGormCreditCardRepository(db *gorm.DB) *GormCreditCardRepository {
	return &GormCreditCardRepository{db: db}
}

// FindByCustomer finds the customer's saved card
func (r *GormCreditCardRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*partner.CreditCard, error) {
	var card partner.CreditCard
	if err := r.db.WithContext(ctx).First(&card, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &card, nil
}

// Save creates or updates the saved card
func (r *GormCreditCardRepository) Save(ctx context.Context, card *partner.CreditCard) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// Delete removes the saved card
func (r *GormCreditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&partner.CreditCard{}, "id = ?", id).Error
}
