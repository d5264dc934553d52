package shopping

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shopping"
)

// CartService manages a customer's shopping cart
type CartService struct {
	cartRepo    shopping.Repository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(cartRepo shopping.Repository, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get returns the customer's cart, creating an empty one on first use
func (s *CartService) Get(ctx context.Context, customerID uuid.UUID) (*CartResponse, error) {
	cart, err := s.loadOrCreate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, cart)
}

// AddItem puts a product into the cart, merging with any existing line
// and clamping the quantity to stock
func (s *CartService) AddItem(ctx context.Context, customerID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadOrCreate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := cart.AddItem(product.ID, product.Price, req.Quantity, product.Stock); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Debug("cart item added",
		zap.String("customer_id", customerID.String()),
		zap.String("product_id", product.ID.String()))
	return s.toResponse(ctx, cart)
}

// UpdateItem changes the quantity of a cart line. Zero removes it.
func (s *CartService) UpdateItem(ctx context.Context, customerID, productID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	stock := 0
	if req.Quantity > 0 {
		product, err := s.productRepo.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		stock = product.Stock
	}
	if err := cart.UpdateQuantity(productID, req.Quantity, stock); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, cart)
}

// RemoveItem deletes a product line from the cart
func (s *CartService) RemoveItem(ctx context.Context, customerID, productID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := cart.RemoveItem(productID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, cart)
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil
		}
		return err
	}
	cart.Clear()
	return s.cartRepo.Save(ctx, cart)
}

func (s *CartService) loadOrCreate(ctx context.Context, customerID uuid.UUID) (*shopping.Cart, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if err != shared.ErrNotFound {
		return nil, err
	}
	cart, err = shopping.NewCart(customerID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// toResponse enriches cart lines with current catalog data
func (s *CartService) toResponse(ctx context.Context, cart *shopping.Cart) (*CartResponse, error) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}
	products := map[uuid.UUID]*catalog.Product{}
	if len(ids) > 0 {
		var err error
		products, err = s.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}
	response := ToCartResponse(cart, products)
	return &response, nil
}
