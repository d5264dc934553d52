package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shopping"
)

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*shopping.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.Cart), args.Error(1)
}

func (m *mockCartRepo) Save(ctx context.Context, cart *shopping.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[uuid.UUID]*catalog.Product), args.Error(1)
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *mockProductRepo) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, sellerID, filter)
	return args.Get(0).(shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *mockProductRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, categoryID, filter)
	return args.Get(0).(shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *mockProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) SaveWithLock(ctx context.Context, product *catalog.Product, expectedVersion int) error {
	args := m.Called(ctx, product, expectedVersion)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testProduct(t *testing.T, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("Widget", "", decimal.NewFromInt(10), stock, uuid.New(), uuid.New())
	require.NoError(t, err)
	return p
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("creates cart on first add", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		productRepo := new(mockProductRepo)
		service := NewCartService(cartRepo, productRepo, zap.NewNop())
		product := testProduct(t, 10)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		cartRepo.On("FindByCustomer", ctx, customerID).Return(nil, shared.ErrNotFound)
		cartRepo.On("Save", ctx, mock.Anything).Return(nil)
		productRepo.On("FindByIDs", ctx, mock.Anything).
			Return(map[uuid.UUID]*catalog.Product{product.ID: product}, nil)

		resp, err := service.AddItem(ctx, customerID, AddItemRequest{ProductID: product.ID, Quantity: 3})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3, resp.Items[0].Quantity)
		assert.True(t, resp.Items[0].UnitPrice.Equal(product.Price))
		assert.True(t, resp.Total.Equal(decimal.NewFromInt(30)))
	})

	t.Run("clamps to stock", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		productRepo := new(mockProductRepo)
		service := NewCartService(cartRepo, productRepo, zap.NewNop())
		product := testProduct(t, 2)
		cart, _ := shopping.NewCart(customerID)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		cartRepo.On("Save", ctx, cart).Return(nil)
		productRepo.On("FindByIDs", ctx, mock.Anything).
			Return(map[uuid.UUID]*catalog.Product{product.ID: product}, nil)

		resp, err := service.AddItem(ctx, customerID, AddItemRequest{ProductID: product.ID, Quantity: 9})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Items[0].Quantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		productRepo := new(mockProductRepo)
		service := NewCartService(cartRepo, productRepo, zap.NewNop())
		productID := uuid.New()

		productRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

		_, err := service.AddItem(ctx, customerID, AddItemRequest{ProductID: productID, Quantity: 1})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("zero quantity removes the line without a catalog lookup", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		productRepo := new(mockProductRepo)
		service := NewCartService(cartRepo, productRepo, zap.NewNop())
		product := testProduct(t, 5)
		cart, _ := shopping.NewCart(customerID)
		require.NoError(t, cart.AddItem(product.ID, product.Price, 2, 5))

		cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		cartRepo.On("Save", ctx, cart).Return(nil)
		productRepo.On("FindByIDs", ctx, mock.Anything).
			Return(map[uuid.UUID]*catalog.Product{}, nil)

		resp, err := service.UpdateItem(ctx, customerID, product.ID, UpdateItemRequest{Quantity: 0})
		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		productRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("missing cart is a no-op", func(t *testing.T) {
		cartRepo := new(mockCartRepo)
		service := NewCartService(cartRepo, new(mockProductRepo), zap.NewNop())

		cartRepo.On("FindByCustomer", ctx, customerID).Return(nil, shared.ErrNotFound)

		assert.NoError(t, service.Clear(ctx, customerID))
		cartRepo.AssertNotCalled(t, "Save")
	})
}
