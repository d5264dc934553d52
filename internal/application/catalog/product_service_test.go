package catalog

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
)

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

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[catalog.Category], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[catalog.Category]), args.Error(1)
}

func (m *mockCategoryRepo) CountProducts(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("valid product", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		categoryRepo := new(mockCategoryRepo)
		service := NewProductService(productRepo, categoryRepo, zap.NewNop())
		category, _ := catalog.NewCategory("Electronics")

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		productRepo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := service.Create(ctx, sellerID, CreateProductRequest{
			Name:       "Keyboard",
			Price:      decimal.NewFromInt(50),
			Stock:      10,
			CategoryID: category.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, sellerID, resp.SellerID)
		assert.True(t, resp.InStock)
	})

	t.Run("unknown category", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		categoryRepo := new(mockCategoryRepo)
		service := NewProductService(productRepo, categoryRepo, zap.NewNop())
		categoryID := uuid.New()

		categoryRepo.On("FindByID", ctx, categoryID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, sellerID, CreateProductRequest{
			Name:       "Keyboard",
			Price:      decimal.NewFromInt(50),
			CategoryID: categoryID,
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		productRepo.AssertNotCalled(t, "Save")
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()

	t.Run("seller cannot touch another seller's product", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		service := NewProductService(productRepo, new(mockCategoryRepo), zap.NewNop())
		product, _ := catalog.NewProduct("Keyboard", "", decimal.NewFromInt(50), 5, uuid.New(), uuid.New())

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := service.Update(ctx, &sellerID, product.ID, UpdateProductRequest{
			Name:  "Keyboard",
			Price: decimal.NewFromInt(60),
		})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("admin updates any product", func(t *testing.T) {
		productRepo := new(mockProductRepo)
		service := NewProductService(productRepo, new(mockCategoryRepo), zap.NewNop())
		product, _ := catalog.NewProduct("Keyboard", "", decimal.NewFromInt(50), 5, sellerID, uuid.New())

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("SaveWithLock", ctx, product, 1).Return(nil)

		resp, err := service.Update(ctx, nil, product.ID, UpdateProductRequest{
			Name:  "Keyboard Pro",
			Price: decimal.NewFromInt(60),
			Stock: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, "Keyboard Pro", resp.Name)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("empty category is deleted", func(t *testing.T) {
		categoryRepo := new(mockCategoryRepo)
		service := NewCategoryService(categoryRepo, zap.NewNop())
		category, _ := catalog.NewCategory("Empty")

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		categoryRepo.On("CountProducts", ctx, category.ID).Return(int64(0), nil)
		categoryRepo.On("Delete", ctx, category.ID).Return(nil)

		assert.NoError(t, service.Delete(ctx, category.ID))
	})

	t.Run("category with products is protected", func(t *testing.T) {
		categoryRepo := new(mockCategoryRepo)
		service := NewCategoryService(categoryRepo, zap.NewNop())
		category, _ := catalog.NewCategory("Busy")

		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		categoryRepo.On("CountProducts", ctx, category.ID).Return(int64(3), nil)

		err := service.Delete(ctx, category.ID)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		categoryRepo.AssertNotCalled(t, "Delete")
	})
}
