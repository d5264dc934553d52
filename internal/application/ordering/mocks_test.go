package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/catalog"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/ordering"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shopping"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).(shared.Paginated[ordering.Order]), args.Error(1)
}

func (m *mockOrderRepo) FindBySeller(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	args := m.Called(ctx, sellerID, filter)
	return args.Get(0).(shared.Paginated[ordering.Order]), args.Error(1)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[ordering.Order]), args.Error(1)
}

func (m *mockOrderRepo) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) SaveWithLock(ctx context.Context, order *ordering.Order, expectedVersion int) error {
	args := m.Called(ctx, order, expectedVersion)
	return args.Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCheckoutRepo struct {
	mock.Mock
}

func (m *mockCheckoutRepo) CreateFromCart(ctx context.Context, order *ordering.Order, cartID uuid.UUID) error {
	args := m.Called(ctx, order, cartID)
	return args.Error(0)
}

func (m *mockCheckoutRepo) Create(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

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

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepo) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Customer], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[partner.Customer]), args.Error(1)
}

func (m *mockCustomerRepo) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCardRepo struct {
	mock.Mock
}

func (m *mockCardRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*partner.CreditCard, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.CreditCard), args.Error(1)
}

func (m *mockCardRepo) Save(ctx context.Context, card *partner.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *mockCardRepo) Delete(ctx context.Context, id uuid.UUID) error {
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
