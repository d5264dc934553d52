package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

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

func TestCustomerService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	customerRepo := new(mockCustomerRepo)
	service := NewCustomerService(customerRepo, new(mockCardRepo), zap.NewNop())

	customer, err := partner.NewCustomer(uuid.New(), "old@example.com")
	require.NoError(t, err)

	customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
	customerRepo.On("Save", ctx, customer).Return(nil)

	resp, err := service.UpdateProfile(ctx, customer.ID, UpdateProfileRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0101",
		Address:  "1 Main Street",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.FullName)
	assert.True(t, resp.ProfileComplete)
}

func TestCustomerService_SaveCard(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	validReq := SaveCardRequest{
		CardNumber:  "4111111111111111",
		HolderName:  "Jane Doe",
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	}

	t.Run("first card is created", func(t *testing.T) {
		cardRepo := new(mockCardRepo)
		service := NewCustomerService(new(mockCustomerRepo), cardRepo, zap.NewNop())

		cardRepo.On("FindByCustomer", ctx, customerID).Return(nil, shared.ErrNotFound)
		cardRepo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := service.SaveCard(ctx, customerID, validReq)
		require.NoError(t, err)
		assert.Equal(t, "************1111", resp.MaskedNumber)
	})

	t.Run("existing card is replaced in place", func(t *testing.T) {
		cardRepo := new(mockCardRepo)
		service := NewCustomerService(new(mockCustomerRepo), cardRepo, zap.NewNop())

		existing, err := partner.NewCreditCard(customerID, "5555555555554444", "Jane Doe", 1, 2028, "999")
		require.NoError(t, err)

		cardRepo.On("FindByCustomer", ctx, customerID).Return(existing, nil)
		cardRepo.On("Save", ctx, existing).Return(nil)

		resp, err := service.SaveCard(ctx, customerID, validReq)
		require.NoError(t, err)
		assert.Equal(t, "************1111", resp.MaskedNumber)
	})

	t.Run("invalid card is rejected without saving", func(t *testing.T) {
		cardRepo := new(mockCardRepo)
		service := NewCustomerService(new(mockCustomerRepo), cardRepo, zap.NewNop())

		cardRepo.On("FindByCustomer", ctx, customerID).Return(nil, shared.ErrNotFound)

		bad := validReq
		bad.CardNumber = "42"
		_, err := service.SaveCard(ctx, customerID, bad)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CARD", domainErr.Code)
		cardRepo.AssertNotCalled(t, "Save")
	})
}

func TestCustomerService_DeleteCard(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("missing card", func(t *testing.T) {
		cardRepo := new(mockCardRepo)
		service := NewCustomerService(new(mockCustomerRepo), cardRepo, zap.NewNop())

		cardRepo.On("FindByCustomer", ctx, customerID).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.DeleteCard(ctx, customerID), shared.ErrNotFound)
	})
}
