package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/auth"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/config"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
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

type mockSellerRepo struct {
	mock.Mock
}

func (m *mockSellerRepo) FindByID(ctx context.Context, id uuid.UUID) (*partner.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Seller), args.Error(1)
}

func (m *mockSellerRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Seller, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Seller), args.Error(1)
}

func (m *mockSellerRepo) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[partner.Seller], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[partner.Seller]), args.Error(1)
}

func (m *mockSellerRepo) Save(ctx context.Context, seller *partner.Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *mockSellerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "ushop-test",
	})
}

func newAuthService(userRepo *mockUserRepo, customerRepo *mockCustomerRepo, sellerRepo *mockSellerRepo) *AuthService {
	return NewAuthService(userRepo, customerRepo, sellerRepo, testJWTService(), nil, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("customer registration creates profile and links it", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		customerRepo := new(mockCustomerRepo)
		sellerRepo := new(mockSellerRepo)
		service := newAuthService(userRepo, customerRepo, sellerRepo)

		userRepo.On("FindByEmail", ctx, "jane@example.com").Return(nil, shared.ErrNotFound)
		customerRepo.On("Save", ctx, mock.Anything).Return(nil)
		userRepo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := service.Register(ctx, RegisterRequest{
			Email:    "jane@example.com",
			Password: "s3cretpass",
			Role:     "customer",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "customer", resp.User.Role)
		assert.NotNil(t, resp.User.CustomerID)
		assert.Nil(t, resp.User.SellerID)
		sellerRepo.AssertNotCalled(t, "Save")
	})

	t.Run("seller registration creates store profile", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		customerRepo := new(mockCustomerRepo)
		sellerRepo := new(mockSellerRepo)
		service := newAuthService(userRepo, customerRepo, sellerRepo)

		userRepo.On("FindByEmail", ctx, "shop@example.com").Return(nil, shared.ErrNotFound)
		sellerRepo.On("Save", ctx, mock.Anything).Return(nil)
		userRepo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := service.Register(ctx, RegisterRequest{
			Email:     "shop@example.com",
			Password:  "s3cretpass",
			Role:      "seller",
			StoreName: "Acme",
		})
		require.NoError(t, err)
		assert.NotNil(t, resp.User.SellerID)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		service := newAuthService(userRepo, new(mockCustomerRepo), new(mockSellerRepo))
		existing, _ := identity.NewUser("jane@example.com", "s3cretpass", identity.RoleCustomer)

		userRepo.On("FindByEmail", ctx, "jane@example.com").Return(existing, nil)

		_, err := service.Register(ctx, RegisterRequest{
			Email:    "jane@example.com",
			Password: "s3cretpass",
			Role:     "customer",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("admin self-registration rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		service := newAuthService(userRepo, new(mockCustomerRepo), new(mockSellerRepo))

		userRepo.On("FindByEmail", ctx, "root@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Register(ctx, RegisterRequest{
			Email:    "root@example.com",
			Password: "s3cretpass",
			Role:     "admin",
		})
		assert.Error(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		service := newAuthService(userRepo, new(mockCustomerRepo), new(mockSellerRepo))
		user, err := identity.NewUser("jane@example.com", "s3cretpass", identity.RoleCustomer)
		require.NoError(t, err)

		userRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)

		resp, err := service.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "s3cretpass"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		service := newAuthService(userRepo, new(mockCustomerRepo), new(mockSellerRepo))
		user, _ := identity.NewUser("jane@example.com", "s3cretpass", identity.RoleCustomer)

		userRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)

		_, err := service.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "wrong"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		service := newAuthService(userRepo, new(mockCustomerRepo), new(mockSellerRepo))

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := service.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		service := newAuthService(userRepo, new(mockCustomerRepo), new(mockSellerRepo))
		user, err := identity.NewUser("jane@example.com", "s3cretpass", identity.RoleCustomer)
		require.NoError(t, err)

		userRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)

		login, err := service.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "s3cretpass"})
		require.NoError(t, err)

		resp, err := service.Refresh(ctx, RefreshRequest{RefreshToken: login.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		service := newAuthService(new(mockUserRepo), new(mockCustomerRepo), new(mockSellerRepo))

		_, err := service.Refresh(ctx, RefreshRequest{RefreshToken: "not-a-token"})
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})
}
