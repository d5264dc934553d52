package identity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/partner"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/auth"
)

// AuthService handles registration, login, and token lifecycle
type AuthService struct {
	userRepo     identity.Repository
	customerRepo partner.CustomerRepository
	sellerRepo   partner.SellerRepository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.Repository,
	customerRepo partner.CustomerRepository,
	sellerRepo partner.SellerRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		sellerRepo:   sellerRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		logger:       logger,
	}
}

// Register creates a user account with its customer or seller profile
// and logs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	} else if err != shared.ErrNotFound {
		return nil, err
	}

	user, err := identity.NewUser(req.Email, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case identity.RoleCustomer:
		customer, err := partner.NewCustomer(user.ID, user.Email)
		if err != nil {
			return nil, err
		}
		if err := s.customerRepo.Save(ctx, customer); err != nil {
			return nil, err
		}
		user.LinkCustomer(customer.ID)
	case identity.RoleSeller:
		seller, err := partner.NewSeller(user.ID, req.StoreName, user.Email)
		if err != nil {
			return nil, err
		}
		if err := s.sellerRepo.Save(ctx, seller); err != nil {
			return nil, err
		}
		user.LinkSeller(seller.ID)
	default:
		return nil, shared.NewDomainError("INVALID_INPUT", "Admin accounts cannot self-register")
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role.String()))
	return s.issueTokens(user)
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("login for unknown email", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !user.Active {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}
	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if s.blacklist != nil {
		revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, shared.ErrUnauthorized
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil || !user.Active {
		return nil, shared.ErrUnauthorized
	}
	return s.issueTokens(user)
}

// Logout revokes the given tokens until they expire
func (s *AuthService) Logout(ctx context.Context, accessJTI string, accessExpiry time.Time, refreshToken string) error {
	if s.blacklist == nil {
		return nil
	}
	if accessJTI != "" {
		if err := s.blacklist.Revoke(ctx, accessJTI, accessExpiry); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
		if err == nil && claims.ExpiresAt != nil {
			return s.blacklist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
		}
	}
	return nil
}

func (s *AuthService) issueTokens(user *identity.User) (*AuthResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role.String(),
		CustomerID: user.CustomerID,
		SellerID:   user.SellerID,
	})
	if err != nil {
		s.logger.Error("failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}
	return &AuthResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User: UserInfo{
			ID:         user.ID,
			Email:      user.Email,
			Role:       user.Role.String(),
			CustomerID: user.CustomerID,
			SellerID:   user.SellerID,
		},
	}, nil
}
