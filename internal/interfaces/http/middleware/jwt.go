package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	orderingapp "github.com/Abdelrahman-cSharp/UShop/internal/application/ordering"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/infrastructure/auth"
	"github.com/Abdelrahman-cSharp/UShop/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTConfig holds configuration for the JWT middleware
type JWTConfig struct {
	JWTService *auth.JWTService
	// Blacklist is optional. When set, revoked tokens are rejected.
	Blacklist auth.TokenBlacklist
	Logger    *zap.Logger
}

// JWTAuth validates the bearer token and stores the claims in the
// request context
func JWTAuth(cfg JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(header, BearerPrefix)

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			code := dto.ErrCodeTokenInvalid
			message := "Invalid token"
			if err == auth.ErrExpiredToken {
				code = dto.ErrCodeTokenExpired
				message = "Token has expired"
			}
			abortUnauthorized(c, code, message)
			return
		}

		if cfg.Blacklist != nil && claims.ID != "" {
			revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail open so an unavailable blacklist store does not
				// take the API down
				if cfg.Logger != nil {
					cfg.Logger.Error("token blacklist check failed",
						zap.String("jti", claims.ID),
						zap.Error(err))
				}
			} else if revoked {
				abortUnauthorized(c, dto.ErrCodeTokenRevoked, "Token has been revoked")
				return
			}
		}

		c.Set(JWTClaimsKey, claims)
		c.Next()
	}
}

// GetClaims retrieves JWT claims from the gin context
func GetClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(JWTClaimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// CurrentActor builds the authenticated actor from the JWT claims
func CurrentActor(c *gin.Context) (orderingapp.Actor, bool) {
	claims := GetClaims(c)
	if claims == nil {
		return orderingapp.Actor{}, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return orderingapp.Actor{}, false
	}
	actor := orderingapp.Actor{
		UserID: userID,
		Role:   identity.Role(claims.Role),
	}
	if claims.CustomerID != "" {
		if id, err := uuid.Parse(claims.CustomerID); err == nil {
			actor.CustomerID = &id
		}
	}
	if claims.SellerID != "" {
		if id, err := uuid.Parse(claims.SellerID); err == nil {
			actor.SellerID = &id
		}
	}
	return actor, true
}

// RequireRole rejects requests whose token role is not in the allowed
// set. Must run after JWTAuth.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		if _, ok := allowed[identity.Role(claims.Role)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient role"))
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}
