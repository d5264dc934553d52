package ordering

import (
	"github.com/google/uuid"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/identity"
	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// Actor identifies the authenticated caller of an order operation
type Actor struct {
	UserID     uuid.UUID
	Role       identity.Role
	CustomerID *uuid.UUID
	SellerID   *uuid.UUID
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == identity.RoleAdmin
}

// RequireCustomer returns the actor's customer profile ID or an
// unauthorized error
func (a Actor) RequireCustomer() (uuid.UUID, error) {
	if a.Role != identity.RoleCustomer || a.CustomerID == nil {
		return uuid.Nil, shared.ErrUnauthorized
	}
	return *a.CustomerID, nil
}

// RequireSeller returns the actor's seller profile ID or an
// unauthorized error
func (a Actor) RequireSeller() (uuid.UUID, error) {
	if a.Role != identity.RoleSeller || a.SellerID == nil {
		return uuid.Nil, shared.ErrUnauthorized
	}
	return *a.SellerID, nil
}
