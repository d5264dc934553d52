package identity

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Abdelrahman-cSharp/UShop/internal/domain/shared"
)

// Role determines what a user may do
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSeller   Role = "seller"
	RoleCustomer Role = "customer"
)

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSeller || r == RoleCustomer
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// User is an authenticated account. Customer and seller accounts link
// to their partner profile through the respective ID.
type User struct {
	shared.BaseAggregateRoot
	Email        string     `gorm:"not null;uniqueIndex"`
	PasswordHash string     `gorm:"not null"`
	Role         Role       `gorm:"not null"`
	CustomerID   *uuid.UUID `gorm:"type:uuid"`
	SellerID     *uuid.UUID `gorm:"type:uuid"`
	Active       bool       `gorm:"not null;default:true"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with a hashed password
func NewUser(email, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_INPUT", "A valid email is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown role")
	}
	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Role:              role,
		Active:            true,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// LinkCustomer attaches a customer profile to the account
func (u *User) LinkCustomer(customerID uuid.UUID) {
	u.CustomerID = &customerID
}

// LinkSeller attaches a seller profile to the account
func (u *User) LinkSeller(sellerID uuid.UUID) {
	u.SellerID = &sellerID
}
