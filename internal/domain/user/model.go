// Package user provides the User resource: ad authors with role,
// locations and a derived published-ad count.
package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"adboard/internal/core/apperror"
)

// Role is the user's marketplace role.
type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// DefaultRole is assigned when no role is supplied.
const DefaultRole = RoleMember

// User represents a marketplace account.
type User struct {
	ID        int64  `db:"id" json:"id"`
	Username  string `db:"username" json:"username"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Role      Role   `db:"role" json:"role"`
	Age       int    `db:"age" json:"age"`

	// PasswordHash is the bcrypt hash; never projected.
	PasswordHash string `db:"password_hash" json:"-"`

	// Password holds a pending plaintext password until it is hashed.
	// It is never persisted or projected.
	Password string `db:"-" json:"-"`

	// Locations holds the user's location names (many-to-many,
	// additive-only through the API).
	Locations []string `db:"-" json:"locations"`

	// TotalAds is the count of this user's published ads (derived on read).
	TotalAds int64 `db:"-" json:"total_ads"`
}

// New creates a User with required fields and defaults.
func New(username, password string) *User {
	return &User{
		Username: username,
		Password: password,
		Role:     DefaultRole,
	}
}

// Validate implements domain.Validatable.
func (u *User) Validate(ctx context.Context) error {
	fields := map[string][]string{}

	if u.Username == "" {
		fields["username"] = append(fields["username"], "username is required")
	}
	if !isValidRole(u.Role) {
		fields["role"] = append(fields["role"], "role must be one of: member, moderator, admin")
	}
	if u.Age < 0 {
		fields["age"] = append(fields["age"], "age must not be negative")
	}
	if u.PasswordHash == "" && u.Password == "" {
		fields["password"] = append(fields["password"], "password is required")
	}

	if len(fields) > 0 {
		return apperror.NewFieldErrors(fields)
	}
	return nil
}

// HashPassword hashes the pending plaintext password into PasswordHash
// and clears the plaintext. No-op when no password is pending.
func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Password = ""
	return nil
}

// CheckPassword compares a plaintext password against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// AddLocations unions new location names into the user's set,
// preserving order of first appearance. Existing names are kept.
func (u *User) AddLocations(names []string) {
	seen := make(map[string]struct{}, len(u.Locations))
	for _, n := range u.Locations {
		seen[n] = struct{}{}
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		u.Locations = append(u.Locations, n)
	}
}

func isValidRole(r Role) bool {
	switch r {
	case RoleMember, RoleModerator, RoleAdmin:
		return true
	}
	return false
}
