// Package staff holds the user model for the auth collaborator. A user is a
// restaurant employee with one of four roles; the role scopes which lifecycle
// actions their dashboard may perform.
package staff

import (
	"comanda/internal/pkg/errs"
)

// Role identifies which dashboard a user operates.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleWaiter        Role = "waiter"
	RoleCook          Role = "cook"
	RoleCashier       Role = "cashier"
)

// Validate checks that the role is one of the four known values.
func (r Role) Validate() error {
	switch r {
	case RoleAdministrator, RoleWaiter, RoleCook, RoleCashier:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// User is a restaurant employee account. PasswordHash is a bcrypt hash and
// must never leave the service.
type User struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Role         Role
}

// Validate checks the user's required fields.
func (u User) Validate() error {
	if u.ID <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if u.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if u.Username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if u.PasswordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	return u.Role.Validate()
}
