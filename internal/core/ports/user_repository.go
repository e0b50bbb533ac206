package ports

import (
	"context"

	"comanda/internal/core/domain/model/staff"
)

// UserRepository is the auth collaborator's storage contract.
type UserRepository interface {
	// Add persists a new user. Fails when the username is already taken.
	Add(ctx context.Context, name, username, passwordHash string, role staff.Role) (staff.User, error)

	// GetByUsername retrieves a user by their login name.
	GetByUsername(ctx context.Context, username string) (staff.User, error)

	// GetAll retrieves all users sorted by id.
	GetAll(ctx context.Context) ([]staff.User, error)

	// Delete removes a user by id. Deleting an absent user is not an error.
	Delete(ctx context.Context, id int64) error
}
