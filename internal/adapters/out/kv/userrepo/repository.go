// Package userrepo persists user accounts as key-value records under
// "user:{id}". Username lookups scan the prefix; the account set is small
// enough that no secondary index is kept.
package userrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"comanda/internal/core/domain/model/staff"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

const userKeyPrefix = "user:"

func userKey(id int64) string {
	return fmt.Sprintf("%s%d", userKeyPrefix, id)
}

// userDTO is the JSON document stored under "user:{id}".
type userDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
}

// Repository implements ports.UserRepository on a key-value store.
type Repository struct {
	store ports.KVStore
	seq   ports.IDSequence
}

// NewRepository creates a key-value backed user repository.
func NewRepository(store ports.KVStore, seq ports.IDSequence) *Repository {
	return &Repository{store: store, seq: seq}
}

// Add allocates an identifier and persists a new user. The username must not
// be taken.
func (r *Repository) Add(ctx context.Context, name, username, passwordHash string, role staff.Role) (staff.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return staff.User{}, err
	}
	for _, existing := range users {
		if existing.Username == username {
			return staff.User{}, errs.NewValueIsInvalidErrorWithCause(
				"username", fmt.Errorf("%q is already taken", username))
		}
	}

	id, err := r.seq.NextID(ctx, "user")
	if err != nil {
		return staff.User{}, err
	}

	user := staff.User{ID: id, Name: name, Username: username, PasswordHash: passwordHash, Role: role}
	if err := user.Validate(); err != nil {
		return staff.User{}, err
	}

	value, err := json.Marshal(fromDomain(user))
	if err != nil {
		return staff.User{}, fmt.Errorf("marshal user record %d: %w", id, err)
	}
	if err := r.store.Set(ctx, userKey(id), value); err != nil {
		return staff.User{}, err
	}
	return user, nil
}

// GetByUsername retrieves a user by their login name.
func (r *Repository) GetByUsername(ctx context.Context, username string) (staff.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return staff.User{}, err
	}
	for _, user := range users {
		if user.Username == username {
			return user, nil
		}
	}
	return staff.User{}, errs.NewObjectNotFoundError("username", username)
}

// GetAll retrieves every user sorted by id.
func (r *Repository) GetAll(ctx context.Context) ([]staff.User, error) {
	records, err := r.store.ScanByPrefix(ctx, userKeyPrefix)
	if err != nil {
		return nil, err
	}

	users := make([]staff.User, 0, len(records))
	for _, record := range records {
		var dto userDTO
		if err := json.Unmarshal(record.Value, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal user record %q: %w", record.Key, err)
		}
		users = append(users, toDomain(dto))
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Delete removes a user. Deleting an absent user is not an error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, userKey(id))
}

func fromDomain(user staff.User) userDTO {
	return userDTO{
		ID:           user.ID,
		Name:         user.Name,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
	}
}

func toDomain(dto userDTO) staff.User {
	return staff.User{
		ID:           dto.ID,
		Name:         dto.Name,
		Username:     dto.Username,
		PasswordHash: dto.PasswordHash,
		Role:         staff.Role(dto.Role),
	}
}
