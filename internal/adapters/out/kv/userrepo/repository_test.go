package userrepo_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comanda/internal/adapters/out/kv"
	"comanda/internal/adapters/out/kv/userrepo"
	redis_adapter "comanda/internal/adapters/out/redis"
	"comanda/internal/core/domain/model/staff"
	"comanda/internal/pkg/errs"
)

func newTestRepo(t *testing.T) *userrepo.Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redis_adapter.NewKVStore(client)
	return userrepo.NewRepository(store, kv.NewSequence(store))
}

func TestRepository_Add(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	user, err := repo.Add(ctx, "Ana", "ana", "hash-1", staff.RoleWaiter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, staff.RoleWaiter, user.Role)
}

func TestRepository_Add_DuplicateUsername(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	_, err := repo.Add(ctx, "Ana", "ana", "hash-1", staff.RoleWaiter)
	require.NoError(t, err)

	_, err = repo.Add(ctx, "Another Ana", "ana", "hash-2", staff.RoleCook)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRepository_Add_InvalidRole(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Add(t.Context(), "Ana", "ana", "hash-1", staff.Role("manager"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	_, err := repo.Add(ctx, "Ana", "ana", "hash-1", staff.RoleWaiter)
	require.NoError(t, err)
	_, err = repo.Add(ctx, "Luis", "luis", "hash-2", staff.RoleCook)
	require.NoError(t, err)

	user, err := repo.GetByUsername(ctx, "luis")
	require.NoError(t, err)
	assert.Equal(t, "Luis", user.Name)
	assert.Equal(t, staff.RoleCook, user.Role)

	_, err = repo.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	_, err := repo.Add(ctx, "Ana", "ana", "hash-1", staff.RoleWaiter)
	require.NoError(t, err)
	_, err = repo.Add(ctx, "Luis", "luis", "hash-2", staff.RoleCook)
	require.NoError(t, err)

	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ana", users[0].Username)
	assert.Equal(t, "luis", users[1].Username)
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := t.Context()

	user, err := repo.Add(ctx, "Ana", "ana", "hash-1", staff.RoleWaiter)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err = repo.GetByUsername(ctx, "ana")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID))
}
