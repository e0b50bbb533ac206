package services_test

import (
	"testing"
	"time"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, status order.Status, itemStatuses ...order.ItemStatus) *order.Order {
	t.Helper()
	items := make([]*order.OrderItem, 0, len(itemStatuses))
	for i, s := range itemStatuses {
		item, err := order.RestoreOrderItem(int64(70+i), 7, int64(i+1), 1, s, 1)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.RestoreOrder(7, "5", 2, nil, status, time.Now().UTC(), 1, items)
	require.NoError(t, err)
	return o
}

func TestKitchenPolicy_PermittedAction(t *testing.T) {
	policy := services.NewKitchenPolicy()

	t.Run("all pending offers start preparing", func(t *testing.T) {
		o := restoredOrder(t, order.StatusPending, order.ItemPending, order.ItemPending)
		assert.Equal(t, services.ActionStartPreparing, policy.PermittedAction(o))
	})

	t.Run("all preparing offers mark ready", func(t *testing.T) {
		o := restoredOrder(t, order.StatusPending, order.ItemPreparing, order.ItemPreparing)
		assert.Equal(t, services.ActionMarkReady, policy.PermittedAction(o))
	})

	t.Run("mixed states offer nothing", func(t *testing.T) {
		o := restoredOrder(t, order.StatusPending, order.ItemPreparing, order.ItemReady)
		assert.Equal(t, services.ActionNone, policy.PermittedAction(o))

		o = restoredOrder(t, order.StatusPending, order.ItemPending, order.ItemPreparing)
		assert.Equal(t, services.ActionNone, policy.PermittedAction(o))
	})

	t.Run("fully ready offers nothing", func(t *testing.T) {
		o := restoredOrder(t, order.StatusPending, order.ItemReady, order.ItemReady)
		assert.Equal(t, services.ActionNone, policy.PermittedAction(o))
	})

	t.Run("delivered orders offer nothing", func(t *testing.T) {
		o := restoredOrder(t, order.StatusDelivered, order.ItemReady)
		assert.Equal(t, services.ActionNone, policy.PermittedAction(o))
	})

	t.Run("nil and itemless orders offer nothing", func(t *testing.T) {
		assert.Equal(t, services.ActionNone, policy.PermittedAction(nil))

		o, err := order.RestoreOrder(7, "5", 2, nil, order.StatusPending, time.Now().UTC(), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, services.ActionNone, policy.PermittedAction(o))
	})
}

func TestKitchenPolicy_IsActiveForKitchen(t *testing.T) {
	policy := services.NewKitchenPolicy()

	t.Run("pending and not fully ready is active", func(t *testing.T) {
		o := restoredOrder(t, order.StatusPending, order.ItemPending, order.ItemPreparing)
		assert.True(t, policy.IsActiveForKitchen(o))
	})

	t.Run("fully ready leaves the queue", func(t *testing.T) {
		o := restoredOrder(t, order.StatusPending, order.ItemReady, order.ItemReady)
		assert.False(t, policy.IsActiveForKitchen(o))
	})

	t.Run("delivered orders are not active", func(t *testing.T) {
		o := restoredOrder(t, order.StatusDelivered, order.ItemReady)
		assert.False(t, policy.IsActiveForKitchen(o))
	})
}

func TestKitchenAction_String(t *testing.T) {
	assert.Equal(t, "start_preparing", services.ActionStartPreparing.String())
	assert.Equal(t, "mark_ready", services.ActionMarkReady.String())
	assert.Equal(t, "none", services.ActionNone.String())
}
