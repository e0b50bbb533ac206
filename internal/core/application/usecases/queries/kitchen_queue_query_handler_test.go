package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/order"
)

func TestKitchenQueueQueryHandler_Handle(t *testing.T) {
	env := newTestEnv(t)
	ctx := t.Context()
	productID := env.addProduct(t, "Tortilla", 8.50)

	pending := env.createOrder(t, "table 1", 3, commands.OrderLine{ProductID: productID, Quantity: 1})
	preparing := env.createOrder(t, "table 2", 3, commands.OrderLine{ProductID: productID, Quantity: 2})
	env.advance(t, preparing.ID(), order.ItemPreparing)

	ready := env.createOrder(t, "table 3", 3, commands.OrderLine{ProductID: productID, Quantity: 1})
	env.advance(t, ready.ID(), order.ItemReady)

	handler := queries.NewKitchenQueueQueryHandler(env.orders)
	queue, err := handler.Handle(ctx, queries.NewKitchenQueueQuery())
	require.NoError(t, err)

	// the fully ready order has left the kitchen
	require.Len(t, queue, 2)

	byID := make(map[int64]queries.KitchenOrderResponse, len(queue))
	for _, entry := range queue {
		byID[entry.ID] = entry
	}

	assert.Equal(t, "start_preparing", byID[pending.ID()].PermittedAction)
	assert.Equal(t, "mark_ready", byID[preparing.ID()].PermittedAction)
	require.Len(t, byID[pending.ID()].Items, 1, "queue entries are hydrated")
}

func TestKitchenQueueQueryHandler_Handle_MixedItemsOfferNoAction(t *testing.T) {
	env := newTestEnv(t)
	ctx := t.Context()
	productID := env.addProduct(t, "Tortilla", 8.50)

	mixed := env.createOrder(t, "table 1", 3,
		commands.OrderLine{ProductID: productID, Quantity: 1},
		commands.OrderLine{ProductID: productID, Quantity: 2},
	)

	// advance one item directly, leaving the other pending
	itemHandler := commands.NewUpdateOrderItemCommandHandler(env.orders)
	itemCmd, err := commands.NewUpdateOrderItemCommand(mixed.Items()[0].ID(), order.ItemPreparing)
	require.NoError(t, err)
	require.NoError(t, itemHandler.Handle(ctx, itemCmd))

	handler := queries.NewKitchenQueueQueryHandler(env.orders)
	queue, err := handler.Handle(ctx, queries.NewKitchenQueueQuery())
	require.NoError(t, err)

	require.Len(t, queue, 1)
	assert.Equal(t, "none", queue[0].PermittedAction)
}

func TestKitchenQueueQueryHandler_Handle_DeliveredExcluded(t *testing.T) {
	env := newTestEnv(t)
	ctx := t.Context()
	productID := env.addProduct(t, "Tortilla", 8.50)

	delivered := env.createOrder(t, "table 1", 3, commands.OrderLine{ProductID: productID, Quantity: 1})
	env.advance(t, delivered.ID(), order.ItemReady)
	env.deliverOrder(t, delivered.ID())

	handler := queries.NewKitchenQueueQueryHandler(env.orders)
	queue, err := handler.Handle(ctx, queries.NewKitchenQueueQuery())
	require.NoError(t, err)
	assert.Empty(t, queue)
}
