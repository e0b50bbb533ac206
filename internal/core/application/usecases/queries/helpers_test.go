package queries_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"comanda/internal/adapters/out/kv"
	"comanda/internal/adapters/out/kv/catalogrepo"
	"comanda/internal/adapters/out/kv/orderrepo"
	redis_adapter "comanda/internal/adapters/out/redis"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/order"
)

// testEnv wires real repositories over an in-process store so query tests
// exercise the same read paths as production.
type testEnv struct {
	orders  *orderrepo.Repository
	catalog *catalogrepo.Repository

	create         commands.CreateOrderCommandHandler
	startPreparing commands.StartPreparingCommandHandler
	markReady      commands.MarkReadyCommandHandler
	deliver        commands.DeliverOrderCommandHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redis_adapter.NewKVStore(client)
	sequence := kv.NewSequence(store)
	orders := orderrepo.NewRepository(store)
	catalog := catalogrepo.NewRepository(store, sequence)

	return &testEnv{
		orders:         orders,
		catalog:        catalog,
		create:         commands.NewCreateOrderCommandHandler(orders, sequence, catalog),
		startPreparing: commands.NewStartPreparingCommandHandler(orders),
		markReady:      commands.NewMarkReadyCommandHandler(orders),
		deliver:        commands.NewDeliverOrderCommandHandler(orders),
	}
}

// addProduct seeds one catalog product and returns its id.
func (env *testEnv) addProduct(t *testing.T, name string, price float64) int64 {
	t.Helper()
	product, err := env.catalog.AddProduct(t.Context(), name, price, nil)
	require.NoError(t, err)
	return product.ID
}

// createOrder opens an order through the command handler and returns it.
func (env *testEnv) createOrder(t *testing.T, table string, waiterID int64, lines ...commands.OrderLine) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(table, waiterID, lines)
	require.NoError(t, err)
	created, err := env.create.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return created
}

// advance walks an order forward through the kitchen workflow.
func (env *testEnv) advance(t *testing.T, orderID int64, to order.ItemStatus) {
	t.Helper()
	ctx := t.Context()

	start, err := commands.NewStartPreparingCommand(orderID, 9)
	require.NoError(t, err)
	require.NoError(t, env.startPreparing.Handle(ctx, start))
	if to == order.ItemPreparing {
		return
	}

	ready, err := commands.NewMarkReadyCommand(orderID)
	require.NoError(t, err)
	require.NoError(t, env.markReady.Handle(ctx, ready))
}

// deliverOrder closes a fully ready order out.
func (env *testEnv) deliverOrder(t *testing.T, orderID int64) {
	t.Helper()
	cmd, err := commands.NewDeliverOrderCommand(orderID)
	require.NoError(t, err)
	require.NoError(t, env.deliver.Handle(t.Context(), cmd))
}
