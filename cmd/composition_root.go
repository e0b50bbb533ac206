// Package cmd wires the application together: it builds the storage backend
// selected by configuration, constructs the use case handlers on top of it
// and hands the assembled server and background jobs to main.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	adapter_http "comanda/internal/adapters/in/http"
	"comanda/internal/adapters/out/kv"
	"comanda/internal/adapters/out/kv/catalogrepo"
	"comanda/internal/adapters/out/kv/orderrepo"
	"comanda/internal/adapters/out/kv/userrepo"
	postgres_adapter "comanda/internal/adapters/out/postgres"
	redis_adapter "comanda/internal/adapters/out/redis"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/ports"
	"comanda/internal/polling"
)

// CompositionRoot owns the shared infrastructure and builds handlers on
// demand. All handlers share the same KVStore, so the selected backend is
// decided once, here.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	store    ports.KVStore
	sequence ports.IDSequence
	orders   ports.OrderRepository
	catalog  ports.ProductCatalog
	users    ports.UserRepository
}

// NewCompositionRoot connects to the configured storage backend and builds
// the repository layer.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	store, err := buildKVStore(config)
	if err != nil {
		return nil, fmt.Errorf("build kv store: %w", err)
	}

	sequence := kv.NewSequence(store)
	return &CompositionRoot{
		config:   config,
		logger:   logger,
		store:    store,
		sequence: sequence,
		orders:   orderrepo.NewRepository(store),
		catalog:  catalogrepo.NewRepository(store, sequence),
		users:    userrepo.NewRepository(store, sequence),
	}, nil
}

func buildKVStore(config Config) (ports.KVStore, error) {
	switch config.StorageBackend {
	case StorageRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		return redis_adapter.NewKVStore(client), nil

	case StoragePostgres:
		db, err := gorm.Open(gorm_postgres.Open(config.postgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		store := postgres_adapter.NewKVStore(db)
		if err := store.InitSchema(); err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}
}

// CreateServer assembles the REST server with all use case handlers.
func (c *CompositionRoot) CreateServer() *adapter_http.Server {
	return adapter_http.NewServer(adapter_http.ServerDeps{
		CreateOrder:     commands.NewCreateOrderCommandHandler(c.orders, c.sequence, c.catalog),
		StartPreparing:  commands.NewStartPreparingCommandHandler(c.orders),
		MarkReady:       commands.NewMarkReadyCommandHandler(c.orders),
		DeliverOrder:    commands.NewDeliverOrderCommandHandler(c.orders),
		DeleteOrder:     commands.NewDeleteOrderCommandHandler(c.orders),
		UpdateOrder:     commands.NewUpdateOrderCommandHandler(c.orders),
		UpdateOrderItem: commands.NewUpdateOrderItemCommandHandler(c.orders),

		ListOrders:   queries.NewListOrdersQueryHandler(c.orders),
		GetOrder:     queries.NewGetOrderQueryHandler(c.orders),
		KitchenQueue: queries.NewKitchenQueueQueryHandler(c.orders),
		CashierBoard: queries.NewCashierBoardQueryHandler(c.orders, c.catalog),
		WaiterOrders: queries.NewWaiterOrdersQueryHandler(c.orders),

		UserRepo: c.users,
		Catalog:  c.catalog,

		JWTSecret: []byte(c.config.JWTSecret),
		Logger:    c.logger,
	})
}

// CreatePollingManager builds the server-side dashboard synchronizers. They
// keep warm snapshots of the kitchen queue and the cashier board on the same
// schedules the dashboards poll with.
func (c *CompositionRoot) CreatePollingManager() *polling.Manager {
	kitchenHandler := queries.NewKitchenQueueQueryHandler(c.orders)
	kitchen := polling.NewSynchronizer(
		"kitchen",
		polling.KitchenSchedule,
		func(ctx context.Context) ([]queries.KitchenOrderResponse, error) {
			return kitchenHandler.Handle(ctx, queries.NewKitchenQueueQuery())
		},
		c.logger,
	)

	cashierHandler := queries.NewCashierBoardQueryHandler(c.orders, c.catalog)
	cashier := polling.NewSynchronizer(
		"cashier",
		polling.DashboardSchedule,
		func(ctx context.Context) (queries.CashierBoardResponse, error) {
			return cashierHandler.Handle(ctx, queries.NewCashierBoardQuery())
		},
		c.logger,
	)

	return polling.NewManager(kitchen, cashier)
}
