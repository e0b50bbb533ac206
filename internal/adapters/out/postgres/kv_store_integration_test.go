package postgres_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "comanda/internal/adapters/out/postgres"
	"comanda/internal/pkg/errs"
)

// KVStoreIntegrationTestSuite exercises the PostgreSQL key-value adapter
// against a real database instance.
type KVStoreIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	store     *postgres_adapter.KVStore
}

// SetupSuite starts a PostgreSQL container and runs the schema migration.
func (suite *KVStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.store = postgres_adapter.NewKVStore(db)
	suite.Require().NoError(suite.store.InitSchema())
}

// SetupTest truncates the backing tables so tests do not interfere.
func (suite *KVStoreIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE kv_records, kv_sequences").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *KVStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *KVStoreIntegrationTestSuite) TestSetGet() {
	ctx := context.Background()

	err := suite.store.Set(ctx, "order:1", []byte(`{"id":1}`))
	suite.Require().NoError(err)

	value, err := suite.store.Get(ctx, "order:1")
	suite.Require().NoError(err)
	suite.Equal([]byte(`{"id":1}`), value)
}

func (suite *KVStoreIntegrationTestSuite) TestSet_Overwrites() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "order:1", []byte("old")))
	suite.Require().NoError(suite.store.Set(ctx, "order:1", []byte("new")))

	value, err := suite.store.Get(ctx, "order:1")
	suite.Require().NoError(err)
	suite.Equal([]byte("new"), value)
}

func (suite *KVStoreIntegrationTestSuite) TestGet_Missing() {
	_, err := suite.store.Get(context.Background(), "order:404")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *KVStoreIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "order:1", []byte("x")))
	suite.Require().NoError(suite.store.Delete(ctx, "order:1"))

	_, err := suite.store.Get(ctx, "order:1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// deleting again is not an error
	suite.Require().NoError(suite.store.Delete(ctx, "order:1"))
}

func (suite *KVStoreIntegrationTestSuite) TestScanByPrefix() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "order:2", []byte("b")))
	suite.Require().NoError(suite.store.Set(ctx, "order:1", []byte("a")))
	suite.Require().NoError(suite.store.Set(ctx, "order_item:10", []byte("c")))

	records, err := suite.store.ScanByPrefix(ctx, "order:")
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("order:1", records[0].Key)
	suite.Equal("order:2", records[1].Key)

	// the underscore in the item namespace must not act as a wildcard
	items, err := suite.store.ScanByPrefix(ctx, "order_item:")
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("order_item:10", items[0].Key)

	empty, err := suite.store.ScanByPrefix(ctx, "nothing:")
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *KVStoreIntegrationTestSuite) TestIncrement() {
	ctx := context.Background()

	first, err := suite.store.Increment(ctx, "seq:order")
	suite.Require().NoError(err)
	suite.Equal(int64(1), first)

	second, err := suite.store.Increment(ctx, "seq:order")
	suite.Require().NoError(err)
	suite.Equal(int64(2), second)

	other, err := suite.store.Increment(ctx, "seq:order_item")
	suite.Require().NoError(err)
	suite.Equal(int64(1), other)
}

// TestIncrement_Concurrent verifies that concurrent callers never observe
// the same counter value.
func (suite *KVStoreIntegrationTestSuite) TestIncrement_Concurrent() {
	ctx := context.Background()
	const workers = 10

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[int64]bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := suite.store.Increment(ctx, "seq:order")
			suite.Require().NoError(err)
			mu.Lock()
			seen[value] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	suite.Len(seen, workers, "every caller should receive a distinct value")
}

func TestKVStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(KVStoreIntegrationTestSuite))
}
