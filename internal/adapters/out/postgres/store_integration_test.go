package postgres_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStore_OpenPingClose(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := postgres.Open(ctx, dsn, postgres.PoolOptions{MaxOpenConns: 4})
	require.NoError(t, err)

	require.NoError(t, store.Ping(ctx))
	assert.NotNil(t, store.DB())

	require.NoError(t, store.Close())
	require.Error(t, store.Ping(ctx))
}

func TestStore_NilIsNotInitialized(t *testing.T) {
	var store *postgres.Store

	require.ErrorIs(t, store.Ping(context.Background()), postgres.ErrStoreIsNotInitialized)
	require.NoError(t, store.Close())
}
