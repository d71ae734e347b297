package memory_test

import (
	"context"
	"sync"
	"testing"

	"orders/internal/adapters/out/memory"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)         {}
func (nopLogger) Warn(string, ...any)         {}
func (nopLogger) Error(string, error, ...any) {}
func (l nopLogger) With(...any) ports.Logger  { return l }

func newOrder(t *testing.T, id int64, customer string) *order.Order {
	t.Helper()
	oid, err := kernel.NewID(id)
	require.NoError(t, err)
	return order.New(oid, customer, "Widget", 2, decimal.RequireFromString("10.00"))
}

func TestOrderRepository_ListAll_Empty(t *testing.T) {
	repo := memory.NewOrderRepository(nopLogger{})

	orders, err := repo.ListAll(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderRepository_SaveAndListInIDOrder(t *testing.T) {
	repo := memory.NewOrderRepository(nopLogger{})
	ctx := t.Context()

	require.True(t, repo.Save(ctx, newOrder(t, 30, "C")))
	require.True(t, repo.Save(ctx, newOrder(t, 10, "A")))
	require.True(t, repo.Save(ctx, newOrder(t, 20, "B")))

	orders, err := repo.ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []string{"A", "B", "C"},
		[]string{orders[0].CustomerName(), orders[1].CustomerName(), orders[2].CustomerName()})
	assert.Equal(t, "20", orders[0].CalculateTotal().String())
}

func TestOrderRepository_Save_Refusals(t *testing.T) {
	ctx := t.Context()

	t.Run("duplicate id", func(t *testing.T) {
		repo := memory.NewOrderRepository(nopLogger{})
		require.True(t, repo.Save(ctx, newOrder(t, 1, "A")))

		assert.False(t, repo.Save(ctx, newOrder(t, 1, "B")))

		orders, _ := repo.ListAll(ctx)
		require.Len(t, orders, 1)
		assert.Equal(t, "A", orders[0].CustomerName())
	})

	t.Run("invalid order", func(t *testing.T) {
		repo := memory.NewOrderRepository(nopLogger{})
		id, _ := kernel.NewID(1)

		assert.False(t, repo.Save(ctx, order.New(id, " ", "Widget", 1, decimal.RequireFromString("1"))))
		assert.False(t, repo.Save(ctx, nil))

		orders, _ := repo.ListAll(ctx)
		assert.Empty(t, orders)
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := memory.NewOrderRepository(nopLogger{})
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		assert.False(t, repo.Save(cancelled, newOrder(t, 1, "A")))

		orders, err := repo.ListAll(cancelled)
		require.ErrorIs(t, err, errs.ErrPersistence)
		require.ErrorIs(t, err, context.Canceled)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})
}

func TestOrderRepository_ConcurrentSaves(t *testing.T) {
	repo := memory.NewOrderRepository(nopLogger{})
	ids := kernel.NewMonotonicIDGenerator()
	ctx := t.Context()

	var wg sync.WaitGroup
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := order.New(ids.NextID(), "John", "Widget", 1, decimal.RequireFromString("1"))
			assert.True(t, repo.Save(ctx, o))
		}()
	}
	wg.Wait()

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 200)
	for i := 1; i < len(orders); i++ {
		assert.True(t, orders[i-1].ID().Less(orders[i].ID()))
	}
}

func TestOrderRepository_Ping(t *testing.T) {
	repo := memory.NewOrderRepository(nopLogger{})
	require.NoError(t, repo.Ping(t.Context()))
}
