package queries_test

import (
	"context"
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) bool {
	args := m.Called(ctx, o)
	return args.Bool(0)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)         {}
func (nopLogger) Warn(string, ...any)         {}
func (nopLogger) Error(string, error, ...any) {}
func (l nopLogger) With(...any) ports.Logger  { return l }

func newOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	oid, err := kernel.NewID(id)
	require.NoError(t, err)
	return order.New(oid, "John", "Widget", 1, decimal.RequireFromString("2.50"))
}

func TestListOrdersQuery(t *testing.T) {
	// Act & Assert
	require.NoError(t, queries.NewListOrdersQuery().Validate())

	var zero queries.ListOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("returns orders from repository", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		stored := []*order.Order{newOrder(t, 1), newOrder(t, 2), newOrder(t, 3)}
		repo := new(MockOrderRepository)
		repo.On("ListAll", ctx).Return(stored, nil).Once()

		h := queries.NewListOrdersQueryHandler(repo, nopLogger{})

		// Act
		got, err := h.Handle(ctx, queries.NewListOrdersQuery())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, stored, got)
		repo.AssertExpectations(t)
	})

	t.Run("empty store yields empty non-nil slice", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		repo := new(MockOrderRepository)
		repo.On("ListAll", ctx).Return(nil, nil).Once()

		h := queries.NewListOrdersQueryHandler(repo, nopLogger{})

		// Act
		got, err := h.Handle(ctx, queries.NewListOrdersQuery())

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("propagates persistence failure", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		repo := new(MockOrderRepository)
		repo.On("ListAll", ctx).
			Return([]*order.Order{}, errs.NewPersistenceError("list orders", assert.AnError)).Once()

		h := queries.NewListOrdersQueryHandler(repo, nopLogger{})

		// Act
		got, err := h.Handle(ctx, queries.NewListOrdersQuery())

		// Assert
		assert.Nil(t, got)
		require.ErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("rejects query not built by constructor", func(t *testing.T) {
		// Arrange
		repo := new(MockOrderRepository)
		h := queries.NewListOrdersQueryHandler(repo, nopLogger{})

		// Act
		_, err := h.Handle(t.Context(), queries.ListOrdersQuery{})

		// Assert
		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
		repo.AssertNotCalled(t, "ListAll", mock.Anything)
	})
}
