package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
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
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) CreateOrder(
	customerName, productName string, quantity int, unitPrice decimal.Decimal,
) (*order.Order, error) {
	args := m.Called(customerName, productName, quantity, unitPrice)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type logEntry struct {
	level string
	msg   string
	err   error
}

type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
}

func newRecordingLogger() recordingLogger {
	return recordingLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (l recordingLogger) add(e logEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, e)
}

func (l recordingLogger) Info(msg string, _ ...any)  { l.add(logEntry{level: "info", msg: msg}) }
func (l recordingLogger) Warn(msg string, _ ...any)  { l.add(logEntry{level: "warn", msg: msg}) }
func (l recordingLogger) With(_ ...any) ports.Logger { return l }
func (l recordingLogger) Error(msg string, err error, _ ...any) {
	l.add(logEntry{level: "error", msg: msg, err: err})
}

func (l recordingLogger) levels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(*l.entries))
	for _, e := range *l.entries {
		out = append(out, e.level)
	}
	return out
}

func newFactory(t *testing.T) services.OrderFactory {
	t.Helper()
	factory, err := services.NewOrderFactory(kernel.NewMonotonicIDGenerator())
	require.NoError(t, err)
	return factory
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand("John Doe", "Widget", 3, decimal.RequireFromString("19.99"))

	repo := new(MockOrderRepository)
	repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(true).Once()
	logger := newRecordingLogger()

	h := commands.NewCreateOrderCommandHandler(newFactory(t), repo, logger)

	// Act
	created, err := h.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "John Doe", created.CustomerName())
	assert.Equal(t, "Widget", created.ProductName())
	assert.Equal(t, 3, created.Quantity())
	assert.Equal(t, "59.97", created.CalculateTotal().String())
	require.NoError(t, created.ID().Validate())
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "Save", 1)
	assert.NotContains(t, logger.levels(), "warn")
	assert.NotContains(t, logger.levels(), "error")
}

func TestCreateOrderCommandHandler_Handle_SavesTheReturnedOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand("Jane", "Gadget", 2, decimal.RequireFromString("5.00"))

	var saved *order.Order
	repo := new(MockOrderRepository)
	repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(true).Once()

	h := commands.NewCreateOrderCommandHandler(newFactory(t), repo, newRecordingLogger())

	// Act
	created, err := h.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Same(t, saved, created)
}

func TestCreateOrderCommandHandler_Handle_SaveFailureStillSucceeds(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewCreateOrderCommand("John", "Widget", 1, decimal.RequireFromString("1.00"))

	repo := new(MockOrderRepository)
	repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(false).Once()
	logger := newRecordingLogger()

	h := commands.NewCreateOrderCommandHandler(newFactory(t), repo, logger)

	// Act
	created, err := h.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Contains(t, logger.levels(), "warn")
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repo := new(MockOrderRepository)
	logger := newRecordingLogger()
	h := commands.NewCreateOrderCommandHandler(newFactory(t), repo, logger)

	tests := []struct {
		name string
		cmd  commands.CreateOrderCommand
	}{
		{"empty customer", commands.NewCreateOrderCommand("", "Widget", 1, decimal.RequireFromString("1"))},
		{"blank product", commands.NewCreateOrderCommand("John", " ", 1, decimal.RequireFromString("1"))},
		{"zero quantity", commands.NewCreateOrderCommand("John", "Widget", 0, decimal.RequireFromString("1"))},
		{"negative price", commands.NewCreateOrderCommand("John", "Widget", 1, decimal.RequireFromString("-1"))},
		{"price beyond four decimals", commands.NewCreateOrderCommand("John", "Widget", 1, decimal.RequireFromString("1e-9"))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			created, err := h.Handle(ctx, tc.cmd)

			// Assert
			assert.Nil(t, created)
			require.ErrorIs(t, err, errs.ErrValidation)
		})
	}

	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.Contains(t, logger.levels(), "error")
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repo := new(MockOrderRepository)
	creator := new(MockOrderCreator)
	h := commands.NewCreateOrderCommandHandler(creator, repo, newRecordingLogger())

	// Act
	created, err := h.Handle(ctx, commands.CreateOrderCommand{})

	// Assert
	assert.Nil(t, created)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	creator.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnexpectedFactoryError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	price := decimal.RequireFromString("1")
	boom := errors.New("id source exhausted")

	creator := new(MockOrderCreator)
	creator.On("CreateOrder", "John", "Widget", 1, price).Return(nil, boom).Once()
	repo := new(MockOrderRepository)
	logger := newRecordingLogger()

	h := commands.NewCreateOrderCommandHandler(creator, repo, logger)

	// Act
	created, err := h.Handle(ctx, commands.NewCreateOrderCommand("John", "Widget", 1, price))

	// Assert
	assert.Nil(t, created)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, logger.levels(), "error")
	creator.AssertExpectations(t)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
