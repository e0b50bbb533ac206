package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
)

func TestMarkReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkReadyCommand(1)
	require.NoError(t, err)

	stored := storedOrder(t, 1, order.ItemPreparing, order.ItemPreparing)
	orderRepo := new(MockOrderRepository)

	mock.InOrder(
		orderRepo.On("Get", ctx, int64(1)).Return(stored, nil).Once(),
		orderRepo.On("UpdateItem", ctx, mock.AnythingOfType("*order.OrderItem")).Return(nil).Twice(),
	)

	handler := commands.NewMarkReadyCommandHandler(orderRepo)
	require.NoError(t, handler.Handle(ctx, cmd))

	for _, item := range stored.Items() {
		assert.Equal(t, order.ItemReady, item.Status())
	}
	assert.True(t, stored.ReadyToDeliver())
	orderRepo.AssertExpectations(t)
}

func TestMarkReadyCommandHandler_Handle_ItemsStillPending(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkReadyCommand(1)
	require.NoError(t, err)

	stored := storedOrder(t, 1, order.ItemPending, order.ItemPending)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(1)).Return(stored, nil).Once()

	handler := commands.NewMarkReadyCommandHandler(orderRepo)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "UpdateItem")
}

func TestMarkReadyCommandHandler_Handle_MixedItems(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkReadyCommand(1)
	require.NoError(t, err)

	stored := storedOrder(t, 1, order.ItemPreparing, order.ItemReady)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(1)).Return(stored, nil).Once()

	handler := commands.NewMarkReadyCommandHandler(orderRepo)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "UpdateItem")
}

func TestMarkReadyCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkReadyCommand(404)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("order", 404)).Once()

	handler := commands.NewMarkReadyCommandHandler(orderRepo)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
