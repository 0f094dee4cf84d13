package commands_test

import (
	"errors"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand(t *testing.T) {
	cmd, err := commands.NewDeleteOrderCommand(4)
	require.NoError(t, err)
	require.Equal(t, int64(4), cmd.OrderID())

	_, err = commands.NewDeleteOrderCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(4)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Remove", ctx, int64(4)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_Twice_SecondIsNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(4)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Remove", ctx, int64(4)).Return(nil).Once()
	orders.On("Remove", ctx, int64(4)).Return(errs.NewObjectNotFoundError("order", int64(4))).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orders)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNumberOfCalls(t, "Commit", 1)
}

func TestDeleteOrderCommandHandler_Handle_RemoveError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(4)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Remove", ctx, int64(4)).Return(errors.New("connection reset")).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orders)
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
