package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewCreateProductCommand("Hoodie", "warm", "clothes", decimal.RequireFromString("19.90"))

	products := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	p, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Hoodie", p.Name())
	assert.True(t, decimal.RequireFromString("19.9").Equal(p.Price()))
	uow.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_InvalidProduct_NoTransaction(t *testing.T) {
	cmd := commands.NewCreateProductCommand(" ", "", "", decimal.NewFromInt(-1))
	factory := new(MockProductUoWFactory)

	h := commands.NewCreateProductCommandHandler(factory)
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	stored := mustProduct(t, 3)
	name := "Jacket"
	price := decimal.NewFromInt(45)
	cmd, err := commands.NewUpdateProductCommand(3, commands.ProductPatch{Name: &name, Price: &price})
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, int64(3)).Return(stored, nil).Once()
	products.On("Update", ctx, stored).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ProductRepository").Return(products)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateProductCommandHandler(factory)
	p, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Jacket", p.Name())
	assert.Equal(t, "clothes", p.Category())
	assert.True(t, price.Equal(p.Price()))
	assert.False(t, p.UpdatedAt().Before(p.CreatedAt()))
	products.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateProductCommand(3, commands.ProductPatch{})
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, int64(3)).Return(nil, errs.NewObjectNotFoundError("product", int64(3))).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ProductRepository").Return(products)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProductCommandHandler_Handle_NegativePrice(t *testing.T) {
	ctx := t.Context()
	price := decimal.NewFromInt(-5)
	cmd, err := commands.NewUpdateProductCommand(3, commands.ProductPatch{Price: &price})
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, int64(3)).Return(mustProduct(t, 3), nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ProductRepository").Return(products)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewUpdateProductCommand_InvalidID(t *testing.T) {
	_, err := commands.NewUpdateProductCommand(0, commands.ProductPatch{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

