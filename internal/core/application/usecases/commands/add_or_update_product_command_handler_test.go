package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/commands"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/core/ports"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) UpdateLineItem(ctx context.Context, orderLineItem *order.OrderLineItem) error {
	args := m.Called(ctx, orderLineItem)
	return args.Error(0)
}
func (m *MockOrderRepository) GetLineItem(
	_ context.Context, _ order.ID, _ order.LineItemID,
) (*order.OrderLineItem, error) {
	return nil, errors.New("not implemented in mock")
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id product.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	owner, err := customer.NewCustomer(kernel.NewID[customer.Customer]())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewID[order.Order](), owner)
	require.NoError(t, err)
	return o
}

func newTestProduct(t *testing.T, title string, price float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewID[product.Product](), title, price)
	require.NoError(t, err)
	return p
}

func TestAddOrUpdateProductCommandHandler_Handle_AddsNewLineItem(t *testing.T) {
	ctx := t.Context()
	anOrder := newTestOrder(t)
	aProduct := newTestProduct(t, "Apple", 1.5)
	cmd, _ := commands.NewAddOrUpdateProductCommand(anOrder.ID(), aProduct.ID(), 3)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, aProduct.ID()).Return(aProduct, nil).Once(),
		orderRepo.On("Update", mock.Anything, anOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	lineItemID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, anOrder.LineItems(), 1)
	lineItem := anOrder.LineItems()[0]
	assert.True(t, lineItem.ID().IsEqual(lineItemID))
	assert.True(t, lineItem.ProductID().IsEqual(aProduct.ID()))
	assert.Equal(t, 3, lineItem.Quantity())
	assert.InDelta(t, 1.5, lineItem.Price(), 0.0001)

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrUpdateProductCommandHandler_Handle_UpdatesExistingQuantity(t *testing.T) {
	ctx := t.Context()
	anOrder := newTestOrder(t)
	aProduct := newTestProduct(t, "Apple", 1.5)
	existingID, err := anOrder.AddProduct(kernel.NewNextIDProvider[order.LineItem](), aProduct, 2)
	require.NoError(t, err)
	cmd, _ := commands.NewAddOrUpdateProductCommand(anOrder.ID(), aProduct.ID(), 5)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once(),
		orderRepo.On("UpdateLineItem", mock.Anything, mock.AnythingOfType("*order.OrderLineItem")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	lineItemID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// The existing line item is reused, no new one is created.
	assert.True(t, lineItemID.IsEqual(existingID))
	require.Len(t, anOrder.LineItems(), 1)
	assert.Equal(t, 5, anOrder.LineItems()[0].Quantity())
	assert.InDelta(t, 1.5, anOrder.LineItems()[0].Price(), 0.0001)

	uow.AssertNotCalled(t, "ProductRepository")
	orderRepo.AssertNotCalled(t, "Update")
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrUpdateProductCommandHandler_Handle_SameQuantityIsIdempotent(t *testing.T) {
	ctx := t.Context()
	anOrder := newTestOrder(t)
	aProduct := newTestProduct(t, "Apple", 1.5)
	existingID, err := anOrder.AddProduct(kernel.NewNextIDProvider[order.LineItem](), aProduct, 2)
	require.NoError(t, err)
	cmd, _ := commands.NewAddOrUpdateProductCommand(anOrder.ID(), aProduct.ID(), 2)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once(),
		orderRepo.On("UpdateLineItem", mock.Anything, mock.AnythingOfType("*order.OrderLineItem")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	lineItemID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, lineItemID.IsEqual(existingID))
	assert.Equal(t, 2, anOrder.LineItems()[0].Quantity())
}

func TestAddOrUpdateProductCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.AddOrUpdateProductCommand

	factory := new(MockUoWFactory)
	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAddOrUpdateProductCommandIsNotConstructed)
}

func TestAddOrUpdateProductCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddOrUpdateProductCommand(
		kernel.NewID[order.Order](),
		kernel.NewID[product.Product](),
		1,
	)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddOrUpdateProductCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewID[order.Order]()
	cmd, _ := commands.NewAddOrUpdateProductCommand(orderID, kernel.NewID[product.Product](), 1)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoOrderFound)
	uow.AssertExpectations(t)
}

func TestAddOrUpdateProductCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	anOrder := newTestOrder(t)
	productID := kernel.NewID[product.Product]()
	cmd, _ := commands.NewAddOrUpdateProductCommand(anOrder.ID(), productID, 1)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(nil, errs.NewObjectNotFoundError("product", productID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoProductFound)
	assert.Empty(t, anOrder.LineItems())
	uow.AssertExpectations(t)
}

func TestAddOrUpdateProductCommandHandler_Handle_ConcurrencyConflictOnUpdate(t *testing.T) {
	ctx := t.Context()
	anOrder := newTestOrder(t)
	aProduct := newTestProduct(t, "Apple", 1.5)
	cmd, _ := commands.NewAddOrUpdateProductCommand(anOrder.ID(), aProduct.ID(), 1)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, aProduct.ID()).Return(aProduct, nil).Once(),
		orderRepo.On("Update", mock.Anything, anOrder).
			Return(errs.NewConcurrencyConflictError("order", anOrder.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	uow.AssertNotCalled(t, "Commit")
	uow.AssertExpectations(t)
}

func TestAddOrUpdateProductCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	anOrder := newTestOrder(t)
	aProduct := newTestProduct(t, "Apple", 1.5)
	cmd, _ := commands.NewAddOrUpdateProductCommand(anOrder.ID(), aProduct.ID(), 1)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, aProduct.ID()).Return(aProduct, nil).Once(),
		orderRepo.On("Update", mock.Anything, anOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrUpdateProductCommandHandler(factory, kernel.NewNextIDProvider[order.LineItem]())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestAddOrUpdateProductCommandHandler_Handle_DeterministicLineItemID(t *testing.T) {
	ctx := t.Context()
	anOrder := newTestOrder(t)
	aProduct := newTestProduct(t, "Apple", 1.5)
	fixedID := kernel.NewID[order.LineItem]()
	cmd, _ := commands.NewAddOrUpdateProductCommand(anOrder.ID(), aProduct.ID(), 1)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, anOrder.ID()).Return(anOrder, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, aProduct.ID()).Return(aProduct, nil).Once(),
		orderRepo.On("Update", mock.Anything, anOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	// An identifier is its own provider, which pins the new line item's ID.
	h := commands.NewAddOrUpdateProductCommandHandler(factory, fixedID)
	lineItemID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, lineItemID.IsEqual(fixedID))
}
