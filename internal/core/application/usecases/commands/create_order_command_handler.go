package commands

import (
	"context"
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

var ErrNoCustomerFound = errors.New("no customer found")

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the owning customer exists before opening an empty order for it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.NewNextIDProvider[order.Order]())
//	cmd, _ := NewCreateOrderCommand(customerID)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoCustomerFound) {
//	    return fmt.Errorf("customer %s does not exist", cmd.CustomerID())
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	ids        order.IDProvider
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because the handler reads customers and writes orders
// in one transaction, and an identifier provider for new orders.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	ids order.IDProvider,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the order creation command.
// Loads the owning customer, creates an empty order for it, and persists the
// order. Returns ErrNoCustomerFound when the customer does not exist.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return order.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.ID{}, ErrNoCustomerFound
	}
	if err != nil {
		return order.ID{}, err
	}

	newOrder, err := order.NewOrder(h.ids, owner)
	if err != nil {
		return order.ID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return order.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.ID{}, err
	}

	return newOrder.ID(), nil
}
