package commands

import (
	"context"
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

var (
	ErrNoOrderFound   = errors.New("no order found")
	ErrNoProductFound = errors.New("no product found")
)

// AddOrUpdateProductCommandHandler orchestrates putting a product into an order.
// Loads the order, decides between updating an existing line item and adding a
// new one, and persists the result within a single transaction.
//
// Example:
//
//	handler := NewAddOrUpdateProductCommandHandler(uowFactory, lineItemIDs)
//	cmd, _ := NewAddOrUpdateProductCommand(orderID, productID, 3)
//	lineItemID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("Order does not exist")
//	case errors.Is(err, ErrNoProductFound):
//	    log.Println("Product does not exist")
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    log.Println("Order changed underneath us")
//	case err != nil:
//	    log.Printf("Add or update failed: %v", err)
//	}
type AddOrUpdateProductCommandHandler struct {
	uowFactory  UoWFactory
	lineItemIDs order.LineItemIDProvider
}

// NewAddOrUpdateProductCommandHandler creates a handler for add-or-update operations.
// Requires a UoWFactory because the handler reads products and writes orders in
// one transaction, and an identifier provider for new line items.
func NewAddOrUpdateProductCommandHandler(
	uowFactory UoWFactory,
	lineItemIDs order.LineItemIDProvider,
) AddOrUpdateProductCommandHandler {
	return AddOrUpdateProductCommandHandler{
		uowFactory:  uowFactory,
		lineItemIDs: lineItemIDs,
	}
}

// Handle processes the add-or-update command.
// When the order already contains the product, only the matched line item's
// quantity is replaced and written back. Otherwise the product is loaded, a new
// line item is added at the product's current price, and the whole aggregate is
// written. Returns the identifier of the affected line item.
// Returns ErrNoOrderFound or ErrNoProductFound when a referenced entity is
// missing, and an error wrapping errs.ErrConcurrencyConflict when the order
// was modified concurrently.
func (h AddOrUpdateProductCommandHandler) Handle(
	ctx context.Context,
	cmd AddOrUpdateProductCommand,
) (order.LineItemID, error) {
	if err := cmd.Validate(); err != nil {
		return order.LineItemID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.LineItemID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	anOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.LineItemID{}, ErrNoOrderFound
	}
	if err != nil {
		return order.LineItemID{}, err
	}

	match := anOrder.IntoLineItemForProduct(cmd.ProductID())

	if orderLineItem, ok := match.InOrder(); ok {
		if err = orderLineItem.SetQuantity(cmd.Quantity()); err != nil {
			return order.LineItemID{}, err
		}

		if err = orderRepo.UpdateLineItem(ctx, orderLineItem); err != nil {
			return order.LineItemID{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return order.LineItemID{}, err
		}

		return orderLineItem.LineItem().ID(), nil
	}

	anOrder, _ = match.NotInOrder()

	aProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.LineItemID{}, ErrNoProductFound
	}
	if err != nil {
		return order.LineItemID{}, err
	}

	lineItemID, err := anOrder.AddProduct(h.lineItemIDs, aProduct, cmd.Quantity())
	if err != nil {
		return order.LineItemID{}, err
	}

	if err = orderRepo.Update(ctx, anOrder); err != nil {
		return order.LineItemID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.LineItemID{}, err
	}

	return lineItemID, nil
}
