package commands

import (
	"context"
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

// SetProductCommandHandler handles product upserts.
// Creates the product under the caller-supplied identifier when it does not
// exist yet, and overwrites title and price when it does. Orders that already
// hold the product keep the price captured in their line items.
type SetProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductCommandHandler creates a handler for product upsert operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewSetProductCommandHandler(uowFactory ProductUoWFactory) SetProductCommandHandler {
	return SetProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upsert command and returns the product's identifier.
func (h SetProductCommandHandler) Handle(
	ctx context.Context,
	cmd SetProductCommand,
) (product.ID, error) {
	if err := cmd.Validate(); err != nil {
		return product.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return product.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	aProduct, err := productRepo.Get(ctx, cmd.ProductID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// The command's ID doubles as the provider so the product lands
		// under exactly the identifier the caller asked for.
		aProduct, err = product.NewProduct(cmd.ProductID(), cmd.Title(), cmd.Price())
		if err != nil {
			return product.ID{}, err
		}

		if err = productRepo.Add(ctx, aProduct); err != nil {
			return product.ID{}, err
		}
	case err != nil:
		return product.ID{}, err
	default:
		if err = errors.Join(
			aProduct.SetTitle(cmd.Title()),
			aProduct.SetPrice(cmd.Price()),
		); err != nil {
			return product.ID{}, err
		}

		if err = productRepo.Update(ctx, aProduct); err != nil {
			return product.ID{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return product.ID{}, err
	}

	return aProduct.ID(), nil
}
