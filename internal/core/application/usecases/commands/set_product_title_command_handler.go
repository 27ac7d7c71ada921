package commands

import (
	"context"
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

// SetProductTitleCommandHandler handles renaming of existing products.
// Loads the product, applies the new title, and writes it back under the
// optimistic version check.
type SetProductTitleCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductTitleCommandHandler creates a handler for product rename operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewSetProductTitleCommandHandler(uowFactory ProductUoWFactory) SetProductTitleCommandHandler {
	return SetProductTitleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rename command.
// Returns ErrNoProductFound when the product does not exist.
func (h SetProductTitleCommandHandler) Handle(ctx context.Context, cmd SetProductTitleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	aProduct, err := productRepo.Get(ctx, cmd.ProductID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoProductFound
	}
	if err != nil {
		return err
	}

	if err = aProduct.SetTitle(cmd.Title()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aProduct); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
