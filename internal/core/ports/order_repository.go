// Package ports defines the persistence contracts between the domain core
// and storage adapters. These interfaces enable dependency inversion and
// testability: command handlers depend on them, adapters implement them.
//
// Absence on reads is reported as an error wrapping errs.ErrObjectNotFound.
// Every write is guarded by an optimistic version check: if the stored
// version no longer matches the version the aggregate was loaded with, the
// write fails with an error wrapping errs.ErrConcurrencyConflict and nothing
// is persisted. The store never retries on the caller's behalf.
package ports

import (
	"context"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items form one consistency boundary: whole-aggregate
// writes are atomic with respect to readers.
type OrderRepository interface {
	// Get retrieves an order aggregate with all its line items.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// Add persists a new order aggregate and its line items.
	// The order must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, rewriting the
	// order row and all its line items as one atomic unit.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateLineItem persists a single line item update without rewriting the
	// whole aggregate. This is the common path for quantity changes.
	UpdateLineItem(ctx context.Context, orderLineItem *order.OrderLineItem) error

	// GetLineItem retrieves one line item of an order. Read-side convenience
	// used by result confirmation and tests, not part of the write path.
	GetLineItem(ctx context.Context, orderID order.ID, lineItemID order.LineItemID) (*order.OrderLineItem, error)
}
