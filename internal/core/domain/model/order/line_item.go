package order

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the aggregate or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via Order.AddProduct or RestoreLineItem")

	// ErrOrderLineItemIsNotConstructed is returned when an OrderLineItem was not
	// produced by IntoLineItemForProduct or RestoreOrderLineItem.
	ErrOrderLineItemIsNotConstructed = errors.New(
		"OrderLineItem must be created via Order.IntoLineItemForProduct or RestoreOrderLineItem",
	)
)

// LineItemID is the typed identifier for line items.
type LineItemID = kernel.ID[LineItem]

// LineItemVersion is the optimistic-concurrency stamp for line items.
type LineItemVersion = kernel.Version[LineItem]

// LineItemIDProvider supplies line item identifiers.
type LineItemIDProvider = kernel.IDProvider[LineItem]

// LineItem is one product-quantity-price record attached to exactly one
// order. The price is a snapshot captured when the product was added, not a
// live reference to the product's current price. Price and product identity
// are immutable once the line item exists; only the quantity can change.
//
// Line items have no independent lifecycle: they are created as a side effect
// of Order.AddProduct and persist or perish with their order.
type LineItem struct {
	id        LineItemID
	version   LineItemVersion
	productID product.ID
	price     float64
	quantity  int

	isConstructed bool
}

// RestoreLineItem reconstructs a line item from persistence.
// Storage adapters are the only intended caller.
func RestoreLineItem(
	id LineItemID,
	version LineItemVersion,
	productID product.ID,
	price float64,
	quantity int,
) (*LineItem, error) {
	qty, err := NewQuantity(quantity)
	if err != nil {
		return nil, err
	}

	item := &LineItem{
		price:         price,
		quantity:      qty.Value(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setVersion(version),
		item.setProductID(productID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the instance was properly constructed.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's identifier.
func (li *LineItem) ID() LineItemID {
	return li.id
}

// Version returns the stamp the line item was loaded with.
func (li *LineItem) Version() LineItemVersion {
	return li.version
}

// ProductID returns the identifier of the referenced product.
func (li *LineItem) ProductID() product.ID {
	return li.productID
}

// Price returns the unit price captured when the product was added.
func (li *LineItem) Price() float64 {
	return li.price
}

// Quantity returns the current quantity. Always at least 1.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// EntityID implements kernel.Entity.
func (li *LineItem) EntityID() LineItemID {
	return li.id
}

// EntityVersion implements kernel.Entity.
func (li *LineItem) EntityVersion() LineItemVersion {
	return li.version
}

func (li *LineItem) setID(id LineItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setVersion(version LineItemVersion) error {
	if err := version.Validate(); err != nil {
		return err
	}
	li.version = version
	return nil
}

func (li *LineItem) setProductID(productID product.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

// OrderLineItem pairs an order with exactly one of its line items so the item
// can be mutated in isolation, without the caller holding the rest of the
// aggregate. Produced by Order.IntoLineItemForProduct.
type OrderLineItem struct {
	orderID  ID
	lineItem *LineItem

	isConstructed bool
}

// RestoreOrderLineItem pairs a restored line item with its parent order's
// identifier. Storage adapters and read paths are the intended callers.
func RestoreOrderLineItem(orderID ID, lineItem *LineItem) (*OrderLineItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := lineItem.Validate(); err != nil {
		return nil, err
	}

	return &OrderLineItem{
		orderID:       orderID,
		lineItem:      lineItem,
		isConstructed: true,
	}, nil
}

// Validate ensures the instance was properly constructed.
func (ol *OrderLineItem) Validate() error {
	if ol == nil || !ol.isConstructed {
		return ErrOrderLineItemIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the parent order.
func (ol *OrderLineItem) OrderID() ID {
	return ol.orderID
}

// LineItem returns the paired line item.
func (ol *OrderLineItem) LineItem() *LineItem {
	return ol.lineItem
}

// SetQuantity updates the line item's quantity in place.
// The new quantity must be at least 1; otherwise nothing is mutated.
func (ol *OrderLineItem) SetQuantity(quantity int) error {
	qty, err := NewQuantity(quantity)
	if err != nil {
		return err
	}

	ol.lineItem.quantity = qty.Value()
	return nil
}
