package order

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrProductAlreadyInOrder is returned when AddProduct is called for a
	// product the order already references.
	ErrProductAlreadyInOrder = errors.New("product is already in order")
)

// ID is the typed identifier for orders.
type ID = kernel.ID[Order]

// Version is the optimistic-concurrency stamp for orders.
type Version = kernel.Version[Order]

// IDProvider supplies order identifiers.
type IDProvider = kernel.IDProvider[Order]

// Order is the aggregate root for a customer's order and its line items.
// The aggregate exclusively owns its line items; no line item is addressable
// or mutable independent of its parent order.
//
// Order enforces these invariants:
//   - Must have a valid identifier, version stamp, and owning customer
//   - No two line items reference the same product
//   - Every line item quantity is at least 1
//   - Can only be created through NewOrder or RestoreOrder
//
// An Order instance in memory is a transient projection of store state used
// for the lifetime of one command; mutating it never advances version stamps,
// only a successful store write does.
type Order struct {
	id         ID
	version    Version
	customerID customer.ID
	lineItems  []*LineItem

	isConstructed bool
}

// NewOrder creates a new order for the given customer with no line items.
// The identifier comes from the supplied provider; a provider failure is the
// only error path.
func NewOrder(idProvider IDProvider, owner *customer.Customer) (*Order, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	id, err := idProvider.NextID()
	if err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		version:       kernel.InitialVersion[Order](),
		customerID:    owner.ID(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order and its line items from persistence.
// All fields are validated, including the no-duplicate-product invariant
// across the restored line items. Storage adapters are the only intended
// caller.
func RestoreOrder(id ID, version Version, customerID customer.ID, lineItems []*LineItem) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setVersion(version),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() ID {
	return o.id
}

// Version returns the stamp the order was loaded with.
func (o *Order) Version() Version {
	return o.version
}

// CustomerID returns the identifier of the customer that owns the order.
func (o *Order) CustomerID() customer.ID {
	return o.customerID
}

// LineItems returns the order's line items in insertion order.
// The slice is a copy; the items themselves are owned by the aggregate.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// ContainsProduct reports whether the order already has a line item for the
// given product. Linear scan; line item counts are small and no index is kept.
func (o *Order) ContainsProduct(productID product.ID) bool {
	for _, item := range o.lineItems {
		if item.productID.IsEqual(productID) {
			return true
		}
	}
	return false
}

// AddProduct appends a new line item for the given product, capturing the
// product's current price. The quantity must be at least 1 and the product
// must not already be in the order; callers are expected to branch on
// IntoLineItemForProduct first, but the invariant is re-checked here.
//
// Returns the identifier of the new line item.
func (o *Order) AddProduct(idProvider LineItemIDProvider, p *product.Product, quantity int) (LineItemID, error) {
	if err := p.Validate(); err != nil {
		return LineItemID{}, err
	}

	if o.ContainsProduct(p.ID()) {
		return LineItemID{}, ErrProductAlreadyInOrder
	}

	qty, err := NewQuantity(quantity)
	if err != nil {
		return LineItemID{}, err
	}

	id, err := idProvider.NextID()
	if err != nil {
		return LineItemID{}, err
	}

	o.lineItems = append(o.lineItems, &LineItem{
		id:            id,
		version:       kernel.InitialVersion[LineItem](),
		productID:     p.ID(),
		price:         p.Price(),
		quantity:      qty.Value(),
		isConstructed: true,
	})

	return id, nil
}

// IntoLineItemForProduct classifies the order against one product and
// transfers ownership to exactly one of two outcomes:
//
//   - the product is already in the order: the match carries the order paired
//     with that one line item, ready for isolated mutation;
//   - the product is absent: the match carries the whole order unchanged,
//     ready for AddProduct.
//
// The classification itself is read-only and idempotent, but it consumes the
// receiver: after calling it, use only the value the match hands back, never
// the original Order. This keeps "look up a sub-part" and "mutate the parent"
// from aliasing each other.
func (o *Order) IntoLineItemForProduct(productID product.ID) LineItemMatch {
	for _, item := range o.lineItems {
		if item.productID.IsEqual(productID) {
			return LineItemMatch{
				orderLineItem: &OrderLineItem{
					orderID:       o.id,
					lineItem:      item,
					isConstructed: true,
				},
			}
		}
	}
	return LineItemMatch{order: o}
}

// EntityID implements kernel.Entity.
func (o *Order) EntityID() ID {
	return o.id
}

// EntityVersion implements kernel.Entity.
func (o *Order) EntityVersion() Version {
	return o.version
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVersion(version Version) error {
	if err := version.Validate(); err != nil {
		return err
	}
	o.version = version
	return nil
}

func (o *Order) setCustomerID(customerID customer.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	seen := make(map[product.ID]struct{}, len(lineItems))
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.productID]; ok {
			return ErrProductAlreadyInOrder
		}
		seen[item.productID] = struct{}{}
	}

	o.lineItems = make([]*LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

// LineItemMatch is the outcome of IntoLineItemForProduct. Exactly one of its
// two accessors reports true.
type LineItemMatch struct {
	orderLineItem *OrderLineItem
	order         *Order
}

// InOrder returns the order paired with the matching line item when the
// product was already present.
func (m LineItemMatch) InOrder() (*OrderLineItem, bool) {
	return m.orderLineItem, m.orderLineItem != nil
}

// NotInOrder returns the whole order unchanged when the product was absent.
func (m LineItemMatch) NotInOrder() (*Order, bool) {
	return m.order, m.order != nil
}
