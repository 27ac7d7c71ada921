// Package memory provides an in-process implementation of the persistence
// ports. It mirrors the postgres adapter's semantics without a database:
// optimistic version guards on every write, and unit-of-work commits that
// become visible to readers atomically or not at all. Useful for tests and
// for running the application without infrastructure.
package memory

import (
	"sync"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

// Records hold plain copies of aggregate state so store contents are never
// aliased by domain objects handed to callers.
type (
	lineItemRecord struct {
		id        order.LineItemID
		version   uint64
		productID product.ID
		price     float64
		quantity  int
	}

	orderRecord struct {
		version    uint64
		customerID customer.ID
		lineItems  []lineItemRecord
	}

	productRecord struct {
		version uint64
		title   string
		price   float64
	}

	customerRecord struct {
		version uint64
	}
)

// Store is the shared committed state behind in-memory unit of work instances.
// All access goes through the mutex; readers see only committed data.
type Store struct {
	mu        sync.RWMutex
	orders    map[order.ID]orderRecord
	products  map[product.ID]productRecord
	customers map[customer.ID]customerRecord
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		orders:    make(map[order.ID]orderRecord),
		products:  make(map[product.ID]productRecord),
		customers: make(map[customer.ID]customerRecord),
	}
}

func orderToRecord(aggregate *order.Order) orderRecord {
	lineItems := make([]lineItemRecord, 0, len(aggregate.LineItems()))
	for _, li := range aggregate.LineItems() {
		lineItems = append(lineItems, lineItemRecord{
			id:        li.ID(),
			version:   li.Version().UInt64(),
			productID: li.ProductID(),
			price:     li.Price(),
			quantity:  li.Quantity(),
		})
	}

	return orderRecord{
		version:    aggregate.Version().UInt64(),
		customerID: aggregate.CustomerID(),
		lineItems:  lineItems,
	}
}

func recordToOrder(id order.ID, rec orderRecord) (*order.Order, error) {
	version, err := kernel.RestoreVersion[order.Order](rec.version)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(rec.lineItems))
	for _, liRec := range rec.lineItems {
		li, liErr := recordToLineItem(liRec)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	return order.RestoreOrder(id, version, rec.customerID, lineItems)
}

func recordToLineItem(rec lineItemRecord) (*order.LineItem, error) {
	version, err := kernel.RestoreVersion[order.LineItem](rec.version)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(rec.id, version, rec.productID, rec.price, rec.quantity)
}

func recordToProduct(id product.ID, rec productRecord) (*product.Product, error) {
	version, err := kernel.RestoreVersion[product.Product](rec.version)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, version, rec.title, rec.price)
}

func recordToCustomer(id customer.ID, rec customerRecord) (*customer.Customer, error) {
	version, err := kernel.RestoreVersion[customer.Customer](rec.version)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, version)
}

func (s *Store) getOrder(id order.ID) (*order.Order, error) {
	s.mu.RLock()
	rec, ok := s.orders[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return recordToOrder(id, rec)
}

func (s *Store) getLineItem(orderID order.ID, lineItemID order.LineItemID) (*order.OrderLineItem, error) {
	s.mu.RLock()
	rec, ok := s.orders[orderID]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	for _, liRec := range rec.lineItems {
		if liRec.id.IsEqual(lineItemID) {
			li, err := recordToLineItem(liRec)
			if err != nil {
				return nil, err
			}
			return order.RestoreOrderLineItem(orderID, li)
		}
	}

	return nil, errs.NewObjectNotFoundError("line item", lineItemID.String())
}

func (s *Store) getProduct(id product.ID) (*product.Product, error) {
	s.mu.RLock()
	rec, ok := s.products[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	return recordToProduct(id, rec)
}

func (s *Store) getCustomer(id customer.ID) (*customer.Customer, error) {
	s.mu.RLock()
	rec, ok := s.customers[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return recordToCustomer(id, rec)
}
