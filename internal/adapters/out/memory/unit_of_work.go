package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/core/ports"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"
)

var (
	ErrNoActiveTransaction = errors.New("no active transaction")
	ErrObjectAlreadyExists = errors.New("object already exists")
)

// InMemoryUnitOfWorkFactory creates unit of work instances over a shared Store.
type InMemoryUnitOfWorkFactory struct {
	store *Store
}

// NewInMemoryUnitOfWorkFactory creates a factory bound to the given store.
func NewInMemoryUnitOfWorkFactory(store *Store) *InMemoryUnitOfWorkFactory {
	return &InMemoryUnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance with its own staging area.
func (f *InMemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &InMemoryUnitOfWork{store: f.store}
}

// stagedWrite is one deferred mutation. Both phases run under the store's
// write lock at commit: every validate must pass before any apply runs, which
// makes the whole commit take effect atomically or not at all.
type stagedWrite struct {
	validate func() error
	apply    func()
}

// InMemoryUnitOfWork buffers writes until Commit. Reads always observe the
// last committed state; staged writes of this instance are not read back.
type InMemoryUnitOfWork struct {
	store  *Store
	active bool
	staged []stagedWrite
}

// Begin starts the transaction. Calling Begin again on an active instance is a no-op.
func (uow *InMemoryUnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit validates every staged write against the current committed state and,
// only if all guards hold, applies them in order. A failed guard discards the
// whole batch and reports the first violation.
func (uow *InMemoryUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()

	for _, write := range uow.staged {
		if err := write.validate(); err != nil {
			uow.reset()
			return err
		}
	}

	for _, write := range uow.staged {
		write.apply()
	}

	uow.reset()
	return nil
}

// Rollback discards all staged writes.
func (uow *InMemoryUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.reset()
	return nil
}

func (uow *InMemoryUnitOfWork) reset() {
	uow.active = false
	uow.staged = nil
}

func (uow *InMemoryUnitOfWork) stage(write stagedWrite) {
	uow.staged = append(uow.staged, write)
}

// OrderRepository returns an OrderRepository staging into this unit of work.
func (uow *InMemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// ProductRepository returns a ProductRepository staging into this unit of work.
func (uow *InMemoryUnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{uow: uow}
}

// CustomerRepository returns a CustomerRepository staging into this unit of work.
func (uow *InMemoryUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &customerRepository{uow: uow}
}

type orderRepository struct {
	uow *InMemoryUnitOfWork
}

func (r *orderRepository) Get(_ context.Context, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.uow.store.getOrder(id)
}

func (r *orderRepository) GetLineItem(
	_ context.Context,
	orderID order.ID,
	lineItemID order.LineItemID,
) (*order.OrderLineItem, error) {
	if err := errors.Join(orderID.Validate(), lineItemID.Validate()); err != nil {
		return nil, err
	}
	return r.uow.store.getLineItem(orderID, lineItemID)
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	rec := orderToRecord(aggregate)
	store := r.uow.store

	r.uow.stage(stagedWrite{
		validate: func() error {
			if _, exists := store.orders[id]; exists {
				return fmt.Errorf("order %s: %w", id, ErrObjectAlreadyExists)
			}
			return nil
		},
		apply: func() {
			store.orders[id] = rec
		},
	})
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	loadedVersion := aggregate.Version().UInt64()
	rec := orderToRecord(aggregate)
	rec.version = loadedVersion + 1
	store := r.uow.store

	r.uow.stage(stagedWrite{
		validate: func() error {
			cur, exists := store.orders[id]
			if !exists {
				return errs.NewObjectNotFoundError("order", id.String())
			}
			if cur.version != loadedVersion {
				return errs.NewConcurrencyConflictError("order", id.String())
			}
			return nil
		},
		apply: func() {
			store.orders[id] = rec
		},
	})
	return nil
}

func (r *orderRepository) UpdateLineItem(_ context.Context, orderLineItem *order.OrderLineItem) error {
	if err := orderLineItem.Validate(); err != nil {
		return err
	}

	orderID := orderLineItem.OrderID()
	li := orderLineItem.LineItem()
	lineItemID := li.ID()
	loadedVersion := li.Version().UInt64()
	updated := lineItemRecord{
		id:        lineItemID,
		version:   loadedVersion + 1,
		productID: li.ProductID(),
		price:     li.Price(),
		quantity:  li.Quantity(),
	}
	store := r.uow.store

	find := func() (orderRecord, int, bool) {
		rec, exists := store.orders[orderID]
		if !exists {
			return orderRecord{}, 0, false
		}
		for i, liRec := range rec.lineItems {
			if liRec.id.IsEqual(lineItemID) {
				return rec, i, true
			}
		}
		return rec, -1, true
	}

	r.uow.stage(stagedWrite{
		validate: func() error {
			rec, idx, orderExists := find()
			if !orderExists {
				return errs.NewObjectNotFoundError("order", orderID.String())
			}
			if idx < 0 {
				return errs.NewObjectNotFoundError("line item", lineItemID.String())
			}
			if rec.lineItems[idx].version != loadedVersion {
				return errs.NewConcurrencyConflictError("line item", lineItemID.String())
			}
			return nil
		},
		apply: func() {
			rec, idx, orderExists := find()
			if !orderExists || idx < 0 {
				return
			}
			lineItems := slices.Clone(rec.lineItems)
			lineItems[idx] = updated
			rec.lineItems = lineItems
			store.orders[orderID] = rec
		},
	})
	return nil
}

type productRepository struct {
	uow *InMemoryUnitOfWork
}

func (r *productRepository) Get(_ context.Context, id product.ID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.uow.store.getProduct(id)
}

func (r *productRepository) Add(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	id := p.ID()
	rec := productRecord{
		version: p.Version().UInt64(),
		title:   p.Title(),
		price:   p.Price(),
	}
	store := r.uow.store

	r.uow.stage(stagedWrite{
		validate: func() error {
			if _, exists := store.products[id]; exists {
				return fmt.Errorf("product %s: %w", id, ErrObjectAlreadyExists)
			}
			return nil
		},
		apply: func() {
			store.products[id] = rec
		},
	})
	return nil
}

func (r *productRepository) Update(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	id := p.ID()
	loadedVersion := p.Version().UInt64()
	rec := productRecord{
		version: loadedVersion + 1,
		title:   p.Title(),
		price:   p.Price(),
	}
	store := r.uow.store

	r.uow.stage(stagedWrite{
		validate: func() error {
			cur, exists := store.products[id]
			if !exists {
				return errs.NewObjectNotFoundError("product", id.String())
			}
			if cur.version != loadedVersion {
				return errs.NewConcurrencyConflictError("product", id.String())
			}
			return nil
		},
		apply: func() {
			store.products[id] = rec
		},
	})
	return nil
}

type customerRepository struct {
	uow *InMemoryUnitOfWork
}

func (r *customerRepository) Get(_ context.Context, id customer.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.uow.store.getCustomer(id)
}

func (r *customerRepository) Add(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	id := c.ID()
	rec := customerRecord{version: c.Version().UInt64()}
	store := r.uow.store

	r.uow.stage(stagedWrite{
		validate: func() error {
			if _, exists := store.customers[id]; exists {
				return fmt.Errorf("customer %s: %w", id, ErrObjectAlreadyExists)
			}
			return nil
		},
		apply: func() {
			store.customers[id] = rec
		},
	})
	return nil
}
