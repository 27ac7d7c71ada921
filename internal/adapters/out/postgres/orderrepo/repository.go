package orderrepo

import (
	"context"
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// Every write carries a version guard: the row is matched on both id and the
// version the aggregate was loaded with, and the stored version is advanced
// by one when the guard holds.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uuid.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Update rewrites an existing order aggregate.
// The order row is written under the version guard, then all line item rows
// are replaced with the aggregate's current ones. Returns an error wrapping
// errs.ErrConcurrencyConflict when the stored version moved since the load.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loadedVersion := aggregate.Version().UInt64()
	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Updates(map[string]any{
			"version":     loadedVersion + 1,
			"customer_id": dto.CustomerID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyStaleWrite(ctx, dto.ID)
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.LineItems) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.LineItems).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// UpdateLineItem writes a single line item under its own version guard.
// This is the quantity-change path; the rest of the aggregate is untouched.
func (r *GormOrderRepository) UpdateLineItem(ctx context.Context, orderLineItem *order.OrderLineItem) error {
	if err := orderLineItem.Validate(); err != nil {
		return err
	}

	li := orderLineItem.LineItem()
	orderID := orderLineItem.OrderID().UUID()
	loadedVersion := li.Version().UInt64()

	result := r.db.WithContext(ctx).Model(&LineItemDTO{}).
		Where("id = ? AND order_id = ? AND version = ?", li.ID().UUID(), orderID, loadedVersion).
		Updates(map[string]any{
			"version":  loadedVersion + 1,
			"price":    li.Price(),
			"quantity": li.Quantity(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var probe LineItemDTO
		err := r.db.WithContext(ctx).
			First(&probe, "id = ? AND order_id = ?", li.ID().UUID(), orderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("line item", li.ID().String())
		}
		if err != nil {
			return err
		}
		return errs.NewConcurrencyConflictError("line item", li.ID().String())
	}

	r.tracker.TrackAggregate(orderID, orderLineItem)
	return nil
}

// Get retrieves an order aggregate with its line items in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_line_items.pos ASC")
		}).
		First(&dto, "id = ?", id.UUID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLineItem retrieves one line item of an order.
func (r *GormOrderRepository) GetLineItem(
	ctx context.Context,
	orderID order.ID,
	lineItemID order.LineItemID,
) (*order.OrderLineItem, error) {
	if err := errors.Join(orderID.Validate(), lineItemID.Validate()); err != nil {
		return nil, err
	}

	var dto LineItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND order_id = ?", lineItemID.UUID(), orderID.UUID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line item", lineItemID.String())
		}
		return nil, err
	}

	li, err := lineItemToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderLineItem(orderID, li)
}

// classifyStaleWrite distinguishes a missing order from a concurrent change
// after a guarded update matched no rows.
func (r *GormOrderRepository) classifyStaleWrite(ctx context.Context, id uuid.UUID) error {
	var probe OrderDTO
	err := r.db.WithContext(ctx).First(&probe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return err
	}
	return errs.NewConcurrencyConflictError("order", id.String())
}
