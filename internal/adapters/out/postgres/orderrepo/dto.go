// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column carries the optimistic concurrency stamp; every write is
// guarded by it.
type OrderDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Version    uint64        `gorm:"not null"`
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;index"`
	LineItems  []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents the database structure for persisting order line items.
// The unique index on (order_id, product_id) backs the no-duplicate-product
// invariant at the storage level, and pos preserves insertion order.
type LineItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_product"`
	Version   uint64    `gorm:"not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_product"`
	Price     float64   `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
	Pos       int       `gorm:"not null"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "order_line_items".
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line item positions follow the aggregate's enumeration order.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().UUID()
	lineItems := make([]LineItemDTO, 0, len(aggregate.LineItems()))

	for pos, li := range aggregate.LineItems() {
		lineItems = append(lineItems, lineItemFromDomain(orderID, li, pos))
	}

	return OrderDTO{
		ID:         orderID,
		Version:    aggregate.Version().UInt64(),
		CustomerID: aggregate.CustomerID().UUID(),
		LineItems:  lineItems,
	}
}

func lineItemFromDomain(orderID uuid.UUID, li *order.LineItem, pos int) LineItemDTO {
	return LineItemDTO{
		ID:        li.ID().UUID(),
		OrderID:   orderID,
		Version:   li.Version().UInt64(),
		ProductID: li.ProductID().UUID(),
		Price:     li.Price(),
		Quantity:  li.Quantity(),
		Pos:       pos,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromUUID[order.Order](dto.ID)
	if err != nil {
		return nil, err
	}

	version, err := kernel.RestoreVersion[order.Order](dto.Version)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.IDFromUUID[customer.Customer](dto.CustomerID)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, liDto := range dto.LineItems {
		li, liErr := lineItemToDomain(liDto)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	return order.RestoreOrder(id, version, customerID, lineItems)
}

// lineItemToDomain converts a line item DTO to a domain entity.
func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.IDFromUUID[order.LineItem](dto.ID)
	if err != nil {
		return nil, err
	}

	version, err := kernel.RestoreVersion[order.LineItem](dto.Version)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.IDFromUUID[product.Product](dto.ProductID)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, version, productID, dto.Price, dto.Quantity)
}
