package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOpenOrdersQueryHandler counts stored orders with at least one line item.
type CountOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOpenOrdersQueryHandler creates a handler for open-order counts.
func NewCountOpenOrdersQueryHandler(db *gorm.DB) CountOpenOrdersQueryHandler {
	return CountOpenOrdersQueryHandler{db: db}
}

// Handle executes the query. An order counts as open when it has line items.
func (h CountOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountOpenOrdersQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64

	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders o
		WHERE EXISTS (
			SELECT 1
			FROM order_line_items li
			WHERE li.order_id = o.id
		)
	`).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
