package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its line items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Line items come back in insertion order.
// Returns an error wrapping errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var customerID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			version,
			customer_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().UUID()).Row()

	if err := row.Scan(&resp.Version, &customerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ID = query.OrderID()

	ownerID, err := kernel.IDFromUUID[customer.Customer](customerID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID = ownerID

	lineItems, err := h.loadLineItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.LineItems = lineItems

	return resp, nil
}

func (h GetOrderQueryHandler) loadLineItems(
	ctx context.Context,
	orderID order.ID,
) ([]GetOrderLineItemResponse, error) {
	lineItems := make([]GetOrderLineItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			price,
			quantity
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY pos
	`, orderID.UUID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetOrderLineItemResponse
		var id, productID uuid.UUID

		if err = rows.Scan(&id, &productID, &itemResp.Price, &itemResp.Quantity); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.IDFromUUID[order.LineItem](id)
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID

		prodID, idErr := kernel.IDFromUUID[product.Product](productID)
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ProductID = prodID

		lineItems = append(lineItems, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lineItems, nil
}
