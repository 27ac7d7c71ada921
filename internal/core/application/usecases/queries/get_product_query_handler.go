package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler reads one catalog product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query.
// Returns an error wrapping errs.ErrObjectNotFound when the product does not exist.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	var resp GetProductQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			title,
			price
		FROM products
		WHERE id = ?
	`, query.ProductID().UUID()).Row()

	if err := row.Scan(&resp.Title, &resp.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetProductQueryResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
		}
		return GetProductQueryResponse{}, err
	}

	resp.ID = query.ProductID()

	return resp, nil
}
