package queries

import (
	"errors"

	"github.com/vkotsiuba99/rust-example-app/internal/pkg/guard"
)

var ErrCountOpenOrdersQueryIsNotConstructed = errors.New(
	"CountOpenOrdersQuery must be created via NewCountOpenOrdersQuery constructor",
)

// CountOpenOrdersQuery counts the orders that hold at least one line item.
// Used by the periodic report job.
type CountOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOpenOrdersQuery creates a query to count open orders.
func NewCountOpenOrdersQuery() CountOpenOrdersQuery {
	return CountOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountOpenOrdersQueryIsNotConstructed if validation fails.
func (q CountOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOpenOrdersQueryIsNotConstructed)
}
