// Package order provides the Order aggregate root and its line items.
// An order belongs to one customer and owns an ordered-by-insertion
// collection of line items, each referencing a product with a captured price
// and a quantity.
//
// The package includes:
//   - Order: the aggregate root enforcing consistency across its line items
//   - LineItem: a product-quantity-price record owned by exactly one order
//   - OrderLineItem: an order paired with one line item for isolated mutation
//   - LineItemMatch: the outcome of classifying an order against one product
//   - Quantity: a validated quantity value object
//
// Key business rules:
//   - No two line items in the same order reference the same product
//   - Quantities are always at least 1
//   - A line item's price and product are fixed when the product is added
//   - Mutating an aggregate in memory never advances version stamps
//
// The central operation is Order.IntoLineItemForProduct, which classifies an
// order against a product and transfers ownership to exactly one of two
// outcomes (the matching line item for an update, or the unchanged order for
// an insert) so callers never hold a sub-part and its parent at once.
package order
