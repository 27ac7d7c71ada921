package http

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

// AddOrUpdateProductRequest is the body of PUT /api/v1/orders/:orderID/products.
type AddOrUpdateProductRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SetProductRequest is the body of POST /api/v1/products. The client chooses
// the product identifier, so repeating the request overwrites the same product.
type SetProductRequest struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// SetProductTitleRequest is the body of PUT /api/v1/products/:productID/title.
type SetProductTitleRequest struct {
	Title string `json:"title"`
}

// CreatedResponse carries the identifier of a created or overwritten entity.
type CreatedResponse struct {
	ID string `json:"id"`
}

// LineItemCreatedResponse carries the identifier of the line item an
// add-or-update request ended up touching.
type LineItemCreatedResponse struct {
	LineItemID string `json:"line_item_id"`
}

// OrderResponse represents one order with its line items in insertion order.
type OrderResponse struct {
	ID         string             `json:"id"`
	Version    uint64             `json:"version"`
	CustomerID string             `json:"customer_id"`
	LineItems  []LineItemResponse `json:"line_items"`
}

// LineItemResponse represents one order line item. Price is the unit price
// captured when the product was added to the order.
type LineItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ProductResponse represents one catalog product.
type ProductResponse struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}
