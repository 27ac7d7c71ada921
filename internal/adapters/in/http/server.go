package http

import (
	"errors"
	"net/http"

	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/commands"
	"github.com/vkotsiuba99/rust-example-app/internal/core/application/usecases/queries"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/customer"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/kernel"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/order"
	"github.com/vkotsiuba99/rust-example-app/internal/core/domain/model/product"
	"github.com/vkotsiuba99/rust-example-app/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order management use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler     commands.CreateCustomerCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	addOrUpdateProductHandler commands.AddOrUpdateProductCommandHandler
	setProductHandler         commands.SetProductCommandHandler
	setProductTitleHandler    commands.SetProductTitleCommandHandler

	// Query handlers
	getOrderHandler    queries.GetOrderQueryHandler
	getProductHandler  queries.GetProductQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrUpdateProductHandler commands.AddOrUpdateProductCommandHandler,
	setProductHandler commands.SetProductCommandHandler,
	setProductTitleHandler commands.SetProductTitleCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:     createCustomerHandler,
		createOrderHandler:        createOrderHandler,
		addOrUpdateProductHandler: addOrUpdateProductHandler,
		setProductHandler:         setProductHandler,
		setProductTitleHandler:    setProductTitleHandler,
		getOrderHandler:           getOrderHandler,
		getProductHandler:         getProductHandler,
		getProductsHandler:        getProductsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/customers", s.CreateCustomer)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderID/products", s.AddOrUpdateProduct)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/products", s.SetProduct)
	api.PUT("/products/:productID/title", s.SetProductTitle)
	api.GET("/products/:productID", s.GetProduct)
	api.GET("/products", s.GetProducts)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	cmd := commands.NewCreateCustomerCommand()

	customerID, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to create customer")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customerID.String()})
}

// CreateOrder handles POST /api/v1/orders - creates an empty order for a customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.ParseID[customer.Customer](req.CustomerID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(customerID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// AddOrUpdateProduct handles PUT /api/v1/orders/:orderID/products - adds a
// product to the order or changes the quantity of its existing line item.
func (s *Server) AddOrUpdateProduct(ctx echo.Context) error {
	orderID, err := kernel.ParseID[order.Order](ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, err, "Invalid order id: "+err.Error())
	}

	var req AddOrUpdateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.ParseID[product.Product](req.ProductID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewAddOrUpdateProductCommand(orderID, productID, req.Quantity)
	if err != nil {
		return errorResponse(ctx, err, "Invalid line item data: "+err.Error())
	}

	lineItemID, err := s.addOrUpdateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to add product to order")
	}

	return ctx.JSON(http.StatusOK, LineItemCreatedResponse{LineItemID: lineItemID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order with its
// line items in insertion order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseID[order.Order](ctx.Param("orderID"))
	if err != nil {
		return errorResponse(ctx, err, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve order")
	}

	response := OrderResponse{
		ID:         result.ID.String(),
		Version:    result.Version,
		CustomerID: result.CustomerID.String(),
		LineItems:  make([]LineItemResponse, len(result.LineItems)),
	}
	for i, item := range result.LineItems {
		response.LineItems[i] = LineItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetProduct handles POST /api/v1/products - creates a catalog product or
// overwrites the title and price of an existing one.
func (s *Server) SetProduct(ctx echo.Context) error {
	var req SetProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.ParseID[product.Product](req.ID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewSetProductCommand(productID, req.Title, req.Price)
	if err != nil {
		return errorResponse(ctx, err, "Invalid product data: "+err.Error())
	}

	id, err := s.setProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to set product")
	}

	return ctx.JSON(http.StatusOK, CreatedResponse{ID: id.String()})
}

// SetProductTitle handles PUT /api/v1/products/:productID/title - renames an
// existing catalog product.
func (s *Server) SetProductTitle(ctx echo.Context) error {
	productID, err := kernel.ParseID[product.Product](ctx.Param("productID"))
	if err != nil {
		return errorResponse(ctx, err, "Invalid product id: "+err.Error())
	}

	var req SetProductTitleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetProductTitleCommand(productID, req.Title)
	if err != nil {
		return errorResponse(ctx, err, "Invalid product data: "+err.Error())
	}

	if err = s.setProductTitleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to set product title")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProduct handles GET /api/v1/products/:productID - retrieves one catalog product.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.ParseID[product.Product](ctx.Param("productID"))
	if err != nil {
		return errorResponse(ctx, err, "Invalid product id: "+err.Error())
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid product id: "+err.Error())
	}

	result, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve product")
	}

	return ctx.JSON(http.StatusOK, ProductResponse{
		ID:    result.ID.String(),
		Title: result.Title,
		Price: result.Price,
	})
}

// GetProducts handles GET /api/v1/products - retrieves the product catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve products")
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			ID:    p.ID.String(),
			Title: p.Title,
			Price: p.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func errorResponse(ctx echo.Context, err error, message string) error {
	code := statusFromError(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

// statusFromError maps application errors onto HTTP status codes. Errors
// outside the known taxonomy are reported as internal failures.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoOrderFound),
		errors.Is(err, commands.ErrNoProductFound),
		errors.Is(err, commands.ErrNoCustomerFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.Is(err, commands.ErrTitleIsRequired),
		errors.Is(err, commands.ErrPriceIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
