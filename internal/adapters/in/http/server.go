// Package http is the inbound REST adapter. It exposes the order lifecycle,
// the catalog and the staff accounts over echo, authenticates requests with
// JWT bearer tokens and scopes routes by role.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// Server holds the use case handlers behind the REST surface.
type Server struct {
	createOrder     commands.CreateOrderCommandHandler
	startPreparing  commands.StartPreparingCommandHandler
	markReady       commands.MarkReadyCommandHandler
	deliverOrder    commands.DeliverOrderCommandHandler
	deleteOrder     commands.DeleteOrderCommandHandler
	updateOrder     commands.UpdateOrderCommandHandler
	updateOrderItem commands.UpdateOrderItemCommandHandler

	listOrders   queries.ListOrdersQueryHandler
	getOrder     queries.GetOrderQueryHandler
	kitchenQueue queries.KitchenQueueQueryHandler
	cashierBoard queries.CashierBoardQueryHandler
	waiterOrders queries.WaiterOrdersQueryHandler

	userRepo ports.UserRepository
	catalog  ports.ProductCatalog

	jwtSecret []byte
	logger    *slog.Logger
}

// ServerDeps bundles everything the server needs.
type ServerDeps struct {
	CreateOrder     commands.CreateOrderCommandHandler
	StartPreparing  commands.StartPreparingCommandHandler
	MarkReady       commands.MarkReadyCommandHandler
	DeliverOrder    commands.DeliverOrderCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler
	UpdateOrder     commands.UpdateOrderCommandHandler
	UpdateOrderItem commands.UpdateOrderItemCommandHandler

	ListOrders   queries.ListOrdersQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	KitchenQueue queries.KitchenQueueQueryHandler
	CashierBoard queries.CashierBoardQueryHandler
	WaiterOrders queries.WaiterOrdersQueryHandler

	UserRepo ports.UserRepository
	Catalog  ports.ProductCatalog

	JWTSecret []byte
	Logger    *slog.Logger
}

// NewServer creates the REST server.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		createOrder:     deps.CreateOrder,
		startPreparing:  deps.StartPreparing,
		markReady:       deps.MarkReady,
		deliverOrder:    deps.DeliverOrder,
		deleteOrder:     deps.DeleteOrder,
		updateOrder:     deps.UpdateOrder,
		updateOrderItem: deps.UpdateOrderItem,

		listOrders:   deps.ListOrders,
		getOrder:     deps.GetOrder,
		kitchenQueue: deps.KitchenQueue,
		cashierBoard: deps.CashierBoard,
		waiterOrders: deps.WaiterOrders,

		userRepo: deps.UserRepo,
		catalog:  deps.Catalog,

		jwtSecret: deps.JWTSecret,
		logger:    deps.Logger.With("component", "http"),
	}
}

// RegisterRoutes mounts all routes under /api/v1 and installs the request
// validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/auth/signup", s.Signup)
	v1.POST("/auth/login", s.Login)

	authed := v1.Group("", s.Authenticate)

	admin := authed.Group("", s.RequireRole(roleAdministrator))
	admin.GET("/users", s.ListUsers)
	admin.DELETE("/users/:id", s.DeleteUser)
	admin.POST("/products", s.CreateProduct)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.DeleteProduct)
	admin.POST("/categories", s.CreateCategory)
	admin.DELETE("/categories/:id", s.DeleteCategory)

	authed.GET("/products", s.ListProducts)
	authed.GET("/categories", s.ListCategories)

	authed.POST("/orders", s.CreateOrder, s.RequireRole(roleWaiter, roleAdministrator))
	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PUT("/orders/:id", s.UpdateOrder, s.RequireRole(roleAdministrator))
	authed.DELETE("/orders/:id", s.DeleteOrder, s.RequireRole(roleAdministrator))
	authed.PUT("/order-items/:id", s.UpdateOrderItem, s.RequireRole(roleCook, roleAdministrator))

	authed.POST("/orders/:id/start-preparing", s.StartPreparing, s.RequireRole(roleCook))
	authed.POST("/orders/:id/mark-ready", s.MarkReady, s.RequireRole(roleCook))
	authed.POST("/orders/:id/deliver", s.DeliverOrder, s.RequireRole(roleCashier))

	authed.GET("/kitchen/queue", s.KitchenQueue, s.RequireRole(roleCook, roleAdministrator))
	authed.GET("/cashier/board", s.CashierBoard, s.RequireRole(roleCashier, roleAdministrator))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses a numeric path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if id <= 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}
