package http

import (
	"log/slog"
	"net/http"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handlers are the use cases the server delegates to.
type Handlers struct {
	CreateOrder  commands.CreateOrderCommandHandler
	UpdateOrder  commands.UpdateOrderCommandHandler
	DeleteOrder  commands.DeleteOrderCommandHandler
	CatalogWrite commands.CatalogEntryCommandHandler

	GetOrder     queries.GetOrderQueryHandler
	ListOrders   queries.ListOrdersQueryHandler
	GetDashboard queries.GetDashboardQueryHandler
	CatalogRead  queries.CatalogEntriesQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	auth   *Authenticator
	logger *slog.Logger
	now    func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, auth *Authenticator, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		auth:   auth,
		logger: logger.With("component", "http"),
		now:    time.Now,
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return s.problem(ctx, err)
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId}. Any authenticated user may
// read any order.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	if _, err := actorFrom(ctx); err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.problem(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.problem(ctx, err)
	}
	detail, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	header, lines := fromSubmission(body)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actor, header, lines)
	if err != nil {
		return s.problem(ctx, err)
	}
	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderSaved{
		Id:            id.Bytes(),
		Notifications: drainNotifications(ctx),
	})
}

// UpdateOrder handles PUT /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderID servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.problem(ctx, err)
	}

	var body servers.UpdateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	header, lines := fromSubmission(body)

	cmd, err := commands.NewUpdateOrderCommand(id, actor, header, lines, body.ExpectedVersion)
	if err != nil {
		return s.problem(ctx, err)
	}
	if _, err = s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderSaved{
		Id:            orderID,
		Notifications: drainNotifications(ctx),
	})
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return s.problem(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id, actor)
	if err != nil {
		return s.problem(ctx, err)
	}
	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OperationResult{Notifications: drainNotifications(ctx)})
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDashboardQuery(actor, s.now())
	if err != nil {
		return s.problem(ctx, err)
	}
	dash, err := s.h.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDashboard(dash))
}
