// Package http is the inbound HTTP adapter: a JSON API over echo that
// maps requests to commands and queries and application errors to
// status codes. No business rule lives here.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordertrack/api"
	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerProducerHandler  commands.RegisterProducerCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createProducerHandler    commands.CreateProducerCommandHandler
	deleteProducerHandler    commands.DeleteProducerCommandHandler
	bootstrapAdminHandler    commands.BootstrapAdminCommandHandler

	// Query handlers
	listOrdersHandler    queries.ListOrdersQueryHandler
	listProducersHandler queries.ListProducersQueryHandler

	resolver *access.Resolver
	policy   *access.Policy
	notifier ports.ChangeNotifier
	logger   *slog.Logger
}

// NewServer creates the HTTP server over the application's command and
// query handlers.
func NewServer(
	registerProducerHandler commands.RegisterProducerCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createProducerHandler commands.CreateProducerCommandHandler,
	deleteProducerHandler commands.DeleteProducerCommandHandler,
	bootstrapAdminHandler commands.BootstrapAdminCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listProducersHandler queries.ListProducersQueryHandler,
	resolver *access.Resolver,
	policy *access.Policy,
	notifier ports.ChangeNotifier,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerProducerHandler:  registerProducerHandler,
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createProducerHandler:    createProducerHandler,
		deleteProducerHandler:    deleteProducerHandler,
		bootstrapAdminHandler:    bootstrapAdminHandler,
		listOrdersHandler:        listOrdersHandler,
		listProducersHandler:     listProducersHandler,
		resolver:                 resolver,
		policy:                   policy,
		notifier:                 notifier,
		logger:                   logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires all routes onto the echo instance. The optional
// validate middleware enforces the OpenAPI contract on the /api/v1
// group.
func (s *Server) RegisterRoutes(e *echo.Echo, validate echo.MiddlewareFunc) {
	e.GET("/health", s.Health)
	e.GET("/openapi.yml", s.OpenAPISpec)

	v1 := e.Group("/api/v1")
	if validate != nil {
		v1.Use(validate)
	}

	v1.POST("/register", s.Register)
	v1.POST("/admin/bootstrap", s.BootstrapAdmin)

	authed := v1.Group("", s.authRequired)
	authed.GET("/orders", s.ListOrders)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders/stream", s.StreamOrders)
	authed.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	authed.GET("/users", s.ListProducers)
	authed.POST("/users", s.CreateProducer)
	authed.DELETE("/users/:id", s.DeleteProducer)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// OpenAPISpec handles GET /openapi.yml - serves the API contract.
func (s *Server) OpenAPISpec(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", api.OpenAPISpec)
}

// Register handles POST /api/v1/register - producer self-registration.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterProducerCommand(req.FullName, req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, "Invalid registration data: "+err.Error())
	}

	if handleErr := s.registerProducerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListOrders handles GET /api/v1/orders - the role-scoped order list.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(actorFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDTOs(orders))
}

// CreateOrder handles POST /api/v1/orders - a producer submits an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor := actorFrom(ctx)
	if err := s.policy.Allow(actor.Role, access.ResourceOrders, access.ActionCreate); err != nil {
		return s.respondError(ctx, err)
	}

	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details, err := order.NewDetails(req.Details)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor.ID, req.Description, details)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req StatusChange
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromLabel(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actorFrom(ctx), orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListProducers handles GET /api/v1/users - admin lists producer accounts.
func (s *Server) ListProducers(ctx echo.Context) error {
	query, err := queries.NewListProducersQuery(actorFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	producers, err := s.listProducersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProducerDTOs(producers))
}

// CreateProducer handles POST /api/v1/users - admin creates a producer.
func (s *Server) CreateProducer(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProducerCommand(actorFrom(ctx), req.FullName, req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, "Invalid producer data: "+err.Error())
	}

	if handleErr := s.createProducerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// DeleteProducer handles DELETE /api/v1/users/:id.
func (s *Server) DeleteProducer(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewDeleteProducerCommand(actorFrom(ctx), userID)
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if handleErr := s.deleteProducerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BootstrapAdmin handles POST /api/v1/admin/bootstrap. A missing server
// secret is a deployment fault (500); a wrong secret from the caller is
// a rejection (403).
func (s *Server) BootstrapAdmin(ctx echo.Context) error {
	var req BootstrapRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewBootstrapAdminCommand(req.FullName, req.Email, req.Password, req.SecretKey)
	if err != nil {
		return badRequest(ctx, "Invalid bootstrap data: "+err.Error())
	}

	adminID, err := s.bootstrapAdminHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, BootstrapResponse{
		Success: true,
		Message: "Administrator account created",
		UserID:  adminID.String(),
	})
}

// respondError maps application errors onto status codes. Anything
// unrecognized is a 500 with a generic message; the detail goes to the
// log, not the client.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrAuthenticationRequired):
		return respond(ctx, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, errs.ErrAuthorizationDenied),
		errors.Is(err, access.ErrWrongDashboard):
		return respond(ctx, http.StatusForbidden, "Operation not allowed for this role")
	case errors.Is(err, errs.ErrBootstrapRejected):
		return respond(ctx, http.StatusForbidden, "Bootstrap rejected")
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, "Not found")
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return respond(ctx, http.StatusBadRequest, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Request().URL.Path, "error", err)
		return respond(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
