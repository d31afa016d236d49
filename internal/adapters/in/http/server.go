package http

import (
	"context"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// MessageHealthy is the body of a successful health check.
const MessageHealthy = "API is working"

// Use case contracts consumed by the HTTP adapter.
type (
	CreateCenterHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCenterCommand) (kernel.ID, error)
	}
	UpdateCenterHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCenterCommand) error
	}
	DeleteCenterHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteCenterCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error)
	}
	AssignOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.AssignOrdersCommand) ([]services.Assignment, error)
	}
	GetAllCentersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCentersQuery) ([]queries.GetAllCentersQueryResponse, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.GetAllOrdersQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCenter  CreateCenterHandler
	UpdateCenter  UpdateCenterHandler
	DeleteCenter  DeleteCenterHandler
	CreateOrder   CreateOrderHandler
	AssignOrders  AssignOrdersHandler
	GetAllCenters GetAllCentersHandler
	GetAllOrders  GetAllOrdersHandler
}

// Server handles HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, MessageHealthy)
}

// CreateCenter handles POST /api/centers - registers a new logistics center.
func (s *Server) CreateCenter(ctx echo.Context) error {
	var req CenterRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, messageInvalidBody))
	}

	coordinates, err := req.Coordinates.toKernel()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCenterCommand(
		valueOf(req.Name),
		valueOf(req.Capacity),
		valueOf(req.Status),
		valueOf(req.CurrentLoad),
		valueOf(req.MaxCapacity),
		coordinates,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if _, err = s.handlers.CreateCenter.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusCreated, commands.MessageCenterCreated)
}

// GetCenters handles GET /api/centers - lists every center.
func (s *Server) GetCenters(ctx echo.Context) error {
	centers, err := s.handlers.GetAllCenters.Handle(ctx.Request().Context(), queries.NewGetAllCentersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Center, len(centers))
	for i, c := range centers {
		response[i] = Center{
			ID:          c.ID,
			Name:        c.Name,
			Capacity:    c.Capacity,
			Status:      c.Status,
			CurrentLoad: c.CurrentLoad,
			MaxCapacity: c.MaxCapacity,
			Coordinates: coordinatesOf(c.Coordinates.Latitude(), c.Coordinates.Longitude()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCenter handles PATCH /api/centers/{id} - applies a partial update.
func (s *Server) UpdateCenter(ctx echo.Context, id int64) error {
	var req CenterRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, messageInvalidBody))
	}

	centerID, err := kernel.NewID(id)
	if err != nil {
		return respondError(ctx, err)
	}

	changes := commands.CenterChanges{
		Name:        req.Name,
		Capacity:    req.Capacity,
		Status:      req.Status,
		CurrentLoad: req.CurrentLoad,
		MaxCapacity: req.MaxCapacity,
	}
	if req.Coordinates != nil {
		changes.Latitude = req.Coordinates.Latitude
		changes.Longitude = req.Coordinates.Longitude
	}

	cmd, err := commands.NewUpdateCenterCommand(centerID, changes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateCenter.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, commands.MessageCenterUpdated)
}

// DeleteCenter handles DELETE /api/centers/{id}.
func (s *Server) DeleteCenter(ctx echo.Context, id int64) error {
	centerID, err := kernel.NewID(id)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteCenterCommand(centerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteCenter.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, commands.MessageCenterDeleted)
}

// CreateOrder handles POST /api/orders - registers a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, messageInvalidBody))
	}

	coordinates, err := req.Coordinates.toKernel()
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(valueOf(req.CustomerID), valueOf(req.Size), coordinates)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		OrderID:     id.Int64(),
		CustomerID:  cmd.CustomerID(),
		Size:        cmd.Size().String(),
		Coordinates: coordinatesOf(coordinates.Latitude(), coordinates.Longitude()),
		Status:      order.Pending.String(),
		Message:     commands.MessageOrderCreated,
	})
}

// GetOrders handles GET /api/orders - lists every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:             o.ID,
			CustomerID:     o.CustomerID,
			Size:           o.Size,
			Status:         o.Status,
			AssignedCenter: o.AssignedCenter,
			Coordinates:    coordinatesOf(o.Coordinates.Latitude(), o.Coordinates.Longitude()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrders handles POST /api/orders/order-assignations - runs a batch assignment.
func (s *Server) AssignOrders(ctx echo.Context) error {
	cmd := commands.NewAssignOrdersCommand(commands.TriggerHTTP)

	assignments, err := s.handlers.AssignOrders.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	processed := make([]OrderAssignation, len(assignments))
	for i, a := range assignments {
		processed[i] = OrderAssignation{
			Distance:                a.Distance,
			OrderID:                 a.OrderID.Int64(),
			AssignedLogisticsCenter: a.CenterName,
			Status:                  a.Status.String(),
			Message:                 a.Message,
		}
	}

	return ctx.JSON(http.StatusOK, AssignationResponse{ProcessedOrders: processed})
}

func respondError(ctx echo.Context, err error) error {
	status, body := toError(err)
	if status == http.StatusInternalServerError {
		ctx.Logger().Errorf("request failed: %v", err)
	}
	return ctx.JSON(status, body)
}

// toKernel returns the zero Coordinates when any part is missing, which the
// commands reject as empty coordinates.
func (c *Coordinates) toKernel() (kernel.Coordinates, error) {
	if c == nil || c.Latitude == nil || c.Longitude == nil {
		return kernel.Coordinates{}, nil
	}
	return kernel.NewCoordinates(*c.Latitude, *c.Longitude)
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
