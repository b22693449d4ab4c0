package http

import (
	"errors"
	"net/http"
	"strconv"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/assignment"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order lifecycle and the dashboard queries over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	assignOrderHandler         commands.AssignOrderCommandHandler
	acceptOrderHandler         commands.AcceptOrderCommandHandler
	rejectOrderHandler         commands.RejectOrderCommandHandler
	completeOrderHandler       commands.CompleteOrderCommandHandler
	reportTransitStatusHandler commands.ReportTransitStatusCommandHandler

	// Query handlers
	getBacklogHandler         queries.GetBacklogQueryHandler
	getAgentQueueHandler      queries.GetAgentQueueQueryHandler
	getAgentDeliveriesHandler queries.GetAgentDeliveriesQueryHandler
	getCustomerHistoryHandler queries.GetCustomerHistoryQueryHandler
	getDeliveryKPIHandler     queries.GetDeliveryKPIQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	reportTransitStatusHandler commands.ReportTransitStatusCommandHandler,
	getBacklogHandler queries.GetBacklogQueryHandler,
	getAgentQueueHandler queries.GetAgentQueueQueryHandler,
	getAgentDeliveriesHandler queries.GetAgentDeliveriesQueryHandler,
	getCustomerHistoryHandler queries.GetCustomerHistoryQueryHandler,
	getDeliveryKPIHandler queries.GetDeliveryKPIQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		assignOrderHandler:         assignOrderHandler,
		acceptOrderHandler:         acceptOrderHandler,
		rejectOrderHandler:         rejectOrderHandler,
		completeOrderHandler:       completeOrderHandler,
		reportTransitStatusHandler: reportTransitStatusHandler,
		getBacklogHandler:          getBacklogHandler,
		getAgentQueueHandler:       getAgentQueueHandler,
		getAgentDeliveriesHandler:  getAgentDeliveriesHandler,
		getCustomerHistoryHandler:  getCustomerHistoryHandler,
		getDeliveryKPIHandler:      getDeliveryKPIHandler,
	}
}

// RegisterRoutes mounts all endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/backlog", s.GetBacklog)
	api.GET("/customers/:name/orders", s.GetCustomerHistory)

	api.POST("/assignments", s.AssignOrder)
	api.POST("/agents/:agentId/orders/:orderId/accept", s.AcceptOrder)
	api.POST("/agents/:agentId/orders/:orderId/reject", s.RejectOrder)
	api.POST("/agents/:agentId/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/agents/:agentId/deliveries/:deliveryId/status", s.ReportTransitStatus)

	api.GET("/agents/:agentId/queue", s.GetAgentQueue)
	api.GET("/agents/:agentId/deliveries", s.GetAgentDeliveries)
	api.GET("/kpi", s.GetDeliveryKPI)
}

// CreateOrder handles POST /api/v1/orders - records a new customer order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.CustomerName, request.Items, request.Address, request.TotalPrice,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.Int64()})
}

// AssignOrder handles POST /api/v1/assignments - assigns an order to an agent.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var request AssignOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	agentID, err := kernel.NewAgentID(request.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, agentID, request.ScheduledDeliveryTime)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	deliveryID, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AssignOrderResponse{DeliveryID: deliveryID.String()})
}

// AcceptOrder handles POST /api/v1/agents/:agentId/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, agentID, err := orderAndAgentParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid accept data: "+err.Error())
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/agents/:agentId/orders/:orderId/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, agentID, err := orderAndAgentParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid reject data: "+err.Error())
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/agents/:agentId/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, agentID, err := orderAndAgentParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid complete data: "+err.Error())
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportTransitStatus handles POST /api/v1/agents/:agentId/deliveries/:deliveryId/status.
// The delivery is addressed by its record id, not by the order id.
func (s *Server) ReportTransitStatus(ctx echo.Context) error {
	agentID, err := agentIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var request ReportTransitStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := assignment.TransitStatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid transit status: "+request.Status)
	}

	cmd, err := commands.NewReportTransitStatusCommand(deliveryID, agentID, target)
	if err != nil {
		return badRequest(ctx, "Invalid status report: "+err.Error())
	}

	if err := s.reportTransitStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBacklog handles GET /api/v1/orders/backlog - orders with no assignment yet.
func (s *Server) GetBacklog(ctx echo.Context) error {
	query := queries.NewGetBacklogQuery()

	backlog, err := s.getBacklogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BacklogOrder, len(backlog))
	for i, row := range backlog {
		response[i] = BacklogOrder{
			OrderID:      row.OrderID,
			CustomerName: row.CustomerName,
			Items:        row.Items,
			Address:      row.Address,
			TotalPrice:   row.TotalPrice,
			CreatedAt:    row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentQueue handles GET /api/v1/agents/:agentId/queue - assignments the
// agent has not accepted or rejected yet.
func (s *Server) GetAgentQueue(ctx echo.Context) error {
	agentID, err := agentIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	query, err := queries.NewGetAgentQueueQuery(agentID)
	if err != nil {
		return badRequest(ctx, "Invalid queue request: "+err.Error())
	}

	queue, err := s.getAgentQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]QueuedAssignment, len(queue))
	for i, row := range queue {
		response[i] = QueuedAssignment{
			OrderID:      row.OrderID,
			CustomerName: row.CustomerName,
			Note:         row.Note,
			Status:       row.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentDeliveries handles GET /api/v1/agents/:agentId/deliveries - all
// delivery tracking records of the agent, terminal ones included.
func (s *Server) GetAgentDeliveries(ctx echo.Context) error {
	agentID, err := agentIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid agent id")
	}

	query, err := queries.NewGetAgentDeliveriesQuery(agentID)
	if err != nil {
		return badRequest(ctx, "Invalid deliveries request: "+err.Error())
	}

	deliveries, err := s.getAgentDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AgentDelivery, len(deliveries))
	for i, row := range deliveries {
		response[i] = AgentDelivery{
			OrderID:               row.OrderID,
			Status:                row.Status,
			PickupTime:            row.PickupTime,
			ScheduledDeliveryTime: row.ScheduledDeliveryTime,
			DeliveryTime:          row.DeliveryTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerHistory handles GET /api/v1/customers/:name/orders - the
// customer's orders, newest first.
func (s *Server) GetCustomerHistory(ctx echo.Context) error {
	query, err := queries.NewGetCustomerHistoryQuery(ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, "Invalid customer name")
	}

	history, err := s.getCustomerHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CustomerOrder, len(history))
	for i, row := range history {
		response[i] = CustomerOrder{
			OrderID:          row.OrderID,
			Items:            row.Items,
			Address:          row.Address,
			TotalPrice:       row.TotalPrice,
			CreatedAt:        row.CreatedAt,
			AssignmentStatus: row.AssignmentStatus,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryKPI handles GET /api/v1/kpi - delivery performance aggregates.
// An optional agentId query parameter scopes the KPI to one agent.
func (s *Server) GetDeliveryKPI(ctx echo.Context) error {
	var query queries.GetDeliveryKPIQuery

	if raw := ctx.QueryParam("agentId"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(ctx, "Invalid agent id")
		}

		agentID, err := kernel.NewAgentID(value)
		if err != nil {
			return badRequest(ctx, "Invalid agent id")
		}

		query, err = queries.NewGetDeliveryKPIQueryForAgent(agentID)
		if err != nil {
			return badRequest(ctx, "Invalid KPI request: "+err.Error())
		}
	} else {
		query = queries.NewGetDeliveryKPIQuery()
	}

	kpi, err := s.getDeliveryKPIHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	monthly := make([]MonthlyDeliveryKPI, len(kpi.Monthly))
	for i, bucket := range kpi.Monthly {
		monthly[i] = MonthlyDeliveryKPI{
			Month: bucket.Month,
			DeliveryKPI: DeliveryKPI{
				Deliveries:         bucket.Deliveries,
				AvgDeliveryMinutes: bucket.AvgDeliveryMinutes,
				OnTimeRatePercent:  bucket.OnTimeRate * 100,
			},
		}
	}

	return ctx.JSON(http.StatusOK, DeliveryKPIResponse{
		Overall: DeliveryKPI{
			Deliveries:         kpi.Overall.Deliveries,
			AvgDeliveryMinutes: kpi.Overall.AvgDeliveryMinutes,
			OnTimeRatePercent:  kpi.Overall.OnTimeRate * 100,
		},
		Monthly: monthly,
	})
}

func orderAndAgentParams(ctx echo.Context) (kernel.OrderID, kernel.AgentID, error) {
	agentID, err := agentIDParam(ctx)
	if err != nil {
		return 0, 0, errors.New("invalid agent id")
	}

	value, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		return 0, 0, errors.New("invalid order id")
	}

	orderID, err := kernel.NewOrderID(value)
	if err != nil {
		return 0, 0, errors.New("invalid order id")
	}

	return orderID, agentID, nil
}

func agentIDParam(ctx echo.Context) (kernel.AgentID, error) {
	value, err := strconv.ParseInt(ctx.Param("agentId"), 10, 64)
	if err != nil {
		return 0, err
	}

	return kernel.NewAgentID(value)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain and storage errors onto HTTP statuses.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, assignment.ErrAlreadyAssigned),
		errors.Is(err, assignment.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, assignment.ErrNotAssignedAgent):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
