package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the fulfillment engine.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	requestTransitionHandler    commands.RequestTransitionCommandHandler
	setItemFoundHandler         commands.SetItemFoundCommandHandler
	attachDeliveryProofHandler  commands.AttachDeliveryProofCommandHandler
	confirmGroupDeliveryHandler commands.ConfirmGroupDeliveryCommandHandler

	// Query handlers
	getActiveBatchesHandler queries.GetActiveBatchesQueryHandler
	getBatchSummaryHandler  queries.GetBatchSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	setItemFoundHandler commands.SetItemFoundCommandHandler,
	attachDeliveryProofHandler commands.AttachDeliveryProofCommandHandler,
	confirmGroupDeliveryHandler commands.ConfirmGroupDeliveryCommandHandler,
	getActiveBatchesHandler queries.GetActiveBatchesQueryHandler,
	getBatchSummaryHandler queries.GetBatchSummaryQueryHandler,
) *Server {
	return &Server{
		requestTransitionHandler:    requestTransitionHandler,
		setItemFoundHandler:         setItemFoundHandler,
		attachDeliveryProofHandler:  attachDeliveryProofHandler,
		confirmGroupDeliveryHandler: confirmGroupDeliveryHandler,
		getActiveBatchesHandler:     getActiveBatchesHandler,
		getBatchSummaryHandler:      getBatchSummaryHandler,
	}
}

// RegisterRoutes attaches all fulfillment endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:orderId/transition", s.RequestTransition)
	api.POST("/orders/:orderId/items/:itemId/found", s.SetItemFound)
	api.POST("/orders/:orderId/proof", s.AttachDeliveryProof)
	api.POST("/workers/:workerId/group-delivery", s.ConfirmGroupDelivery)
	api.GET("/orders/active", s.GetActiveBatches)
	api.GET("/orders/:orderId/summary", s.GetBatchSummary)
}

// RequestTransition handles POST /api/v1/orders/:orderId/transition.
// Moves an order to the requested lifecycle status.
func (s *Server) RequestTransition(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var request TransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid target status: " + err.Error(),
		})
	}

	cmd, err := commands.NewRequestTransitionCommand(orderID, target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition data: " + err.Error(),
		})
	}

	if handleErr := s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetItemFound handles POST /api/v1/orders/:orderId/items/:itemId/found.
// Records the shopping outcome for one order item.
func (s *Server) SetItemFound(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item id: " + err.Error(),
		})
	}

	var request ItemFoundRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetItemFoundCommand(orderID, itemID, request.Found, request.FoundQuantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid item data: " + err.Error(),
		})
	}

	if handleErr := s.setItemFoundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachDeliveryProof handles POST /api/v1/orders/:orderId/proof.
// Stores the proof-of-delivery reference for an order.
func (s *Server) AttachDeliveryProof(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var request ProofRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAttachDeliveryProofCommand(orderID, request.ProofRef)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid proof data: " + err.Error(),
		})
	}

	if handleErr := s.attachDeliveryProofHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmGroupDelivery handles POST /api/v1/workers/:workerId/group-delivery.
// Atomically delivers every order the worker carries for one customer group.
func (s *Server) ConfirmGroupDelivery(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("workerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid worker id: " + err.Error(),
		})
	}

	var request GroupDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewConfirmGroupDeliveryCommand(workerID, request.CustomerKey)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid group delivery data: " + err.Error(),
		})
	}

	if handleErr := s.confirmGroupDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrGroupIsEmpty) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No undelivered orders for this customer group",
			})
		}
		return writeCommandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveBatches handles GET /api/v1/orders/active.
// Returns every undelivered order with its urgency classification.
func (s *Server) GetActiveBatches(ctx echo.Context) error {
	query := queries.NewGetActiveBatchesQuery()

	rows, err := s.getActiveBatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve active orders",
		})
	}

	response := make([]ActiveBatchRow, len(rows))
	for i, row := range rows {
		response[i] = ActiveBatchRow{
			ID:                row.ID.String(),
			PublicOrderNumber: row.PublicOrderNumber,
			ShopID:            row.ShopID,
			CustomerKey:       row.CustomerKey,
			WorkerID:          row.WorkerID.String(),
			Status:            row.Status.String(),
			Urgency:           row.Urgency.String(),
			OverdueBy:         row.OverdueBy,
			UnitsRequested:    row.UnitsRequested,
			UnitsFound:        row.UnitsFound,
		}
		if row.DeliveryDeadline != nil {
			deadline := row.DeliveryDeadline.Format(time.RFC3339)
			response[i].DeliveryDeadline = &deadline
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBatchSummary handles GET /api/v1/orders/:orderId/summary.
// Prices the batch the order belongs to, one summary per shop.
func (s *Server) GetBatchSummary(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewGetBatchSummaryQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid summary request: " + err.Error(),
		})
	}

	summary, err := s.getBatchSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to price batch",
		})
	}

	response := BatchSummary{Shops: make([]ShopSummary, len(summary.Shops))}
	for i, shop := range summary.Shops {
		response.Shops[i] = ShopSummary{
			ShopID:   shop.ShopID,
			Subtotal: shop.Subtotal,
			VAT:      shop.VAT,
			Discount: shop.Discount,
			Refund:   shop.Refund,
			Total:    shop.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// writeCommandError maps domain failures onto HTTP status codes: missing
// aggregates map to 404, lifecycle rule violations to 409, everything else
// to 500.
func writeCommandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrIncompleteShopping),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrLedgerClosed),
		errors.Is(err, batch.ErrGroupNotReady):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
