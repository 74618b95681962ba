package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/account"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	removeOrderHandler  commands.RemoveOrderCommandHandler
	grantRoleHandler    commands.GrantRoleCommandHandler
	revokeRoleHandler   commands.RevokeRoleCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	trackOrderHandler       queries.TrackOrderQueryHandler
	getOrderStatsHandler    queries.GetOrderStatsQueryHandler
	listAuditRecordsHandler queries.ListAuditRecordsQueryHandler
	listUsersHandler        queries.ListUsersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	grantRoleHandler commands.GrantRoleCommandHandler,
	revokeRoleHandler commands.RevokeRoleCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
	listAuditRecordsHandler queries.ListAuditRecordsQueryHandler,
	listUsersHandler queries.ListUsersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		advanceOrderHandler:     advanceOrderHandler,
		removeOrderHandler:      removeOrderHandler,
		grantRoleHandler:        grantRoleHandler,
		revokeRoleHandler:       revokeRoleHandler,
		getOrderHandler:         getOrderHandler,
		listOrdersHandler:       listOrdersHandler,
		trackOrderHandler:       trackOrderHandler,
		getOrderStatsHandler:    getOrderStatsHandler,
		listAuditRecordsHandler: listAuditRecordsHandler,
		listUsersHandler:        listUsersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a dropped-off order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.CustomerName, newOrder.Phone, newOrder.Items, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(ports.OrderRecordFromDomain(created)))
}

// ListOrders handles GET /api/v1/orders - lists orders newest first,
// optionally narrowed to one lifecycle status.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	statusFilter := ""
	if params.Status != nil {
		statusFilter = *params.Status
	}

	query, err := queries.NewListOrdersQuery(statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	records, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, len(records))
	for i, record := range records {
		response[i] = orderResponse(record)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/v1/orders/stats - order counts per status.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStats{
		Total:    stats.Total,
		ByStatus: stats.ByStatus,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId string) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(record))
}

// AdvanceOrder handles PATCH /api/v1/orders/{orderId}/status - moves an
// order to a later lifecycle status. The request carries the status the
// terminal last displayed; a stale value fails with 409 instead of
// overwriting a concurrent transition.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId string) error {
	var change servers.StatusChange
	if err := ctx.Bind(&change); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := order.StatusFromString(change.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	observed, err := order.StatusFromString(change.Observed)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, target, observed, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(ports.OrderRecordFromDomain(updated)))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId} - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context, orderId string) error {
	orderID, err := kernel.OrderIDFromString(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrder handles GET /api/v1/track/{code} - the public tracking page.
// A code failing the shape check is a 400, an unmatched code a 404, and a
// storage failure a 500, so a customer retyping a smudged receipt gets a
// different answer than one whose order is gone.
func (s *Server) TrackOrder(ctx echo.Context, code string) error {
	query, err := queries.NewTrackOrderQuery(code)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, publicOrderResponse(record))
}

// ListAuditRecords handles GET /api/v1/audit - the audit trail, newest first.
func (s *Server) ListAuditRecords(ctx echo.Context, params servers.ListAuditRecordsParams) error {
	tableName := ""
	if params.Table != nil {
		tableName = *params.Table
	}
	recordID := ""
	if params.Record != nil {
		recordID = *params.Record
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListAuditRecordsQuery(tableName, recordID, limit)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.listAuditRecordsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.AuditRecord, len(entries))
	for i, entry := range entries {
		response[i] = auditRecordResponse(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListUsers handles GET /api/v1/users - lists users holding roles.
func (s *Server) ListUsers(ctx echo.Context) error {
	users, err := s.listUsersHandler.Handle(ctx.Request().Context(), queries.NewListUsersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.UserRoles, len(users))
	for i, user := range users {
		response[i] = servers.UserRoles{
			UserId:       user.UserID,
			Roles:        user.Roles,
			FirstGranted: user.FirstGranted,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GrantRole handles POST /api/v1/roles - grants a role to a user.
func (s *Server) GrantRole(ctx echo.Context) error {
	var assignment servers.RoleAssignment
	if err := ctx.Bind(&assignment); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	role, err := account.RoleFromString(assignment.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewGrantRoleCommand(assignment.UserId, role, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.grantRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevokeRole handles DELETE /api/v1/roles/{userId}/{role} - revokes a role.
func (s *Server) RevokeRole(ctx echo.Context, userId uuid.UUID, roleName string) error {
	actor := actorID(ctx)
	if actor == nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing authenticated caller",
		})
	}

	role, err := account.RoleFromString(roleName)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRevokeRoleCommand(userId, role, *actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.revokeRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps an application error onto its HTTP status and body.
func writeError(ctx echo.Context, err error) error {
	var fieldErrors errs.FieldErrors
	if errors.As(err, &fieldErrors) {
		fields := map[string]string(fieldErrors)
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Fields:  &fields,
		})
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
		message = err.Error()
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func orderResponse(record ports.OrderRecord) servers.Order {
	return servers.Order{
		OrderId:      record.OrderID,
		CustomerName: record.CustomerName,
		Phone:        record.Phone,
		Items:        record.Items,
		Status:       record.Status,
		StatusLabel:  statusLabel(record.Status),
		Timestamps:   timestampEntries(record.Timestamps),
		CreatedAt:    record.CreatedAt,
	}
}

func publicOrderResponse(record ports.PublicOrderRecord) servers.PublicOrder {
	return servers.PublicOrder{
		OrderId:      record.OrderID,
		CustomerName: record.CustomerName,
		Items:        record.Items,
		Status:       record.Status,
		StatusLabel:  statusLabel(record.Status),
		Timestamps:   timestampEntries(record.Timestamps),
		CreatedAt:    record.CreatedAt,
	}
}

func auditRecordResponse(entry queries.ListAuditRecordsQueryResponse) servers.AuditRecord {
	response := servers.AuditRecord{
		Id:        entry.ID,
		TableName: entry.TableName,
		RecordId:  entry.RecordID,
		Action:    entry.Action,
		UserId:    entry.UserID,
		CreatedAt: entry.CreatedAt,
	}

	if snapshot := decodeSnapshot(entry.OldData); snapshot != nil {
		response.OldData = &snapshot
	}
	if snapshot := decodeSnapshot(entry.NewData); snapshot != nil {
		response.NewData = &snapshot
	}

	return response
}

// decodeSnapshot converts a stored jsonb snapshot into a generic map.
// Snapshots are written by this application, so a failed decode means
// corrupted storage; the entry is still served, just without the snapshot.
func decodeSnapshot(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}

	var snapshot map[string]interface{}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil
	}

	return snapshot
}

func timestampEntries(entries []ports.TimestampEntry) []servers.TimestampEntry {
	response := make([]servers.TimestampEntry, len(entries))
	for i, entry := range entries {
		response[i] = servers.TimestampEntry{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
		}
	}
	return response
}

func statusLabel(wireName string) string {
	status, err := order.StatusFromString(wireName)
	if err != nil {
		return wireName
	}
	return status.Label()
}
