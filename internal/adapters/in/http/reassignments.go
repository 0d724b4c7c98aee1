package http

import (
	"net/http"
	"strconv"

	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/application/usecases/queries"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/reassignment"

	"github.com/labstack/echo/v4"
)

const defaultQueueLimit = 50

// RequestReassignment handles
// POST /api/v1/subscriptions/:subscription_id/reassignments.
func (s *Server) RequestReassignment(ctx echo.Context) error {
	subscriptionID, err := pathUUID(ctx, "subscription_id")
	if err != nil {
		return err
	}
	var req RequestReassignmentRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}

	priority := reassignment.Normal
	if req.Priority != "" {
		if priority, err = reassignment.ParsePriority(req.Priority); err != nil {
			return err
		}
	}
	requestedBy, err := kernel.UUIDFromString(req.RequestedBy)
	if err != nil {
		return err
	}
	requestedChef, err := kernel.OptionalUUIDFromString(req.RequestedChefID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestReassignmentCommand(subscriptionID, req.Reason, priority, requestedBy, requestedChef)
	if err != nil {
		return err
	}
	id, err := s.h.RequestReassignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.String()})
}

// ResolveReassignment handles POST /api/v1/reassignments/:request_id/resolution.
func (s *Server) ResolveReassignment(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "request_id")
	if err != nil {
		return err
	}
	var req ResolveReassignmentRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	newChef, err := kernel.OptionalUUIDFromString(req.NewChefID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewResolveReassignmentCommand(requestID, req.Decision == "approve", newChef, req.Note)
	if err != nil {
		return err
	}
	r, err := s.h.ResolveReassignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newReassignmentResponse(r))
}

// AutoApproveReassignments handles POST /api/v1/reassignments/auto-approve and
// runs the same sweep as the scheduled job.
func (s *Server) AutoApproveReassignments(ctx echo.Context) error {
	result, err := s.h.AutoApprove.Handle(ctx.Request().Context(), commands.NewAutoApproveReassignmentsCommand())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, AutoApproveResponse{
		Approved: result.Approved,
		Skipped:  result.Skipped,
		Failed:   result.Failed,
	})
}

// GetReassignmentQueue handles GET /api/v1/reassignments?limit=N.
func (s *Server) GetReassignmentQueue(ctx echo.Context) error {
	limit := defaultQueueLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'limit' param")
		}
		limit = parsed
	}

	query, err := queries.NewGetReassignmentQueueQuery(limit)
	if err != nil {
		return err
	}
	queue, err := s.h.ReassignmentQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, queue)
}
