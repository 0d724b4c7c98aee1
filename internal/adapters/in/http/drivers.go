package http

import (
	"net/http"
	"time"

	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/application/usecases/queries"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req RegisterDriverRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	driverID, err := idOrNew(req.DriverID)
	if err != nil {
		return err
	}
	location, err := kernel.NewLocation(req.Lat, req.Lng)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterDriverCommand(driverID, req.Name, req.MaxCapacity, location, req.ServiceAreas, req.Verified)
	if err != nil {
		return err
	}
	d, err := s.h.RegisterDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newDriverResponse(d))
}

// GetClusteringAdvice handles
// GET /api/v1/drivers/:driver_id/clustering-advice?from=RFC3339&to=RFC3339.
// The window defaults to the next four hours.
func (s *Server) GetClusteringAdvice(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "driver_id")
	if err != nil {
		return err
	}

	from := s.clock()
	if raw := ctx.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'from' param")
		}
	}
	to := from.Add(4 * time.Hour)
	if raw := ctx.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid 'to' param")
		}
	}

	query, err := queries.NewGetClusteringAdviceQuery(driverID, from, to)
	if err != nil {
		return err
	}
	advice, err := s.h.ClusteringAdvice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, advice)
}

// ResetDailyEarnings handles POST /api/v1/drivers/earnings/reset.
func (s *Server) ResetDailyEarnings(ctx echo.Context) error {
	n, err := s.h.ResetDailyEarnings.Handle(ctx.Request().Context(), commands.NewResetDailyEarningsCommand())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ResetEarningsResponse{Drivers: n})
}

// ConfirmPickup handles POST /api/v1/assignments/:assignment_id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	assignmentID, err := pathUUID(ctx, "assignment_id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfirmPickupCommand(assignmentID)
	if err != nil {
		return err
	}

	a, err := s.h.ConfirmPickup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newAssignmentResponse(a, false))
}

// ConfirmDelivery handles POST /api/v1/assignments/:assignment_id/delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	assignmentID, err := pathUUID(ctx, "assignment_id")
	if err != nil {
		return err
	}
	var req ConfirmDeliveryRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewConfirmDeliveryCommand(assignmentID, req.Code)
	if err != nil {
		return err
	}

	a, err := s.h.ConfirmDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newAssignmentResponse(a, false))
}

// CancelDriverAssignment handles
// POST /api/v1/assignments/:assignment_id/cancellation.
func (s *Server) CancelDriverAssignment(ctx echo.Context) error {
	assignmentID, err := pathUUID(ctx, "assignment_id")
	if err != nil {
		return err
	}
	var req CancelAssignmentRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCancelDriverAssignmentCommand(assignmentID, req.Reason)
	if err != nil {
		return err
	}

	a, err := s.h.CancelDriverAssignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newAssignmentResponse(a, false))
}

// RegisterDevice handles POST /api/v1/devices.
func (s *Server) RegisterDevice(ctx echo.Context) error {
	var req RegisterDeviceRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return err
	}

	role := ports.RecipientRole(req.Role)
	if err = s.h.Devices.Register(ctx.Request().Context(), role, userID, req.Token, s.clock()); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
