package http

import (
	"net/http"

	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	orderID, err := idOrNew(req.OrderID)
	if err != nil {
		return err
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return err
	}
	address, err := req.Address.toDomain()
	if err != nil {
		return err
	}
	chefID, err := kernel.OptionalUUIDFromString(req.ChefID)
	if err != nil {
		return err
	}
	subscriptionID, err := kernel.OptionalUUIDFromString(req.SubscriptionID)
	if err != nil {
		return err
	}
	var slot *kernel.MealSlot
	if subscriptionID != nil {
		parsed, slotErr := SlotRequest{Date: req.Date, MealTime: req.MealTime}.toDomain()
		if slotErr != nil {
			return slotErr
		}
		slot = &parsed
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, address, chefID, subscriptionID, slot)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newOrderResponse(o))
}

// TransitionOrder handles POST /api/v1/orders/:order_id/transitions.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return err
	}
	var req TransitionOrderRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, req.Reason)
	if err != nil {
		return err
	}

	o, err := s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newOrderResponse(o))
}

// CreateOrderDriverAssignment handles
// POST /api/v1/orders/:order_id/driver-assignment.
func (s *Server) CreateOrderDriverAssignment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return err
	}
	target, err := assignment.OrderTarget(orderID)
	if err != nil {
		return err
	}
	return s.createDriverAssignment(ctx, target)
}

func (s *Server) createDriverAssignment(ctx echo.Context, target assignment.Target) error {
	cmd, err := commands.NewCreateDriverAssignmentCommand(target)
	if err != nil {
		return err
	}

	a, err := s.h.CreateDriverAssignment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newAssignmentResponse(a, true))
}
