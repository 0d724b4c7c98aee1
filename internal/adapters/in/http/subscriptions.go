package http

import (
	"net/http"
	"time"

	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/application/usecases/queries"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterChef handles POST /api/v1/chefs.
func (s *Server) RegisterChef(ctx echo.Context) error {
	var req RegisterChefRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	chefID, err := idOrNew(req.ChefID)
	if err != nil {
		return err
	}
	kitchen, err := req.Kitchen.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterChefCommand(chefID, req.Name, req.MaxDailyCapacity, kitchen)
	if err != nil {
		return err
	}
	c, err := s.h.RegisterChef.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newChefResponse(c))
}

// CreateSubscription handles POST /api/v1/subscriptions.
func (s *Server) CreateSubscription(ctx echo.Context) error {
	var req CreateSubscriptionRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	subscriptionID, err := idOrNew(req.SubscriptionID)
	if err != nil {
		return err
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return err
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid startDate")
	}

	cmd, err := commands.NewCreateSubscriptionCommand(subscriptionID, customerID, start, req.DurationWeeks)
	if err != nil {
		return err
	}
	sub, err := s.h.CreateSubscription.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newSubscriptionResponse(sub))
}

// AssignChef handles POST /api/v1/subscriptions/:subscription_id/chef.
func (s *Server) AssignChef(ctx echo.Context) error {
	subscriptionID, err := pathUUID(ctx, "subscription_id")
	if err != nil {
		return err
	}
	var req AssignChefRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}
	chefID, err := kernel.UUIDFromString(req.ChefID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignChefCommand(chefID, subscriptionID)
	if err != nil {
		return err
	}
	result, err := s.h.AssignChef.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, AssignChefResponse{
		SubscriptionID: result.SubscriptionID.String(),
		ChefID:         result.ChefID.String(),
		UpdatedOrders:  result.UpdatedOrders,
	})
}

// GetSubscriptionTimeline handles
// GET /api/v1/subscriptions/:subscription_id/timeline.
func (s *Server) GetSubscriptionTimeline(ctx echo.Context) error {
	subscriptionID, err := pathUUID(ctx, "subscription_id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetSubscriptionTimelineQuery(subscriptionID)
	if err != nil {
		return err
	}

	resp, err := s.h.SubscriptionTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, resp)
}

// MarkMealReady handles POST /api/v1/subscriptions/:subscription_id/meals/ready.
func (s *Server) MarkMealReady(ctx echo.Context) error {
	return s.markMeal(ctx, commands.NewMarkMealReadyCommand)
}

// MarkMealDelivered handles
// POST /api/v1/subscriptions/:subscription_id/meals/delivered.
func (s *Server) MarkMealDelivered(ctx echo.Context) error {
	return s.markMeal(ctx, commands.NewMarkMealDeliveredCommand)
}

func (s *Server) markMeal(
	ctx echo.Context,
	newCommand func(kernel.UUID, kernel.MealSlot) (commands.MarkMealCommand, error),
) error {
	subscriptionID, slot, err := subscriptionSlot(ctx)
	if err != nil {
		return err
	}
	cmd, err := newCommand(subscriptionID, slot)
	if err != nil {
		return err
	}

	d, err := s.h.MarkMeal.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, map[string]string{
		"subscriptionId": d.SubscriptionID().String(),
		"status":         d.Status().String(),
	})
}

// CreateSubscriptionDayDriverAssignment handles
// POST /api/v1/subscriptions/:subscription_id/driver-assignment.
func (s *Server) CreateSubscriptionDayDriverAssignment(ctx echo.Context) error {
	subscriptionID, slot, err := subscriptionSlot(ctx)
	if err != nil {
		return err
	}
	target, err := assignment.SubscriptionDayTarget(subscriptionID, slot)
	if err != nil {
		return err
	}
	return s.createDriverAssignment(ctx, target)
}

func subscriptionSlot(ctx echo.Context) (kernel.UUID, kernel.MealSlot, error) {
	subscriptionID, err := pathUUID(ctx, "subscription_id")
	if err != nil {
		return kernel.UUID{}, kernel.MealSlot{}, err
	}
	var req SlotRequest
	if err = bind(ctx, &req); err != nil {
		return kernel.UUID{}, kernel.MealSlot{}, err
	}
	slot, err := req.toDomain()
	if err != nil {
		return kernel.UUID{}, kernel.MealSlot{}, err
	}
	return subscriptionID, slot, nil
}
