package http

import (
	"context"
	"net/http"
	"time"

	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/application/usecases/queries"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/chef"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/core/domain/model/reassignment"
	"mealflow/internal/core/domain/model/subscription"
	"mealflow/internal/core/ports"

	_ "mealflow/internal/adapters/in/http/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handler is the shape shared by every command and query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// DeviceRegistry stores push tokens for recipients.
type DeviceRegistry interface {
	Register(ctx context.Context, role ports.RecipientRole, userID kernel.UUID, token string, now time.Time) error
}

// Handlers groups the use cases the API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder            Handler[commands.CreateOrderCommand, *order.Order]
	TransitionOrder        Handler[commands.TransitionOrderCommand, *order.Order]
	RegisterChef           Handler[commands.RegisterChefCommand, *chef.Chef]
	AssignChef             Handler[commands.AssignChefCommand, commands.AssignmentResult]
	CreateSubscription     Handler[commands.CreateSubscriptionCommand, *subscription.Subscription]
	MarkMeal               Handler[commands.MarkMealCommand, *delegation.Delegation]
	RequestReassignment    Handler[commands.RequestReassignmentCommand, kernel.UUID]
	ResolveReassignment    Handler[commands.ResolveReassignmentCommand, *reassignment.Request]
	AutoApprove            Handler[commands.AutoApproveReassignmentsCommand, commands.AutoApproveResult]
	RegisterDriver         Handler[commands.RegisterDriverCommand, *driver.Driver]
	ResetDailyEarnings     Handler[commands.ResetDailyEarningsCommand, int64]
	CreateDriverAssignment Handler[commands.CreateDriverAssignmentCommand, *assignment.Assignment]
	ConfirmPickup          Handler[commands.ConfirmPickupCommand, *assignment.Assignment]
	ConfirmDelivery        Handler[commands.ConfirmDeliveryCommand, *assignment.Assignment]
	CancelDriverAssignment Handler[commands.CancelDriverAssignmentCommand, *assignment.Assignment]

	// Query handlers
	ClusteringAdvice     Handler[queries.GetClusteringAdviceQuery, []queries.ClusterAdvice]
	SubscriptionTimeline Handler[queries.GetSubscriptionTimelineQuery, queries.GetSubscriptionTimelineQueryResponse]
	ReassignmentQueue    Handler[queries.GetReassignmentQueueQuery, []queries.GetReassignmentQueueQueryResponse]

	Devices DeviceRegistry
}

// Server maps HTTP requests onto application use cases.
type Server struct {
	h     Handlers
	clock func() time.Time
}

func NewServer(h Handlers, clock func() time.Time) *Server {
	return &Server{h: h, clock: clock}
}

// NewEcho builds the echo instance with validation, error mapping and access
// logging installed and every route registered.
func NewEcho(s *Server, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// Access and error logs go through zerolog; echo's own logger only
	// reports its internal failures.
	e.Logger.SetLevel(log.ERROR)
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Use(RequestLogger(logger))

	s.RegisterRoutes(e)
	return e
}

func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:order_id/transitions", s.TransitionOrder)
	api.POST("/orders/:order_id/driver-assignment", s.CreateOrderDriverAssignment)

	api.POST("/chefs", s.RegisterChef)

	api.POST("/subscriptions", s.CreateSubscription)
	api.POST("/subscriptions/:subscription_id/chef", s.AssignChef)
	api.GET("/subscriptions/:subscription_id/timeline", s.GetSubscriptionTimeline)
	api.POST("/subscriptions/:subscription_id/meals/ready", s.MarkMealReady)
	api.POST("/subscriptions/:subscription_id/meals/delivered", s.MarkMealDelivered)
	api.POST("/subscriptions/:subscription_id/driver-assignment", s.CreateSubscriptionDayDriverAssignment)
	api.POST("/subscriptions/:subscription_id/reassignments", s.RequestReassignment)

	api.GET("/reassignments", s.GetReassignmentQueue)
	api.POST("/reassignments/:request_id/resolution", s.ResolveReassignment)
	api.POST("/reassignments/auto-approve", s.AutoApproveReassignments)

	api.POST("/drivers", s.RegisterDriver)
	api.GET("/drivers/:driver_id/clustering-advice", s.GetClusteringAdvice)
	api.POST("/drivers/earnings/reset", s.ResetDailyEarnings)

	api.POST("/assignments/:assignment_id/pickup", s.ConfirmPickup)
	api.POST("/assignments/:assignment_id/delivery", s.ConfirmDelivery)
	api.POST("/assignments/:assignment_id/cancellation", s.CancelDriverAssignment)

	api.POST("/devices", s.RegisterDevice)
}

// bind decodes and validates the request body into dst.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return c.Validate(dst)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}
