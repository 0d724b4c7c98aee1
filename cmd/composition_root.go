package cmd

import (
	"io"
	"time"

	apihttp "mealflow/internal/adapters/in/http"
	"mealflow/internal/adapters/out/postgres"
	"mealflow/internal/adapters/out/postgres/assignmentrepo"
	"mealflow/internal/adapters/out/postgres/delegationrepo"
	"mealflow/internal/adapters/out/postgres/recipientrepo"
	"mealflow/internal/adapters/out/postgres/subscriptionrepo"
	"mealflow/internal/adapters/out/pushlog"
	"mealflow/internal/adapters/out/rabbitmq"
	"mealflow/internal/adapters/out/redis"
	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/application/usecases/queries"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/core/ports"
	"mealflow/internal/jobs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompositionRoot builds every handler from configuration. It owns the
// outbound connections it opened and releases them in Close.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     zerolog.Logger
	clock      commands.Clock

	dispatcher *notifications.AsyncDispatcher
	recipients *recipientrepo.GormRecipientDirectory
	cache      *redis.AdviceCache

	capacity  services.CapacityTracker
	earnings  services.EarningsPolicy
	estimator services.DeliveryEstimator
	codes     *services.ConfirmationCodeIssuer
	advisor   *services.RouteClusteringAdvisor

	closers []io.Closer
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger zerolog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		clock:      func() time.Time { return time.Now().UTC() },
		recipients: recipientrepo.NewGormRecipientDirectory(gormDB),
		capacity:   services.NewCapacityTracker(),
	}

	if err := c.buildServices(); err != nil {
		return nil, err
	}

	transport, err := c.pushTransport()
	if err != nil {
		return nil, err
	}
	fanout := notifications.NewFanout(c.recipients, transport)
	c.dispatcher = notifications.NewAsyncDispatcher(fanout, cfg.Policy.NotificationTimeout, logger)

	c.cache, err = redis.NewAdviceCache(cfg.Redis.Cache())
	if err != nil {
		c.Close()
		return nil, err
	}
	c.closers = append(c.closers, c.cache)

	return c, nil
}

func (c *CompositionRoot) buildServices() error {
	p := c.cfg.Policy

	flat, err := decimal.NewFromString(p.FlatEarnings)
	if err != nil {
		return errors.Wrap(err, "policy.flat_earnings")
	}
	if c.earnings, err = services.NewEarningsPolicy(flat); err != nil {
		return err
	}
	if c.estimator, err = services.NewDeliveryEstimator(p.AverageSpeedKmh, p.HandlingTime); err != nil {
		return err
	}
	if c.codes, err = services.NewConfirmationCodeIssuer(p.ConfirmationCodeLength, nil); err != nil {
		return err
	}

	tz, err := time.LoadLocation(p.ClusterTimezone)
	if err != nil {
		return errors.Wrap(err, "policy.cluster_timezone")
	}
	c.advisor, err = services.NewRouteClusteringAdvisor(p.ClusterMinSize, p.ClusterSavingsRatio, tz)
	return err
}

func (c *CompositionRoot) pushTransport() (ports.PushTransport, error) {
	if c.cfg.RabbitMQ.URL == "" {
		c.logger.Warn().Msg("rabbitmq.url is empty, push notifications are only logged")
		return pushlog.NewTransport(c.logger), nil
	}

	t, err := rabbitmq.Dial(c.cfg.RabbitMQ.URL, c.cfg.RabbitMQ.Exchange)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, t)
	return t, nil
}

// Close waits for in-flight notifications, then closes the broker and cache
// connections.
func (c *CompositionRoot) Close() {
	if c.dispatcher != nil {
		c.dispatcher.Wait()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			c.logger.Warn().Err(err).Msg("close")
		}
	}
	c.closers = nil
}

func (c *CompositionRoot) newUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) newDriverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) newDriverAssigner() *commands.DriverAssigner {
	return commands.NewDriverAssigner(services.NewDriverDispatcher(), c.estimator, c.codes)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.newUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(
		c.newUoWFactory(), c.newDriverAssigner(), c.dispatcher, c.clock, c.cfg.Policy.RetryAttempts)
}

func (c *CompositionRoot) CreateRegisterChefCommandHandler() commands.RegisterChefCommandHandler {
	return commands.NewRegisterChefCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateAssignChefCommandHandler() commands.AssignChefCommandHandler {
	return commands.NewAssignChefCommandHandler(
		c.newUoWFactory(), c.capacity, c.dispatcher, c.clock, c.cfg.Policy.RetryAttempts)
}

func (c *CompositionRoot) CreateCreateSubscriptionCommandHandler() commands.CreateSubscriptionCommandHandler {
	return commands.NewCreateSubscriptionCommandHandler(c.newUoWFactory())
}

func (c *CompositionRoot) CreateMarkMealCommandHandler() commands.MarkMealCommandHandler {
	return commands.NewMarkMealCommandHandler(c.newUoWFactory(), c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateRequestReassignmentCommandHandler() commands.RequestReassignmentCommandHandler {
	return commands.NewRequestReassignmentCommandHandler(c.newUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateResolveReassignmentCommandHandler() commands.ResolveReassignmentCommandHandler {
	return commands.NewResolveReassignmentCommandHandler(
		c.newUoWFactory(), c.capacity, c.dispatcher, c.clock, c.cfg.Policy.RetryAttempts)
}

func (c *CompositionRoot) CreateAutoApproveReassignmentsCommandHandler() commands.AutoApproveReassignmentsCommandHandler {
	return commands.NewAutoApproveReassignmentsCommandHandler(
		c.newUoWFactory(), c.capacity, c.dispatcher, c.clock,
		c.cfg.Policy.AutoApproveAge, c.cfg.Policy.AutoApproveBatch, c.cfg.Policy.RetryAttempts, c.logger,
	)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.newDriverUoWFactory())
}

func (c *CompositionRoot) CreateResetDailyEarningsCommandHandler() commands.ResetDailyEarningsCommandHandler {
	return commands.NewResetDailyEarningsCommandHandler(c.newDriverUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverAssignmentCommandHandler() commands.CreateDriverAssignmentCommandHandler {
	return commands.NewCreateDriverAssignmentCommandHandler(
		c.newUoWFactory(), c.newDriverAssigner(), c.clock, c.cfg.Policy.RetryAttempts)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.newUoWFactory(), c.dispatcher, c.clock)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(
		c.newUoWFactory(), c.earnings, c.dispatcher, c.clock, c.cfg.Policy.RetryAttempts, c.logger,
	)
}

func (c *CompositionRoot) CreateCancelDriverAssignmentCommandHandler() commands.CancelDriverAssignmentCommandHandler {
	return commands.NewCancelDriverAssignmentCommandHandler(c.newUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetClusteringAdviceQueryHandler() queries.GetClusteringAdviceQueryHandler {
	return queries.NewGetClusteringAdviceQueryHandler(
		assignmentrepo.NewGormAssignmentRepository(c.gormDB), c.advisor, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetSubscriptionTimelineQueryHandler() queries.GetSubscriptionTimelineQueryHandler {
	return queries.NewGetSubscriptionTimelineQueryHandler(
		subscriptionrepo.NewGormSubscriptionRepository(c.gormDB),
		delegationrepo.NewGormDelegationRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetReassignmentQueueQueryHandler() queries.GetReassignmentQueueQueryHandler {
	return queries.NewGetReassignmentQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *apihttp.Server {
	return apihttp.NewServer(apihttp.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		TransitionOrder:        c.CreateTransitionOrderCommandHandler(),
		RegisterChef:           c.CreateRegisterChefCommandHandler(),
		AssignChef:             c.CreateAssignChefCommandHandler(),
		CreateSubscription:     c.CreateCreateSubscriptionCommandHandler(),
		MarkMeal:               c.CreateMarkMealCommandHandler(),
		RequestReassignment:    c.CreateRequestReassignmentCommandHandler(),
		ResolveReassignment:    c.CreateResolveReassignmentCommandHandler(),
		AutoApprove:            c.CreateAutoApproveReassignmentsCommandHandler(),
		RegisterDriver:         c.CreateRegisterDriverCommandHandler(),
		ResetDailyEarnings:     c.CreateResetDailyEarningsCommandHandler(),
		CreateDriverAssignment: c.CreateCreateDriverAssignmentCommandHandler(),
		ConfirmPickup:          c.CreateConfirmPickupCommandHandler(),
		ConfirmDelivery:        c.CreateConfirmDeliveryCommandHandler(),
		CancelDriverAssignment: c.CreateCancelDriverAssignmentCommandHandler(),
		ClusteringAdvice:       c.CreateGetClusteringAdviceQueryHandler(),
		SubscriptionTimeline:   c.CreateGetSubscriptionTimelineQueryHandler(),
		ReassignmentQueue:      c.CreateGetReassignmentQueueQueryHandler(),
		Devices:                c.recipients,
	}, c.clock)
}

func (c *CompositionRoot) CreateReassignmentAgingJob() *jobs.ReassignmentAgingJob {
	return jobs.NewReassignmentAgingJob(
		c.CreateAutoApproveReassignmentsCommandHandler(),
		c.cfg.Jobs.ReassignmentAgingSpec, c.cfg.Jobs.Timeout, c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReassignmentAgingJob(),
		jobs.NewDailyEarningsResetJob(
			c.CreateResetDailyEarningsCommandHandler(),
			c.cfg.Jobs.DailyEarningsResetSpec, c.cfg.Jobs.Timeout, c.logger,
		),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
