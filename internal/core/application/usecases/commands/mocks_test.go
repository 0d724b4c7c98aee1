package commands_test

import (
	"context"
	"testing"
	"time"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/application/usecases/commands"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/chef"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/core/domain/model/reassignment"
	"mealflow/internal/core/domain/model/subscription"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListActiveBySubscription(ctx context.Context, subscriptionID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBySubscriptionSlot(
	ctx context.Context,
	subscriptionID kernel.UUID,
	slot kernel.MealSlot,
) (*order.Order, error) {
	args := m.Called(ctx, subscriptionID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountDelivered(
	ctx context.Context,
	customerID kernel.UUID,
	subscriptionID *kernel.UUID,
	excludeOrderID *kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, customerID, subscriptionID, excludeOrderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockChefRepository struct{ mock.Mock }

func (m *MockChefRepository) Add(ctx context.Context, c *chef.Chef) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChefRepository) Update(ctx context.Context, c *chef.Chef) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockChefRepository) Get(ctx context.Context, id kernel.UUID) (*chef.Chef, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chef.Chef), args.Error(1)
}

func (m *MockChefRepository) ListActive(ctx context.Context) ([]*chef.Chef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chef.Chef), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ListEligible(ctx context.Context, preferredArea string) ([]*driver.Driver, error) {
	args := m.Called(ctx, preferredArea)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ResetDailyEarnings(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveForTarget(
	ctx context.Context,
	target assignment.Target,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) CountActiveByDrivers(
	ctx context.Context,
	driverIDs []kernel.UUID,
) (map[kernel.UUID]int, error) {
	args := m.Called(ctx, driverIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

func (m *MockAssignmentRepository) ListByDriverInWindow(
	ctx context.Context,
	driverID kernel.UUID,
	from, to time.Time,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, driverID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) Add(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

type MockDelegationRepository struct{ mock.Mock }

func (m *MockDelegationRepository) Add(ctx context.Context, d *delegation.Delegation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelegationRepository) Update(ctx context.Context, d *delegation.Delegation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelegationRepository) GetBySubscription(
	ctx context.Context,
	subscriptionID kernel.UUID,
) (*delegation.Delegation, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delegation.Delegation), args.Error(1)
}

func (m *MockDelegationRepository) CountByChefs(ctx context.Context, chefIDs []kernel.UUID) (map[kernel.UUID]int, error) {
	args := m.Called(ctx, chefIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

type MockReassignmentRepository struct{ mock.Mock }

func (m *MockReassignmentRepository) Add(ctx context.Context, r *reassignment.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReassignmentRepository) Update(ctx context.Context, r *reassignment.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReassignmentRepository) Get(ctx context.Context, id kernel.UUID) (*reassignment.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reassignment.Request), args.Error(1)
}

func (m *MockReassignmentRepository) ListStalePending(
	ctx context.Context,
	olderThan time.Time,
	limit int,
) ([]*reassignment.Request, error) {
	args := m.Called(ctx, olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reassignment.Request), args.Error(1)
}

type MockUoW struct {
	mock.Mock

	orders        *MockOrderRepository
	chefs         *MockChefRepository
	drivers       *MockDriverRepository
	assignments   *MockAssignmentRepository
	subscriptions *MockSubscriptionRepository
	delegations   *MockDelegationRepository
	reassignments *MockReassignmentRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockUoW) ChefRepository() ports.ChefRepository {
	return m.chefs
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.drivers
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	return m.assignments
}

func (m *MockUoW) SubscriptionRepository() ports.SubscriptionRepository {
	return m.subscriptions
}

func (m *MockUoW) DelegationRepository() ports.DelegationRepository {
	return m.delegations
}

func (m *MockUoW) ReassignmentRepository() ports.ReassignmentRepository {
	return m.reassignments
}

// newMockUoW returns a unit of work whose Begin and Rollback succeed.
// Tests add the Commit expectation they need.
func newMockUoW(ctx context.Context) *MockUoW {
	uow := &MockUoW{
		orders:        new(MockOrderRepository),
		chefs:         new(MockChefRepository),
		drivers:       new(MockDriverRepository),
		assignments:   new(MockAssignmentRepository),
		subscriptions: new(MockSubscriptionRepository),
		delegations:   new(MockDelegationRepository),
		reassignments: new(MockReassignmentRepository),
	}
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	return uow
}

func (m *MockUoW) assertRepositories(t *testing.T) {
	t.Helper()
	m.orders.AssertExpectations(t)
	m.chefs.AssertExpectations(t)
	m.drivers.AssertExpectations(t)
	m.assignments.AssertExpectations(t)
	m.subscriptions.AssertExpectations(t)
	m.delegations.AssertExpectations(t)
	m.reassignments.AssertExpectations(t)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newMockUoWFactory(uow *MockUoW) *MockUoWFactory {
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)
	return factory
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event notifications.Event) {
	m.Called(ctx, event)
}

func newAcceptingPublisher() *MockEventPublisher {
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("notifications.Event")).Return()
	return publisher
}

func testAddress(t *testing.T, street, area string, lat, lng float64) kernel.Address {
	t.Helper()
	location, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	address, err := kernel.NewAddress(street, area, location)
	require.NoError(t, err)
	return address
}

func customerAddress(t *testing.T) kernel.Address {
	t.Helper()
	return testAddress(t, "12 Allen Avenue", "Ikeja", 6.6018, 3.3515)
}

func kitchenAddress(t *testing.T) kernel.Address {
	t.Helper()
	return testAddress(t, "4 Admiralty Way", "Lekki", 6.4474, 3.4723)
}

func newTestChef(t *testing.T, capacity int) *chef.Chef {
	t.Helper()
	c, err := chef.NewChef(kernel.NewUUID(), "Chef Amaka", capacity, kitchenAddress(t))
	require.NoError(t, err)
	return c
}

func newTestDriver(t *testing.T, capacity int) *driver.Driver {
	t.Helper()
	location, err := kernel.NewLocation(6.5244, 3.3792)
	require.NoError(t, err)
	d, err := driver.NewDriver(kernel.NewUUID(), "Tunde", capacity, location, []string{"Ikeja"})
	require.NoError(t, err)
	d.Verify()
	return d
}

// newTestOrder walks a fresh order along the happy path up to status.
func newTestOrder(t *testing.T, status order.Status, chefID *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), customerAddress(t), fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	if chefID != nil {
		require.NoError(t, o.AssignChef(*chefID))
	}
	advanceOrder(t, o, status)
	return o
}

func newTestSubscriptionOrder(
	t *testing.T,
	status order.Status,
	subscriptionID kernel.UUID,
	slot kernel.MealSlot,
	chefID *kernel.UUID,
) *order.Order {
	t.Helper()
	o, err := order.NewSubscriptionOrder(
		kernel.NewUUID(), kernel.NewUUID(), subscriptionID, slot, customerAddress(t), fixedNow.Add(-time.Hour),
	)
	require.NoError(t, err)
	if chefID != nil {
		require.NoError(t, o.AssignChef(*chefID))
	}
	advanceOrder(t, o, status)
	return o
}

func advanceOrder(t *testing.T, o *order.Order, status order.Status) {
	t.Helper()
	path := []order.Status{order.Confirmed, order.InProgress, order.Completed, order.Delivered}
	for _, next := range path {
		if o.Status() == status {
			return
		}
		require.NoError(t, o.TransitionTo(next, "", fixedNow.Add(-30*time.Minute)))
	}
	require.Equal(t, status, o.Status())
}

func testSlot(t *testing.T, date, mealTime string) kernel.MealSlot {
	t.Helper()
	slot, err := kernel.ParseMealSlot(date, mealTime)
	require.NoError(t, err)
	return slot
}

func newTestSubscription(t *testing.T) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(kernel.NewUUID(), kernel.NewUUID(), fixedNow, 4)
	require.NoError(t, err)
	return sub
}

func newTestAssignment(t *testing.T, target assignment.Target, driverID kernel.UUID, code string) *assignment.Assignment {
	t.Helper()
	var confirmation *assignment.ConfirmationCode
	if code != "" {
		c, err := assignment.NewConfirmationCode(code)
		require.NoError(t, err)
		confirmation = &c
	}
	estimate := assignment.Estimate{
		PickupAt:   fixedNow.Add(15 * time.Minute),
		DeliveryAt: fixedNow.Add(45 * time.Minute),
		Duration:   45 * time.Minute,
	}
	a, err := assignment.NewAssignment(
		kernel.NewUUID(), driverID, target, kitchenAddress(t), customerAddress(t), estimate, confirmation, fixedNow,
	)
	require.NoError(t, err)
	return a
}

func newTestAssigner(t *testing.T) *commands.DriverAssigner {
	t.Helper()
	estimator, err := services.NewDeliveryEstimator(30, 10*time.Minute)
	require.NoError(t, err)
	codes, err := services.NewConfirmationCodeIssuer(services.DefaultCodeLength, nil)
	require.NoError(t, err)
	return commands.NewDriverAssigner(services.NewDriverDispatcher(), estimator, codes)
}

func newTestEarningsPolicy(t *testing.T) services.EarningsPolicy {
	t.Helper()
	policy, err := services.NewEarningsPolicy(services.DefaultFlatEarnings)
	require.NoError(t, err)
	return policy
}
