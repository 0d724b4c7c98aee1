package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"mealflow/internal/adapters/out/postgres/assignmentrepo"
	"mealflow/internal/adapters/out/postgres/pgtest"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var now = time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

type AssignmentRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *assignmentrepo.GormAssignmentRepository
}

func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repo = assignmentrepo.NewGormAssignmentRepository(db)
}

func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryTestSuite) TestSecondActiveAssignmentForOrderConflicts() {
	ctx := context.Background()
	target := suite.orderTarget()

	suite.Require().NoError(suite.repo.Add(ctx, suite.newAssignment(kernel.NewUUID(), target, now, nil)))
	err := suite.repo.Add(ctx, suite.newAssignment(kernel.NewUUID(), target, now, nil))
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *AssignmentRepositoryTestSuite) TestCancelledAssignmentFreesTheTarget() {
	ctx := context.Background()
	target := suite.orderTarget()

	first := suite.newAssignment(kernel.NewUUID(), target, now, nil)
	suite.Require().NoError(suite.repo.Add(ctx, first))
	suite.Require().NoError(first.Cancel("driver unreachable", now))
	suite.Require().NoError(suite.repo.Update(ctx, first))

	_, err := suite.repo.GetActiveForTarget(ctx, target)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	second := suite.newAssignment(kernel.NewUUID(), target, now, nil)
	suite.Require().NoError(suite.repo.Add(ctx, second))

	active, err := suite.repo.GetActiveForTarget(ctx, target)
	suite.Require().NoError(err)
	suite.True(active.ID().IsEqual(second.ID()))
}

func (suite *AssignmentRepositoryTestSuite) TestSubscriptionDayRoundTrip() {
	ctx := context.Background()
	slot, err := kernel.NewMealSlot(now, kernel.Lunch)
	suite.Require().NoError(err)
	target, err := assignment.SubscriptionDayTarget(kernel.NewUUID(), slot)
	suite.Require().NoError(err)

	code, err := assignment.NewConfirmationCode("k7p2qx")
	suite.Require().NoError(err)
	a := suite.newAssignment(kernel.NewUUID(), target, now, &code)
	suite.Require().NoError(suite.repo.Add(ctx, a))

	suite.Require().NoError(a.ConfirmPickup(now))
	earnings, err := assignment.NewEarnings(decimal.NewFromInt(500), decimal.Zero)
	suite.Require().NoError(err)
	suite.Require().NoError(a.ConfirmDelivery(" k7p2qx ", earnings, now.Add(time.Hour)))
	suite.Require().NoError(suite.repo.Update(ctx, a))

	stored, err := suite.repo.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.Delivered, stored.Status())
	suite.True(stored.Target().Slot().IsEqual(slot))
	suite.Equal("K7P2QX", stored.ConfirmationCode().String())
	suite.Require().NotNil(stored.Earnings())
	suite.True(decimal.NewFromInt(500).Equal(stored.Earnings().Total))
}

func (suite *AssignmentRepositoryTestSuite) TestLoadsAndWindow() {
	ctx := context.Background()
	busy, idle := kernel.NewUUID(), kernel.NewUUID()

	morning := suite.newAssignment(busy, suite.orderTarget(), now, nil)
	evening := suite.newAssignment(busy, suite.orderTarget(), now.Add(9*time.Hour), nil)
	nextDay := suite.newAssignment(busy, suite.orderTarget(), now.Add(24*time.Hour), nil)
	for _, a := range []*assignment.Assignment{morning, evening, nextDay} {
		suite.Require().NoError(suite.repo.Add(ctx, a))
	}
	suite.Require().NoError(nextDay.Cancel("customer away", now))
	suite.Require().NoError(suite.repo.Update(ctx, nextDay))

	loads, err := suite.repo.CountActiveByDrivers(ctx, []kernel.UUID{busy, idle})
	suite.Require().NoError(err)
	suite.Equal(2, loads[busy])
	_, found := loads[idle]
	suite.False(found)

	dayStart := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	window, err := suite.repo.ListByDriverInWindow(ctx, busy, dayStart, dayStart.Add(24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(window, 2)
	suite.True(window[0].ID().IsEqual(morning.ID()))
	suite.True(window[1].ID().IsEqual(evening.ID()))
}

func (suite *AssignmentRepositoryTestSuite) orderTarget() assignment.Target {
	target, err := assignment.OrderTarget(kernel.NewUUID())
	suite.Require().NoError(err)
	return target
}

func (suite *AssignmentRepositoryTestSuite) newAssignment(
	driverID kernel.UUID,
	target assignment.Target,
	at time.Time,
	code *assignment.ConfirmationCode,
) *assignment.Assignment {
	estimate := assignment.Estimate{
		PickupAt:   at.Add(10 * time.Minute),
		DeliveryAt: at.Add(40 * time.Minute),
		Duration:   40 * time.Minute,
	}
	a, err := assignment.NewAssignment(kernel.NewUUID(), driverID, target,
		suite.address("Kitchen Road", "Yaba"), suite.address("5 Herbert Macaulay", "Yaba"), estimate, code, at)
	suite.Require().NoError(err)
	return a
}

func (suite *AssignmentRepositoryTestSuite) address(street, area string) kernel.Address {
	loc, err := kernel.NewLocation(6.51, 3.37)
	suite.Require().NoError(err)
	addr, err := kernel.NewAddress(street, area, loc)
	suite.Require().NoError(err)
	return addr
}

func TestAssignmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
