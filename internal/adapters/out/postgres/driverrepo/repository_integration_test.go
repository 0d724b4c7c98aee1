package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"mealflow/internal/adapters/out/postgres/driverrepo"
	"mealflow/internal/adapters/out/postgres/pgtest"
	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type DriverRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repo = driverrepo.NewGormDriverRepository(db)
}

func (suite *DriverRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *DriverRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryTestSuite) TestRoundTripKeepsEarningsAndAreas() {
	ctx := context.Background()
	d := suite.newDriver("Kemi", []string{"Yaba", "Surulere"})
	suite.Require().NoError(d.RecordDelivery(decimal.RequireFromString("500.25")))
	suite.Require().NoError(suite.repo.Add(ctx, d))

	stored, err := suite.repo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal([]string{"yaba", "surulere"}, stored.ServiceAreas())
	suite.True(decimal.RequireFromString("500.25").Equal(stored.DailyEarnings()))
	suite.Equal(1, stored.CompletedDeliveries())
	suite.True(stored.IsEligible())
}

func (suite *DriverRepositoryTestSuite) TestListEligiblePrefersAreaThenLongestIdle() {
	ctx := context.Background()
	base := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)

	recentInArea := suite.newDriver("recent", []string{"Ikeja"})
	suite.Require().NoError(recentInArea.MarkAssigned(base.Add(time.Hour)))
	idleInArea := suite.newDriver("idle", []string{"ikeja"})
	suite.Require().NoError(idleInArea.MarkAssigned(base))
	neverAssigned := suite.newDriver("never", []string{"Lekki"})
	unavailable := suite.newDriver("off", []string{"Ikeja"})
	unavailable.SetAvailable(false)

	for _, d := range []*driver.Driver{recentInArea, idleInArea, neverAssigned, unavailable} {
		suite.Require().NoError(suite.repo.Add(ctx, d))
	}

	eligible, err := suite.repo.ListEligible(ctx, " IKEJA ")
	suite.Require().NoError(err)
	suite.Require().Len(eligible, 3)
	suite.Equal("idle", eligible[0].Name())
	suite.Equal("recent", eligible[1].Name())
	suite.Equal("never", eligible[2].Name())
}

func (suite *DriverRepositoryTestSuite) TestResetDailyEarningsBumpsVersions() {
	ctx := context.Background()
	d := suite.newDriver("Kemi", nil)
	suite.Require().NoError(d.RecordDelivery(decimal.NewFromInt(500)))
	suite.Require().NoError(suite.repo.Add(ctx, d))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newDriver("Musa", nil)))

	touched, err := suite.repo.ResetDailyEarnings(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), touched)

	stored, err := suite.repo.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(stored.DailyEarnings().IsZero())
	suite.True(decimal.NewFromInt(500).Equal(stored.TotalEarnings()))
	suite.Equal(1, stored.Version())
}

func (suite *DriverRepositoryTestSuite) newDriver(name string, areas []string) *driver.Driver {
	loc, err := kernel.NewLocation(6.5, 3.3)
	suite.Require().NoError(err)
	d, err := driver.NewDriver(kernel.NewUUID(), name, 3, loc, areas)
	suite.Require().NoError(err)
	d.Verify()
	return d
}

func TestDriverRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryTestSuite))
}
