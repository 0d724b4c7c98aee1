// Package pgtest starts a disposable PostgreSQL for the repository
// integration suites.
package pgtest

import (
	"context"

	postgresadapter "mealflow/internal/adapters/out/postgres"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table in truncation order.
const Tables = "orders, chefs, drivers, driver_assignments, subscriptions, delegations, " +
	"delegation_timeline, reassignment_requests, device_tokens"

// Start runs postgres:15-alpine, connects with the service's gorm settings and
// migrates the schema.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := postgresadapter.OpenDSN(dsn, zerolog.Nop(), 10, 10)
	if err != nil {
		return container, nil, err
	}

	if err = postgresadapter.Migrate(db); err != nil {
		return container, nil, err
	}
	return container, db, nil
}

func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables).Error
}
