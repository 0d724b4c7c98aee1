package postgres

import (
	"mealflow/internal/adapters/out/postgres/assignmentrepo"
	"mealflow/internal/adapters/out/postgres/chefrepo"
	"mealflow/internal/adapters/out/postgres/delegationrepo"
	"mealflow/internal/adapters/out/postgres/driverrepo"
	"mealflow/internal/adapters/out/postgres/orderrepo"
	"mealflow/internal/adapters/out/postgres/reassignmentrepo"
	"mealflow/internal/adapters/out/postgres/recipientrepo"
	"mealflow/internal/adapters/out/postgres/subscriptionrepo"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Partial unique indexes gorm tags cannot express. Statuses 1 and 2 are the
// assigned and picked-up assignment states.
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_driver_assignments_active_order
		ON driver_assignments (order_id) WHERE order_id IS NOT NULL AND status IN (1, 2)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_driver_assignments_active_day
		ON driver_assignments (subscription_id, slot_date, slot_meal)
		WHERE subscription_id IS NOT NULL AND status IN (1, 2)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_orders_subscription_slot
		ON orders (subscription_id, slot_date, slot_meal) WHERE subscription_id IS NOT NULL`,
}

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&chefrepo.ChefDTO{},
		&driverrepo.DriverDTO{},
		&assignmentrepo.AssignmentDTO{},
		&subscriptionrepo.SubscriptionDTO{},
		&delegationrepo.DelegationDTO{},
		&delegationrepo.TimelineEntryDTO{},
		&reassignmentrepo.RequestDTO{},
		&recipientrepo.DeviceTokenDTO{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "create partial index")
		}
	}
	return nil
}
