package assignmentrepo

import (
	"context"
	"time"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entityName = "assignment"

type GormAssignmentRepository struct {
	db *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add relies on the partial unique indexes: a second active assignment for
// the same target fails with errs.ErrConflict.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dbutil.Insert(ctx, r.db, entityName, dto.ID, &dto)
}

func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.NextVersion()
	if err := dbutil.UpdateVersioned(ctx, r.db, entityName, dto.ID, aggregate.Version(), &dto); err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	return nil
}

func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := dbutil.First(ctx, r.db, entityName, id.String(), &dto, "id = ?", id.Bytes()); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAssignmentRepository) GetActiveForTarget(
	ctx context.Context,
	target assignment.Target,
) (*assignment.Assignment, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("status IN ?", activeStatuses)
	if target.IsOrder() {
		query = query.Where("order_id = ?", target.OrderID().Bytes())
	} else {
		query = query.Where("subscription_id = ? AND slot_date = ? AND slot_meal = ?",
			target.SubscriptionID().Bytes(), target.Slot().DateString(), int(target.Slot().MealTime()))
	}

	var dto AssignmentDTO
	if err := dbutil.First(ctx, query, entityName, target.String(), &dto, "true"); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAssignmentRepository) CountActiveByDrivers(
	ctx context.Context,
	driverIDs []kernel.UUID,
) (map[kernel.UUID]int, error) {
	loads := make(map[kernel.UUID]int, len(driverIDs))
	if len(driverIDs) == 0 {
		return loads, nil
	}

	var rows []struct {
		DriverID uuid.UUID
		Load     int
	}
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Select("driver_id, count(*) AS load").
		Where("driver_id IN ? AND status IN ?", dbutil.UUIDs(driverIDs), activeStatuses).
		Group("driver_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count active assignments")
	}

	for _, row := range rows {
		id, err := dbutil.ToUUID(row.DriverID)
		if err != nil {
			return nil, err
		}
		loads[id] = row.Load
	}
	return loads, nil
}

func (r *GormAssignmentRepository) ListByDriverInWindow(
	ctx context.Context,
	driverID kernel.UUID,
	from, to time.Time,
) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND estimated_deliver_at >= ? AND estimated_deliver_at < ?", driverID.Bytes(), from, to).
		Order("estimated_deliver_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list assignments of driver %s", driverID)
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
