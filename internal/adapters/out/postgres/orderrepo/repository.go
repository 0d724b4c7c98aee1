package orderrepo

import (
	"context"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entityName = "order"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dbutil.Insert(ctx, r.db, entityName, dto.ID, &dto)
}

// Update writes the order with a compare-and-swap on its version and advances
// the in-memory version once the row was written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
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

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := dbutil.First(ctx, r.db, entityName, id.String(), &dto, "id = ?", id.Bytes()); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) ListActiveBySubscription(ctx context.Context, subscriptionID kernel.UUID) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("subscription_id = ? AND status NOT IN ?", subscriptionID.Bytes(), []int{int(order.Delivered), int(order.Cancelled)}).
		Order("slot_date, slot_meal").
		Find(&dtos).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list active orders of subscription %s", subscriptionID)
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) GetBySubscriptionSlot(
	ctx context.Context,
	subscriptionID kernel.UUID,
	slot kernel.MealSlot,
) (*order.Order, error) {
	var dto OrderDTO
	err := dbutil.First(ctx, r.db, entityName, subscriptionID.String()+"/"+slot.String(), &dto,
		"subscription_id = ? AND slot_date = ? AND slot_meal = ?",
		subscriptionID.Bytes(), slot.DateString(), int(slot.MealTime()),
	)
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) CountDelivered(
	ctx context.Context,
	customerID kernel.UUID,
	subscriptionID *kernel.UUID,
	excludeOrderID *kernel.UUID,
) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("customer_id = ? AND status = ?", customerID.Bytes(), int(order.Delivered))
	if subscriptionID != nil {
		query = query.Where("subscription_id = ?", subscriptionID.Bytes())
	}
	if excludeOrderID != nil {
		query = query.Where("id <> ?", excludeOrderID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "count delivered orders of customer %s", customerID)
	}
	return count, nil
}
