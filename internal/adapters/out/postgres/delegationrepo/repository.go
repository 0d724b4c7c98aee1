package delegationrepo

import (
	"context"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/subscription"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entityName = "delegation"

type GormDelegationRepository struct {
	db *gorm.DB
}

func NewGormDelegationRepository(db *gorm.DB) *GormDelegationRepository {
	return &GormDelegationRepository{db: db}
}

func (r *GormDelegationRepository) Add(ctx context.Context, aggregate *delegation.Delegation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, entries := fromDomain(aggregate)
	if err := dbutil.Insert(ctx, r.db, entityName, dto.ID, &dto); err != nil {
		return err
	}
	return r.insertEntries(ctx, entries)
}

// Update writes the delegation row with a version check and then replaces the
// timeline rows. Both happen in the caller's transaction.
func (r *GormDelegationRepository) Update(ctx context.Context, aggregate *delegation.Delegation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, entries := fromDomain(aggregate)
	dto.Version = aggregate.NextVersion()
	if err := dbutil.UpdateVersioned(ctx, r.db, entityName, dto.ID, aggregate.Version(), &dto); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Where("delegation_id = ?", dto.ID).Delete(&TimelineEntryDTO{}).Error
	if err != nil {
		return errors.Wrapf(err, "clear timeline of delegation %s", dto.ID)
	}
	if err = r.insertEntries(ctx, entries); err != nil {
		return err
	}

	aggregate.AdvanceVersion()
	return nil
}

func (r *GormDelegationRepository) GetBySubscription(
	ctx context.Context,
	subscriptionID kernel.UUID,
) (*delegation.Delegation, error) {
	if err := subscriptionID.Validate(); err != nil {
		return nil, err
	}

	var dto DelegationDTO
	err := dbutil.First(ctx, r.db, entityName, subscriptionID.String(), &dto, "subscription_id = ?", subscriptionID.Bytes())
	if err != nil {
		return nil, err
	}

	var entries []TimelineEntryDTO
	err = r.db.WithContext(ctx).
		Where("delegation_id = ?", dto.ID).
		Order("slot_date, slot_meal").
		Find(&entries).Error
	if err != nil {
		return nil, errors.Wrapf(err, "load timeline of delegation %s", dto.ID)
	}

	return toDomain(dto, entries)
}

// CountByChefs counts delegations of subscriptions that are not cancelled.
func (r *GormDelegationRepository) CountByChefs(ctx context.Context, chefIDs []kernel.UUID) (map[kernel.UUID]int, error) {
	loads := make(map[kernel.UUID]int, len(chefIDs))
	if len(chefIDs) == 0 {
		return loads, nil
	}

	var rows []struct {
		ChefID uuid.UUID
		Load   int
	}
	err := r.db.WithContext(ctx).
		Table("delegations AS d").
		Select("d.chef_id, count(*) AS load").
		Joins("JOIN subscriptions s ON s.id = d.subscription_id").
		Where("d.chef_id IN ? AND s.status <> ?", dbutil.UUIDs(chefIDs), int(subscription.Cancelled)).
		Group("d.chef_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count delegations by chef")
	}

	for _, row := range rows {
		id, err := dbutil.ToUUID(row.ChefID)
		if err != nil {
			return nil, err
		}
		loads[id] = row.Load
	}
	return loads, nil
}

func (r *GormDelegationRepository) insertEntries(ctx context.Context, entries []TimelineEntryDTO) error {
	if len(entries) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&entries).Error; err != nil {
		return errors.Wrap(err, "insert timeline entries")
	}
	return nil
}
