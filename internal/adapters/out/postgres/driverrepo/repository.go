package driverrepo

import (
	"context"
	"strings"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityName = "driver"

type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dbutil.Insert(ctx, r.db, entityName, dto.ID, &dto)
}

// Update is the capacity guard of driver selection: two transactions that
// picked the same driver from the same version cannot both write it.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
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

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := dbutil.First(ctx, r.db, entityName, id.String(), &dto, "id = ?", id.Bytes()); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) ListEligible(ctx context.Context, preferredArea string) ([]*driver.Driver, error) {
	area := strings.ToLower(strings.TrimSpace(preferredArea))

	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("active AND available AND verified").
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "? = ANY(service_areas) DESC, last_assigned_at ASC NULLS FIRST, id",
			Vars:               []any{area},
			WithoutParentheses: true,
		}}).
		Find(&dtos).Error
	if err != nil {
		return nil, errors.Wrap(err, "list eligible drivers")
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

// ResetDailyEarnings bumps every version so a stale in-flight write cannot
// restore yesterday's earnings.
func (r *GormDriverRepository) ResetDailyEarnings(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("true").
		Updates(map[string]any{
			"daily_earnings": 0,
			"version":        gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "reset daily earnings")
	}
	return result.RowsAffected, nil
}
