package chefrepo

import (
	"context"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/chef"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entityName = "chef"

type GormChefRepository struct {
	db *gorm.DB
}

func NewGormChefRepository(db *gorm.DB) *GormChefRepository {
	return &GormChefRepository{db: db}
}

func (r *GormChefRepository) Add(ctx context.Context, aggregate *chef.Chef) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dbutil.Insert(ctx, r.db, entityName, dto.ID, &dto)
}

func (r *GormChefRepository) Update(ctx context.Context, aggregate *chef.Chef) error {
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

func (r *GormChefRepository) Get(ctx context.Context, id kernel.UUID) (*chef.Chef, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ChefDTO
	if err := dbutil.First(ctx, r.db, entityName, id.String(), &dto, "id = ?", id.Bytes()); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormChefRepository) ListActive(ctx context.Context) ([]*chef.Chef, error) {
	var dtos []ChefDTO
	if err := r.db.WithContext(ctx).Where("active").Order("name, id").Find(&dtos).Error; err != nil {
		return nil, errors.Wrap(err, "list active chefs")
	}

	chefs := make([]*chef.Chef, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		chefs = append(chefs, c)
	}
	return chefs, nil
}
