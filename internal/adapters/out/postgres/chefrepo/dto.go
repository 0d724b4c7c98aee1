// Package chefrepo persists chefs.
package chefrepo

import (
	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/chef"

	"github.com/google/uuid"
)

type ChefDTO struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name             string            `gorm:"not null"`
	Active           bool              `gorm:"not null;index"`
	MaxDailyCapacity int               `gorm:"not null"`
	Kitchen          dbutil.AddressDTO `gorm:"embedded;embeddedPrefix:kitchen_"`
	Version          int               `gorm:"not null;default:0"`
}

func (ChefDTO) TableName() string {
	return "chefs"
}

func fromDomain(c *chef.Chef) ChefDTO {
	s := c.Snapshot()
	return ChefDTO{
		ID:               s.ID.Bytes(),
		Name:             s.Name,
		Active:           s.Active,
		MaxDailyCapacity: s.MaxDailyCapacity,
		Kitchen:          dbutil.FromAddress(s.Kitchen),
		Version:          s.Version,
	}
}

func toDomain(dto ChefDTO) (*chef.Chef, error) {
	id, err := dbutil.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	kitchen, err := dto.Kitchen.ToAddress()
	if err != nil {
		return nil, err
	}

	return chef.RestoreChef(chef.Snapshot{
		ID:               id,
		Name:             dto.Name,
		Active:           dto.Active,
		MaxDailyCapacity: dto.MaxDailyCapacity,
		Kitchen:          kitchen,
		Version:          dto.Version,
	})
}
