// Package driverrepo persists drivers. Service areas are a text[] column so
// the eligibility query can rank drivers serving the drop-off area first.
package driverrepo

import (
	"time"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type DriverDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                string          `gorm:"not null"`
	Lat                 float64         `gorm:"not null"`
	Lng                 float64         `gorm:"not null"`
	ServiceAreas        pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
	Active              bool            `gorm:"not null"`
	Available           bool            `gorm:"not null"`
	Verified            bool            `gorm:"not null"`
	MaxCapacity         int             `gorm:"not null"`
	DailyEarnings       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalEarnings       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CompletedDeliveries int             `gorm:"not null;default:0"`
	LastAssignedAt      *time.Time
	Version             int `gorm:"not null;default:0"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	s := d.Snapshot()
	return DriverDTO{
		ID:                  s.ID.Bytes(),
		Name:                s.Name,
		Lat:                 s.Location.Lat(),
		Lng:                 s.Location.Lng(),
		ServiceAreas:        pq.StringArray(s.ServiceAreas),
		Active:              s.Active,
		Available:           s.Available,
		Verified:            s.Verified,
		MaxCapacity:         s.MaxCapacity,
		DailyEarnings:       s.DailyEarnings,
		TotalEarnings:       s.TotalEarnings,
		CompletedDeliveries: s.CompletedDeliveries,
		LastAssignedAt:      s.LastAssignedAt,
		Version:             s.Version,
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := dbutil.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewLocation(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	var lastAssignedAt *time.Time
	if dto.LastAssignedAt != nil {
		at := dto.LastAssignedAt.UTC()
		lastAssignedAt = &at
	}

	return driver.RestoreDriver(driver.Snapshot{
		ID:                  id,
		Name:                dto.Name,
		Location:            location,
		ServiceAreas:        []string(dto.ServiceAreas),
		Active:              dto.Active,
		Available:           dto.Available,
		Verified:            dto.Verified,
		MaxCapacity:         dto.MaxCapacity,
		DailyEarnings:       dto.DailyEarnings,
		TotalEarnings:       dto.TotalEarnings,
		CompletedDeliveries: dto.CompletedDeliveries,
		LastAssignedAt:      lastAssignedAt,
		Version:             dto.Version,
	})
}
