// Package delegationrepo persists delegations together with their meal
// timeline, which lives in a child table keyed by (delegation, slot).
package delegationrepo

import (
	"time"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DelegationDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SubscriptionID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	ChefID         *uuid.UUID `gorm:"type:uuid;index"`
	DriverID       *uuid.UUID `gorm:"type:uuid"`
	ChefAssignedAt *time.Time
	Version        int `gorm:"not null;default:0"`
}

func (DelegationDTO) TableName() string {
	return "delegations"
}

type TimelineEntryDTO struct {
	DelegationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SlotDate     time.Time `gorm:"type:date;primaryKey"`
	SlotMeal     int       `gorm:"type:smallint;primaryKey"`
	Status       int       `gorm:"type:smallint;not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (TimelineEntryDTO) TableName() string {
	return "delegation_timeline"
}

func fromDomain(d *delegation.Delegation) (DelegationDTO, []TimelineEntryDTO) {
	s := d.Snapshot()
	dto := DelegationDTO{
		ID:             s.ID.Bytes(),
		SubscriptionID: s.SubscriptionID.Bytes(),
		ChefID:         dbutil.UUIDPtr(s.ChefID),
		DriverID:       dbutil.UUIDPtr(s.DriverID),
		ChefAssignedAt: s.ChefAssignedAt,
		Version:        s.Version,
	}

	entries := make([]TimelineEntryDTO, 0, len(s.Timeline))
	for _, e := range s.Timeline {
		entries = append(entries, TimelineEntryDTO{
			DelegationID: dto.ID,
			SlotDate:     e.Slot.Date(),
			SlotMeal:     int(e.Slot.MealTime()),
			Status:       int(e.Status),
			UpdatedAt:    e.UpdatedAt,
		})
	}
	return dto, entries
}

func toDomain(dto DelegationDTO, entries []TimelineEntryDTO) (*delegation.Delegation, error) {
	id, err := dbutil.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	subscriptionID, err := dbutil.ToUUID(dto.SubscriptionID)
	if err != nil {
		return nil, err
	}
	chefID, err := dbutil.ToUUIDPtr(dto.ChefID)
	if err != nil {
		return nil, err
	}
	driverID, err := dbutil.ToUUIDPtr(dto.DriverID)
	if err != nil {
		return nil, err
	}

	timeline := make([]delegation.Entry, 0, len(entries))
	for _, e := range entries {
		slot, slotErr := kernel.NewMealSlot(e.SlotDate, kernel.MealTime(e.SlotMeal))
		if slotErr != nil {
			return nil, slotErr
		}
		timeline = append(timeline, delegation.Entry{
			Slot:      slot,
			Status:    delegation.EntryStatus(e.Status),
			UpdatedAt: e.UpdatedAt.UTC(),
		})
	}

	var chefAssignedAt *time.Time
	if dto.ChefAssignedAt != nil {
		at := dto.ChefAssignedAt.UTC()
		chefAssignedAt = &at
	}

	return delegation.RestoreDelegation(delegation.Snapshot{
		ID:             id,
		SubscriptionID: subscriptionID,
		ChefID:         chefID,
		DriverID:       driverID,
		ChefAssignedAt: chefAssignedAt,
		Timeline:       timeline,
		Version:        dto.Version,
	})
}
