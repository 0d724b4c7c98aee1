// Package assignmentrepo persists driver assignments. A target is either an
// order id or a (subscription, slot) pair; partial unique indexes created by
// the migration keep at most one active assignment per target.
package assignmentrepo

import (
	"time"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AssignmentDTO struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	DriverID           uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderID            *uuid.UUID        `gorm:"type:uuid;index"`
	SubscriptionID     *uuid.UUID        `gorm:"type:uuid;index"`
	Slot               dbutil.SlotDTO    `gorm:"embedded;embeddedPrefix:slot_"`
	Code               *string           `gorm:"size:16"`
	Status             int               `gorm:"type:smallint;not null;index"`
	Pickup             dbutil.AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff            dbutil.AddressDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	EstimatedPickupAt  time.Time         `gorm:"not null"`
	EstimatedDeliverAt time.Time         `gorm:"not null;index"`
	EstimatedSeconds   int64             `gorm:"not null"`
	AssignedAt         time.Time         `gorm:"not null"`
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	EarningsBase       decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	EarningsBonus      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	EarningsTotal      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Version            int                 `gorm:"not null;default:0"`
}

func (AssignmentDTO) TableName() string {
	return "driver_assignments"
}

// activeStatuses are the non-terminal statuses counted as driver load.
var activeStatuses = []int{int(assignment.Assigned), int(assignment.PickedUp)}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	s := a.Snapshot()

	var code *string
	if s.Code != nil {
		c := s.Code.String()
		code = &c
	}

	dto := AssignmentDTO{
		ID:                 s.ID.Bytes(),
		DriverID:           s.DriverID.Bytes(),
		OrderID:            dbutil.UUIDPtr(s.Target.OrderID()),
		SubscriptionID:     dbutil.UUIDPtr(s.Target.SubscriptionID()),
		Slot:               dbutil.FromSlot(s.Target.Slot()),
		Code:               code,
		Status:             int(s.Status),
		Pickup:             dbutil.FromAddress(s.Pickup),
		Dropoff:            dbutil.FromAddress(s.Dropoff),
		EstimatedPickupAt:  s.Estimate.PickupAt,
		EstimatedDeliverAt: s.Estimate.DeliveryAt,
		EstimatedSeconds:   int64(s.Estimate.Duration / time.Second),
		AssignedAt:         s.AssignedAt,
		PickedUpAt:         s.PickedUpAt,
		DeliveredAt:        s.DeliveredAt,
		CancelledAt:        s.CancelledAt,
		CancellationReason: s.CancellationReason,
		Version:            s.Version,
	}
	if s.Earnings != nil {
		dto.EarningsBase = decimal.NewNullDecimal(s.Earnings.Base)
		dto.EarningsBonus = decimal.NewNullDecimal(s.Earnings.Bonus)
		dto.EarningsTotal = decimal.NewNullDecimal(s.Earnings.Total)
	}
	return dto
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := dbutil.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	driverID, err := dbutil.ToUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}
	target, err := toTarget(dto)
	if err != nil {
		return nil, err
	}
	pickup, err := dto.Pickup.ToAddress()
	if err != nil {
		return nil, err
	}
	dropoff, err := dto.Dropoff.ToAddress()
	if err != nil {
		return nil, err
	}

	var code *assignment.ConfirmationCode
	if dto.Code != nil {
		c, codeErr := assignment.NewConfirmationCode(*dto.Code)
		if codeErr != nil {
			return nil, codeErr
		}
		code = &c
	}

	var earnings *assignment.Earnings
	if dto.EarningsTotal.Valid {
		e, earnErr := assignment.NewEarnings(dto.EarningsBase.Decimal, dto.EarningsBonus.Decimal)
		if earnErr != nil {
			return nil, earnErr
		}
		earnings = &e
	}

	return assignment.RestoreAssignment(assignment.Snapshot{
		ID:       id,
		DriverID: driverID,
		Target:   target,
		Code:     code,
		Status:   assignment.Status(dto.Status),
		Pickup:   pickup,
		Dropoff:  dropoff,
		Estimate: assignment.Estimate{
			PickupAt:   dto.EstimatedPickupAt.UTC(),
			DeliveryAt: dto.EstimatedDeliverAt.UTC(),
			Duration:   time.Duration(dto.EstimatedSeconds) * time.Second,
		},
		AssignedAt:         dto.AssignedAt.UTC(),
		PickedUpAt:         utc(dto.PickedUpAt),
		DeliveredAt:        utc(dto.DeliveredAt),
		CancelledAt:        utc(dto.CancelledAt),
		CancellationReason: dto.CancellationReason,
		Earnings:           earnings,
		Version:            dto.Version,
	})
}

func toTarget(dto AssignmentDTO) (assignment.Target, error) {
	if dto.OrderID != nil {
		orderID, err := dbutil.ToUUID(*dto.OrderID)
		if err != nil {
			return assignment.Target{}, err
		}
		return assignment.OrderTarget(orderID)
	}

	var subscriptionID kernel.UUID
	if dto.SubscriptionID != nil {
		id, err := dbutil.ToUUID(*dto.SubscriptionID)
		if err != nil {
			return assignment.Target{}, err
		}
		subscriptionID = id
	}
	slot, err := dto.Slot.ToSlot()
	if err != nil {
		return assignment.Target{}, err
	}
	if slot == nil {
		return assignment.Target{}, assignment.Target{}.Validate()
	}
	return assignment.SubscriptionDayTarget(subscriptionID, *slot)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
