// Package orderrepo persists the order aggregate.
package orderrepo

import (
	"time"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of the orders table. Subscription orders carry the
// subscription id and the meal slot; one-off orders leave them NULL.
type OrderDTO struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	SubscriptionID     *uuid.UUID        `gorm:"type:uuid;index"`
	Slot               dbutil.SlotDTO    `gorm:"embedded;embeddedPrefix:slot_"`
	ChefID             *uuid.UUID        `gorm:"type:uuid;index"`
	Address            dbutil.AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status             int               `gorm:"type:smallint;not null;index"`
	PaymentStatus      int               `gorm:"type:smallint;not null"`
	CreatedAt          time.Time         `gorm:"not null"`
	ConfirmedAt        *time.Time
	InProgressAt       *time.Time
	CompletedAt        *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	Version            int `gorm:"not null;default:0"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	return OrderDTO{
		ID:                 s.ID.Bytes(),
		CustomerID:         s.CustomerID.Bytes(),
		SubscriptionID:     dbutil.UUIDPtr(s.SubscriptionID),
		Slot:               dbutil.FromSlot(s.MealSlot),
		ChefID:             dbutil.UUIDPtr(s.ChefID),
		Address:            dbutil.FromAddress(s.Address),
		Status:             int(s.Status),
		PaymentStatus:      int(s.PaymentStatus),
		CreatedAt:          s.CreatedAt,
		ConfirmedAt:        s.ConfirmedAt,
		InProgressAt:       s.InProgressAt,
		CompletedAt:        s.CompletedAt,
		DeliveredAt:        s.DeliveredAt,
		CancelledAt:        s.CancelledAt,
		CancellationReason: s.CancellationReason,
		Version:            s.Version,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := dbutil.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := dbutil.ToUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	subscriptionID, err := dbutil.ToUUIDPtr(dto.SubscriptionID)
	if err != nil {
		return nil, err
	}
	chefID, err := dbutil.ToUUIDPtr(dto.ChefID)
	if err != nil {
		return nil, err
	}
	slot, err := dto.Slot.ToSlot()
	if err != nil {
		return nil, err
	}
	address, err := dto.Address.ToAddress()
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 id,
		CustomerID:         customerID,
		SubscriptionID:     subscriptionID,
		MealSlot:           slot,
		ChefID:             chefID,
		Address:            address,
		Status:             order.Status(dto.Status),
		PaymentStatus:      order.PaymentStatus(dto.PaymentStatus),
		CreatedAt:          dto.CreatedAt.UTC(),
		ConfirmedAt:        utc(dto.ConfirmedAt),
		InProgressAt:       utc(dto.InProgressAt),
		CompletedAt:        utc(dto.CompletedAt),
		DeliveredAt:        utc(dto.DeliveredAt),
		CancelledAt:        utc(dto.CancelledAt),
		CancellationReason: dto.CancellationReason,
		Version:            dto.Version,
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

