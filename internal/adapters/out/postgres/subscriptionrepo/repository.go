// Package subscriptionrepo persists meal subscriptions.
package subscriptionrepo

import (
	"context"
	"time"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/subscription"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const entityName = "subscription"

type SubscriptionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        int       `gorm:"type:smallint;not null"`
	StartDate     time.Time `gorm:"type:date;not null"`
	DurationWeeks int       `gorm:"not null"`
	ActivatedAt   *time.Time
	Version       int `gorm:"not null;default:0"`
}

func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

func fromDomain(s *subscription.Subscription) SubscriptionDTO {
	snap := s.Snapshot()
	return SubscriptionDTO{
		ID:            snap.ID.Bytes(),
		CustomerID:    snap.CustomerID.Bytes(),
		Status:        int(snap.Status),
		StartDate:     snap.StartDate,
		DurationWeeks: snap.DurationWeeks,
		ActivatedAt:   snap.ActivatedAt,
		Version:       snap.Version,
	}
}

func toDomain(dto SubscriptionDTO) (*subscription.Subscription, error) {
	id, err := dbutil.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := dbutil.ToUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var activatedAt *time.Time
	if dto.ActivatedAt != nil {
		at := dto.ActivatedAt.UTC()
		activatedAt = &at
	}

	return subscription.RestoreSubscription(subscription.Snapshot{
		ID:            id,
		CustomerID:    customerID,
		Status:        subscription.Status(dto.Status),
		StartDate:     dto.StartDate,
		DurationWeeks: dto.DurationWeeks,
		ActivatedAt:   activatedAt,
		Version:       dto.Version,
	})
}

type GormSubscriptionRepository struct {
	db *gorm.DB
}

func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

func (r *GormSubscriptionRepository) Add(ctx context.Context, aggregate *subscription.Subscription) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dbutil.Insert(ctx, r.db, entityName, dto.ID, &dto)
}

func (r *GormSubscriptionRepository) Update(ctx context.Context, aggregate *subscription.Subscription) error {
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

func (r *GormSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriptionDTO
	if err := dbutil.First(ctx, r.db, entityName, id.String(), &dto, "id = ?", id.Bytes()); err != nil {
		return nil, err
	}

	return toDomain(dto)
}
