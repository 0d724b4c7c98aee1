// Package reassignmentrepo persists chef reassignment requests.
package reassignmentrepo

import (
	"context"
	"time"

	"mealflow/internal/adapters/out/postgres/dbutil"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/reassignment"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const entityName = "reassignment request"

// RequestDTO stores priority as its ordinal so the queue can sort on it.
type RequestDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SubscriptionID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CurrentChefID   *uuid.UUID `gorm:"type:uuid"`
	RequestedChefID *uuid.UUID `gorm:"type:uuid"`
	RequestedBy     uuid.UUID  `gorm:"type:uuid;not null"`
	Reason          string     `gorm:"not null"`
	Priority        int        `gorm:"type:smallint;not null"`
	Status          int        `gorm:"type:smallint;not null;index"`
	ResolutionNote  string
	CreatedAt       time.Time `gorm:"not null;index"`
	ResolvedAt      *time.Time
	Version         int `gorm:"not null;default:0"`
}

func (RequestDTO) TableName() string {
	return "reassignment_requests"
}

func fromDomain(r *reassignment.Request) RequestDTO {
	s := r.Snapshot()
	return RequestDTO{
		ID:              s.ID.Bytes(),
		SubscriptionID:  s.SubscriptionID.Bytes(),
		CurrentChefID:   dbutil.UUIDPtr(s.CurrentChefID),
		RequestedChefID: dbutil.UUIDPtr(s.RequestedChefID),
		RequestedBy:     s.RequestedBy.Bytes(),
		Reason:          s.Reason,
		Priority:        int(s.Priority),
		Status:          int(s.Status),
		ResolutionNote:  s.ResolutionNote,
		CreatedAt:       s.CreatedAt,
		ResolvedAt:      s.ResolvedAt,
		Version:         s.Version,
	}
}

func toDomain(dto RequestDTO) (*reassignment.Request, error) {
	id, err := dbutil.ToUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	subscriptionID, err := dbutil.ToUUID(dto.SubscriptionID)
	if err != nil {
		return nil, err
	}
	currentChefID, err := dbutil.ToUUIDPtr(dto.CurrentChefID)
	if err != nil {
		return nil, err
	}
	requestedChefID, err := dbutil.ToUUIDPtr(dto.RequestedChefID)
	if err != nil {
		return nil, err
	}
	requestedBy, err := dbutil.ToUUID(dto.RequestedBy)
	if err != nil {
		return nil, err
	}

	var resolvedAt *time.Time
	if dto.ResolvedAt != nil {
		at := dto.ResolvedAt.UTC()
		resolvedAt = &at
	}

	return reassignment.RestoreRequest(reassignment.Snapshot{
		ID:              id,
		SubscriptionID:  subscriptionID,
		CurrentChefID:   currentChefID,
		RequestedChefID: requestedChefID,
		RequestedBy:     requestedBy,
		Reason:          dto.Reason,
		Priority:        reassignment.Priority(dto.Priority),
		Status:          reassignment.Status(dto.Status),
		ResolutionNote:  dto.ResolutionNote,
		CreatedAt:       dto.CreatedAt.UTC(),
		ResolvedAt:      resolvedAt,
		Version:         dto.Version,
	})
}

type GormReassignmentRepository struct {
	db *gorm.DB
}

func NewGormReassignmentRepository(db *gorm.DB) *GormReassignmentRepository {
	return &GormReassignmentRepository{db: db}
}

func (r *GormReassignmentRepository) Add(ctx context.Context, aggregate *reassignment.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dbutil.Insert(ctx, r.db, entityName, dto.ID, &dto)
}

func (r *GormReassignmentRepository) Update(ctx context.Context, aggregate *reassignment.Request) error {
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

func (r *GormReassignmentRepository) Get(ctx context.Context, id kernel.UUID) (*reassignment.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := dbutil.First(ctx, r.db, entityName, id.String(), &dto, "id = ?", id.Bytes()); err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormReassignmentRepository) ListStalePending(
	ctx context.Context,
	olderThan time.Time,
	limit int,
) ([]*reassignment.Request, error) {
	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND priority = ? AND created_at < ?", int(reassignment.Pending), int(reassignment.Low), olderThan).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errors.Wrap(err, "list stale reassignment requests")
	}

	requests := make([]*reassignment.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
