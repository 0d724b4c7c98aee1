package queries

import (
	"context"

	"mealflow/internal/core/domain/model/reassignment"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetReassignmentQueueQueryHandler reads the queue straight from the
// reassignment_requests table.
type GetReassignmentQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetReassignmentQueueQueryHandler creates a handler reading the queue straight from db.
func NewGetReassignmentQueueQueryHandler(db *gorm.DB) GetReassignmentQueueQueryHandler {
	return GetReassignmentQueueQueryHandler{db: db}
}

// Handle returns pending requests ordered by priority (urgent first), then
// by age (oldest first).
func (h GetReassignmentQueueQueryHandler) Handle(
	ctx context.Context,
	query GetReassignmentQueueQuery,
) ([]GetReassignmentQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetReassignmentQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			subscription_id,
			current_chef_id,
			requested_chef_id,
			reason,
			priority,
			created_at
		FROM reassignment_requests
		WHERE status = ?
		ORDER BY priority DESC, created_at ASC, id
		LIMIT ?
	`, int(reassignment.Pending), query.Limit()).Rows()
	if err != nil {
		return nil, errors.Wrap(err, "query reassignment queue")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                   GetReassignmentQueueQueryResponse
			id, subscriptionID     uuid.UUID
			currentChef, requested uuid.NullUUID
			priority               int
		)

		err = rows.Scan(
			&id,
			&subscriptionID,
			&currentChef,
			&requested,
			&item.Reason,
			&priority,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan reassignment request")
		}

		item.ID = id.String()
		item.SubscriptionID = subscriptionID.String()
		item.CurrentChefID = nullableString(currentChef)
		item.RequestedChefID = nullableString(requested)
		item.Priority = reassignment.Priority(priority).String()
		item.CreatedAt = item.CreatedAt.UTC()
		queue = append(queue, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate reassignment queue")
	}

	return queue, nil
}

func nullableString(id uuid.NullUUID) *string {
	if !id.Valid {
		return nil
	}
	s := id.UUID.String()
	return &s
}
