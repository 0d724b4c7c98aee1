package queries

import (
	"context"
	"errors"

	"mealflow/internal/core/domain/model/delegation"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/ports"
	"mealflow/internal/pkg/errs"
)

// GetSubscriptionTimelineQueryHandler reads the subscription and its
// delegation. A subscription without a delegation reports Not Assigned.
type GetSubscriptionTimelineQueryHandler struct {
	subscriptions ports.SubscriptionRepository
	delegations   ports.DelegationRepository
}

// NewGetSubscriptionTimelineQueryHandler creates a handler over the subscription and delegation repositories.
func NewGetSubscriptionTimelineQueryHandler(
	subscriptions ports.SubscriptionRepository,
	delegations ports.DelegationRepository,
) GetSubscriptionTimelineQueryHandler {
	return GetSubscriptionTimelineQueryHandler{subscriptions: subscriptions, delegations: delegations}
}

// Handle returns the subscription with its chef and per-day meal progress.
func (h GetSubscriptionTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetSubscriptionTimelineQuery,
) (GetSubscriptionTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSubscriptionTimelineQueryResponse{}, err
	}

	sub, err := h.subscriptions.Get(ctx, query.SubscriptionID())
	if err != nil {
		return GetSubscriptionTimelineQueryResponse{}, err
	}

	resp := GetSubscriptionTimelineQueryResponse{
		SubscriptionID:     sub.ID().String(),
		SubscriptionStatus: sub.Status().String(),
		Status:             delegation.NotAssigned.String(),
		Entries:            []TimelineEntry{},
	}

	del, err := h.delegations.GetBySubscription(ctx, sub.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return resp, nil
	}
	if err != nil {
		return GetSubscriptionTimelineQueryResponse{}, err
	}

	resp.Status = del.Status().String()
	resp.ChefID = optionalString(del.ChefID())
	resp.DriverID = optionalString(del.DriverID())
	for _, e := range del.Timeline() {
		resp.Entries = append(resp.Entries, TimelineEntry{
			Date:      e.Slot.DateString(),
			MealTime:  e.Slot.MealTime().String(),
			Status:    e.Status.String(),
			UpdatedAt: e.UpdatedAt,
		})
	}
	return resp, nil
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
