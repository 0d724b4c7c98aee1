package commands

import (
	"context"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/domain/model/reassignment"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/pkg/errs"
)

// ResolveReassignmentCommandHandler approves or rejects a pending request.
// Approval re-validates the target chef and delegates the subscription in the
// same unit of work.
type ResolveReassignmentCommandHandler struct {
	uowFactory    UoWFactory
	capacity      services.CapacityTracker
	publisher     EventPublisher
	clock         Clock
	retryAttempts int
}

// NewResolveReassignmentCommandHandler creates a handler that retries lost
// chef capacity races up to retryAttempts times.
func NewResolveReassignmentCommandHandler(
	uowFactory UoWFactory,
	capacity services.CapacityTracker,
	publisher EventPublisher,
	clock Clock,
	retryAttempts int,
) ResolveReassignmentCommandHandler {
	return ResolveReassignmentCommandHandler{
		uowFactory:    uowFactory,
		capacity:      capacity,
		publisher:     publisher,
		clock:         clock,
		retryAttempts: retryAttempts,
	}
}

// Handle resolves the request and publishes the outcome after the commit.
func (h ResolveReassignmentCommandHandler) Handle(
	ctx context.Context,
	cmd ResolveReassignmentCommand,
) (*reassignment.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var request *reassignment.Request
	err := withOptimisticRetry(ctx, h.retryAttempts, func(ctx context.Context) error {
		r, err := h.resolve(ctx, cmd)
		request = r
		return err
	})
	if err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, notifications.NewReassignmentResolvedEvent(request))
	return request, nil
}

func (h ResolveReassignmentCommandHandler) resolve(
	ctx context.Context,
	cmd ResolveReassignmentCommand,
) (*reassignment.Request, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requests := uow.ReassignmentRepository()
	request, err := requests.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}
	if err = request.EnsurePending(); err != nil {
		return nil, err
	}

	now := h.clock()
	if cmd.Approve() {
		chefID := cmd.NewChefID()
		if chefID == nil {
			chefID = request.RequestedChefID()
		}
		if chefID == nil {
			return nil, errs.NewValueIsRequiredError("newChefId")
		}

		if _, _, err = assignChef(ctx, uow, h.capacity, *chefID, request.SubscriptionID(), now); err != nil {
			return nil, err
		}
		err = request.Approve(*chefID, cmd.Note(), now)
	} else {
		err = request.Reject(cmd.Note(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = requests.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return request, nil
}
