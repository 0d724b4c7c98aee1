package commands

import (
	"context"
	"errors"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/reassignment"
	"mealflow/internal/pkg/errs"
)

// RequestReassignmentCommandHandler stores a pending request. The current
// chef is taken from the subscription's delegation when there is one.
type RequestReassignmentCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewRequestReassignmentCommandHandler creates a handler that files reassignment requests.
func NewRequestReassignmentCommandHandler(uowFactory UoWFactory, clock Clock) RequestReassignmentCommandHandler {
	return RequestReassignmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a pending request and returns its ID.
func (h RequestReassignmentCommandHandler) Handle(ctx context.Context, cmd RequestReassignmentCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.SubscriptionRepository().Get(ctx, cmd.SubscriptionID()); err != nil {
		return kernel.UUID{}, err
	}

	var currentChefID *kernel.UUID
	del, err := uow.DelegationRepository().GetBySubscription(ctx, cmd.SubscriptionID())
	switch {
	case err == nil:
		currentChefID = del.ChefID()
	case !errors.Is(err, errs.ErrObjectNotFound):
		return kernel.UUID{}, err
	}

	request, err := reassignment.NewRequest(
		kernel.NewUUID(),
		cmd.SubscriptionID(),
		currentChefID,
		cmd.RequestedChefID(),
		cmd.RequestedBy(),
		cmd.Reason(),
		cmd.Priority(),
		h.clock(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.ReassignmentRepository().Add(ctx, request); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return request.ID(), nil
}
