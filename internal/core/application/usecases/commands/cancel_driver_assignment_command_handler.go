package commands

import (
	"context"

	"mealflow/internal/core/domain/model/assignment"
)

// CancelDriverAssignmentCommandHandler releases the driver from a
// non-terminal assignment. The order keeps its status so it can be
// re-dispatched.
type CancelDriverAssignmentCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewCancelDriverAssignmentCommandHandler creates a handler that cancels driver assignments.
func NewCancelDriverAssignmentCommandHandler(uowFactory UoWFactory, clock Clock) CancelDriverAssignmentCommandHandler {
	return CancelDriverAssignmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle cancels an active assignment. Terminal assignments are rejected.
func (h CancelDriverAssignmentCommandHandler) Handle(
	ctx context.Context,
	cmd CancelDriverAssignmentCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignments := uow.AssignmentRepository()
	a, err := assignments.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	if err = a.Cancel(cmd.Reason(), h.clock()); err != nil {
		return nil, err
	}

	if err = assignments.Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
