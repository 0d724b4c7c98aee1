package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mealflow/internal/core/application/notifications"
	"mealflow/internal/core/domain/model/chef"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/reassignment"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/pkg/errs"

	"github.com/rs/zerolog"
)

const (
	// DefaultAutoApproveAge is how long a low-priority request may stay pending.
	DefaultAutoApproveAge = 7 * 24 * time.Hour
	// DefaultAutoApproveBatch caps the requests handled by one sweep.
	DefaultAutoApproveBatch = 100
)

// AutoApproveResult counts the outcome of one sweep.
type AutoApproveResult struct {
	Approved int
	Skipped  int
	Failed   int
}

// AutoApproveReassignmentsCommandHandler approves pending low-priority
// requests older than maxAge. Each request is resolved in its own unit of
// work; one failing request does not stop the sweep.
//
// The target chef is the requested one when it has room, otherwise the
// least-loaded active chef with room other than the current one. Requests
// without a candidate stay pending.
type AutoApproveReassignmentsCommandHandler struct {
	uowFactory UoWFactory
	capacity   services.CapacityTracker
	publisher  EventPublisher
	clock      Clock
	maxAge     time.Duration
	batchSize  int
	retries    int
	logger     zerolog.Logger
}

// NewAutoApproveReassignmentsCommandHandler creates the sweep handler. Each
// approval that loses a chef capacity race is replayed up to retryAttempts
// times before it counts as failed.
func NewAutoApproveReassignmentsCommandHandler(
	uowFactory UoWFactory,
	capacity services.CapacityTracker,
	publisher EventPublisher,
	clock Clock,
	maxAge time.Duration,
	batchSize int,
	retryAttempts int,
	logger zerolog.Logger,
) AutoApproveReassignmentsCommandHandler {
	return AutoApproveReassignmentsCommandHandler{
		uowFactory: uowFactory,
		capacity:   capacity,
		publisher:  publisher,
		clock:      clock,
		maxAge:     maxAge,
		batchSize:  batchSize,
		retries:    retryAttempts,
		logger:     logger.With().Str("component", "reassignment_aging").Logger(),
	}
}

// Handle runs one sweep and reports how many requests were approved, skipped
// or failed.
func (h AutoApproveReassignmentsCommandHandler) Handle(
	ctx context.Context,
	cmd AutoApproveReassignmentsCommand,
) (AutoApproveResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutoApproveResult{}, err
	}

	now := h.clock()
	stale, err := h.listStale(ctx, now)
	if err != nil {
		return AutoApproveResult{}, err
	}

	var result AutoApproveResult
	for _, request := range stale {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		var approved bool
		err = withOptimisticRetry(ctx, h.retries, func(ctx context.Context) error {
			var err error
			approved, err = h.approve(ctx, request.ID(), now)
			return err
		})
		switch {
		case err != nil:
			result.Failed++
			h.logger.Error().Err(err).Str("request_id", request.ID().String()).Msg("auto-approval failed")
		case approved:
			result.Approved++
		default:
			result.Skipped++
		}
	}

	return result, nil
}

func (h AutoApproveReassignmentsCommandHandler) listStale(ctx context.Context, now time.Time) ([]*reassignment.Request, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.ReassignmentRepository().ListStalePending(ctx, now.Add(-h.maxAge), h.batchSize)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stale, nil
}

func (h AutoApproveReassignmentsCommandHandler) approve(ctx context.Context, requestID kernel.UUID, now time.Time) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requests := uow.ReassignmentRepository()
	request, err := requests.Get(ctx, requestID)
	if err != nil {
		return false, err
	}
	if !request.IsStale(now, h.maxAge) {
		return false, nil
	}

	chefID, found, err := h.pickChef(ctx, uow, request)
	if err != nil {
		return false, err
	}
	if !found {
		h.logger.Warn().
			Str("request_id", request.ID().String()).
			Str("subscription_id", request.SubscriptionID().String()).
			Msg("no chef with capacity, request left pending")
		return false, nil
	}

	if _, _, err = assignChef(ctx, uow, h.capacity, chefID, request.SubscriptionID(), now); err != nil {
		return false, err
	}

	days := int(h.maxAge / (24 * time.Hour))
	note := fmt.Sprintf("auto-approved after %d days pending", days)
	if err = request.Approve(chefID, note, now); err != nil {
		return false, err
	}
	if err = requests.Update(ctx, request); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	h.publisher.Publish(ctx, notifications.NewReassignmentResolvedEvent(request))
	h.logger.Info().
		Str("request_id", request.ID().String()).
		Str("chef_id", chefID.String()).
		Msg("reassignment auto-approved")
	return true, nil
}

func (h AutoApproveReassignmentsCommandHandler) pickChef(
	ctx context.Context,
	uow UoW,
	request *reassignment.Request,
) (kernel.UUID, bool, error) {
	chefs := uow.ChefRepository()
	delegations := uow.DelegationRepository()

	if requested := request.RequestedChefID(); requested != nil {
		c, err := chefs.Get(ctx, *requested)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			// fall back to the least-loaded chef
		case err != nil:
			return kernel.UUID{}, false, err
		default:
			loads, err := delegations.CountByChefs(ctx, []kernel.UUID{c.ID()})
			if err != nil {
				return kernel.UUID{}, false, err
			}
			if h.capacity.CheckChef(c, loads[c.ID()]) == nil {
				return c.ID(), true, nil
			}
		}
	}

	active, err := chefs.ListActive(ctx)
	if err != nil {
		return kernel.UUID{}, false, err
	}
	ids := make([]kernel.UUID, 0, len(active))
	for _, c := range active {
		ids = append(ids, c.ID())
	}
	loads, err := delegations.CountByChefs(ctx, ids)
	if err != nil {
		return kernel.UUID{}, false, err
	}

	var best *chef.Chef
	current := request.CurrentChefID()
	for _, c := range active {
		if current != nil && current.IsEqual(c.ID()) {
			continue
		}
		if h.capacity.CheckChef(c, loads[c.ID()]) != nil {
			continue
		}
		if best == nil || loads[c.ID()] < loads[best.ID()] {
			best = c
		}
	}
	if best == nil {
		return kernel.UUID{}, false, nil
	}
	return best.ID(), true, nil
}
