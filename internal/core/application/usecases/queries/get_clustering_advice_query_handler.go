package queries

import (
	"context"

	"mealflow/internal/core/domain/services"
	"mealflow/internal/core/ports"

	"github.com/rs/zerolog"
)

// AdviceCache stores clustering results for a short time. A miss returns
// found == false and no error.
type AdviceCache interface {
	Get(ctx context.Context, key string) (advice []ClusterAdvice, found bool, err error)
	Set(ctx context.Context, key string, advice []ClusterAdvice) error
}

// GetClusteringAdviceQueryHandler runs the clustering advisor over the
// driver's assignments in the window. Cache errors are logged and otherwise
// ignored: the advice can always be recomputed.
type GetClusteringAdviceQueryHandler struct {
	assignments ports.AssignmentRepository
	advisor     *services.RouteClusteringAdvisor
	cache       AdviceCache
	logger      zerolog.Logger
}

// NewGetClusteringAdviceQueryHandler accepts a nil cache.
func NewGetClusteringAdviceQueryHandler(
	assignments ports.AssignmentRepository,
	advisor *services.RouteClusteringAdvisor,
	cache AdviceCache,
	logger zerolog.Logger,
) GetClusteringAdviceQueryHandler {
	return GetClusteringAdviceQueryHandler{
		assignments: assignments,
		advisor:     advisor,
		cache:       cache,
		logger:      logger.With().Str("component", "clustering_advice").Logger(),
	}
}

// Handle returns cached advice when present, otherwise computes and caches it.
func (h GetClusteringAdviceQueryHandler) Handle(ctx context.Context, query GetClusteringAdviceQuery) ([]ClusterAdvice, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := query.CacheKey()
	if h.cache != nil {
		cached, found, err := h.cache.Get(ctx, key)
		switch {
		case err != nil:
			h.logger.Warn().Err(err).Str("key", key).Msg("advice cache read failed")
		case found:
			return cached, nil
		}
	}

	assignments, err := h.assignments.ListByDriverInWindow(ctx, query.DriverID(), query.From(), query.To())
	if err != nil {
		return nil, err
	}

	opportunities := h.advisor.Advise(assignments)
	advice := make([]ClusterAdvice, 0, len(opportunities))
	for _, o := range opportunities {
		ids := make([]string, 0, len(o.AssignmentIDs))
		for _, id := range o.AssignmentIDs {
			ids = append(ids, id.String())
		}
		advice = append(advice, ClusterAdvice{
			Kind:                   string(o.Kind),
			Key:                    o.Key,
			Area:                   o.Area,
			TimeSlot:               string(o.TimeSlot),
			Deliveries:             o.Deliveries(),
			AssignmentIDs:          ids,
			TotalDurationSeconds:   int64(o.TotalDuration.Seconds()),
			EstimatedSavingSeconds: int64(o.EstimatedSaving.Seconds()),
		})
	}

	if h.cache != nil {
		if err = h.cache.Set(ctx, key, advice); err != nil {
			h.logger.Warn().Err(err).Str("key", key).Msg("advice cache write failed")
		}
	}
	return advice, nil
}
