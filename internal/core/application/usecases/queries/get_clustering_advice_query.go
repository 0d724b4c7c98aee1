package queries

import (
	"errors"
	"fmt"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrGetClusteringAdviceQueryIsNotConstructed = errors.New(
	"GetClusteringAdviceQuery must be created via NewGetClusteringAdviceQuery constructor",
)

// GetClusteringAdviceQuery asks which of a driver's deliveries in [from, to)
// could be batched.
type GetClusteringAdviceQuery struct {
	driverID kernel.UUID
	from     time.Time
	to       time.Time

	guard guard.ConstructorGuard
}

// NewGetClusteringAdviceQuery creates a query for a driver's route clusters between from and to.
// Returns an error if the window is empty or reversed.
func NewGetClusteringAdviceQuery(driverID kernel.UUID, from, to time.Time) (GetClusteringAdviceQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetClusteringAdviceQuery{}, errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}
	if !from.Before(to) {
		return GetClusteringAdviceQuery{}, errs.NewValueIsInvalidErrorWithCause("window",
			fmt.Errorf("from %s is not before to %s", from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}

	return GetClusteringAdviceQuery{
		driverID: driverID,
		from:     from.UTC(),
		to:       to.UTC(),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the query was built through its constructor.
func (q GetClusteringAdviceQuery) Validate() error {
	return q.guard.Validate(ErrGetClusteringAdviceQueryIsNotConstructed)
}

// DriverID returns the driver to advise.
func (q GetClusteringAdviceQuery) DriverID() kernel.UUID {
	return q.driverID
}

// From returns the start of the window.
func (q GetClusteringAdviceQuery) From() time.Time {
	return q.from
}

// To returns the end of the window.
func (q GetClusteringAdviceQuery) To() time.Time {
	return q.to
}

// CacheKey identifies the query result in the advice cache.
func (q GetClusteringAdviceQuery) CacheKey() string {
	return fmt.Sprintf("clustering:%s:%d:%d", q.driverID, q.from.Unix(), q.to.Unix())
}

// ClusterAdvice is one batching opportunity in a cache- and JSON-friendly
// shape.
type ClusterAdvice struct {
	Kind                   string   `json:"kind"`
	Key                    string   `json:"key"`
	Area                   string   `json:"area"`
	TimeSlot               string   `json:"timeSlot,omitempty"`
	Deliveries             int      `json:"deliveries"`
	AssignmentIDs          []string `json:"assignmentIds"`
	TotalDurationSeconds   int64    `json:"totalDurationSeconds"`
	EstimatedSavingSeconds int64    `json:"estimatedSavingSeconds"`
}
