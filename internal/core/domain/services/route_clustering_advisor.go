package services

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
)

type TimeSlot string

const (
	Morning   TimeSlot = "morning"
	Afternoon TimeSlot = "afternoon"
	Evening   TimeSlot = "evening"
)

// TimeSlotOf buckets an hour: morning [0,12), afternoon [12,17), evening [17,24).
func TimeSlotOf(t time.Time) TimeSlot {
	switch h := t.Hour(); {
	case h < 12:
		return Morning
	case h < 17:
		return Afternoon
	default:
		return Evening
	}
}

type ClusterKind string

const (
	ClusterByArea         ClusterKind = "area"
	ClusterByTimeSlotArea ClusterKind = "time_slot_area"
)

// ClusterOpportunity is a group of deliveries worth batching into one run.
type ClusterOpportunity struct {
	Kind            ClusterKind
	Key             string
	Area            string
	TimeSlot        TimeSlot
	AssignmentIDs   []kernel.UUID
	TotalDuration   time.Duration
	EstimatedSaving time.Duration
}

func (c ClusterOpportunity) Deliveries() int {
	return len(c.AssignmentIDs)
}

const (
	DefaultClusterMinSize      = 3
	DefaultClusterSavingsRatio = 0.2
)

// RouteClusteringAdvisor scores batching opportunities. It is advisory only:
// nothing it returns changes an assignment.
type RouteClusteringAdvisor struct {
	minSize  int
	ratio    float64
	timezone *time.Location
}

// NewRouteClusteringAdvisor buckets time slots in timezone (UTC when nil).
func NewRouteClusteringAdvisor(minSize int, ratio float64, timezone *time.Location) (*RouteClusteringAdvisor, error) {
	if minSize < 2 {
		return nil, errs.NewValueIsOutOfRangeError("clusterMinSize", minSize, 2, "unbounded")
	}
	if ratio <= 0 || ratio >= 1 {
		return nil, errs.NewValueIsOutOfRangeError("clusterSavingsRatio", ratio, 0, 1)
	}
	if timezone == nil {
		timezone = time.UTC
	}
	return &RouteClusteringAdvisor{minSize: minSize, ratio: ratio, timezone: timezone}, nil
}

// Advise groups the non-cancelled assignments by drop-off area and by
// (time slot, area), keeps groups of at least minSize and ranks them by
// saving desc, then group size desc, then key.
func (a *RouteClusteringAdvisor) Advise(assignments []*assignment.Assignment) []ClusterOpportunity {
	groups := make(map[string]*ClusterOpportunity)
	order := make([]string, 0)

	add := func(kind ClusterKind, key, area string, slot TimeSlot, as *assignment.Assignment) {
		mapKey := string(kind) + "|" + key
		g, ok := groups[mapKey]
		if !ok {
			g = &ClusterOpportunity{Kind: kind, Key: key, Area: area, TimeSlot: slot}
			groups[mapKey] = g
			order = append(order, mapKey)
		}
		g.AssignmentIDs = append(g.AssignmentIDs, as.ID())
		g.TotalDuration += as.Estimate().Duration
	}

	for _, as := range assignments {
		if as.Status() == assignment.Cancelled {
			continue
		}
		area := as.Dropoff().AreaKey()
		slot := TimeSlotOf(as.Estimate().DeliveryAt.In(a.timezone))

		add(ClusterByArea, area, as.Dropoff().Area(), "", as)
		add(ClusterByTimeSlotArea, fmt.Sprintf("%s/%s", slot, area), as.Dropoff().Area(), slot, as)
	}

	out := make([]ClusterOpportunity, 0, len(order))
	for _, k := range order {
		g := groups[k]
		if g.Deliveries() < a.minSize {
			continue
		}
		g.EstimatedSaving = time.Duration(math.Round(float64(g.TotalDuration) * a.ratio)).Round(time.Second)
		out = append(out, *g)
	}

	slices.SortFunc(out, func(x, y ClusterOpportunity) int {
		if x.EstimatedSaving != y.EstimatedSaving {
			if x.EstimatedSaving > y.EstimatedSaving {
				return -1
			}
			return 1
		}
		if x.Deliveries() != y.Deliveries() {
			return y.Deliveries() - x.Deliveries()
		}
		if c := strings.Compare(x.Key, y.Key); c != 0 {
			return c
		}
		return strings.Compare(string(x.Kind), string(y.Kind))
	})

	return out
}
