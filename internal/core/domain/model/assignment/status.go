package assignment

import (
	"fmt"

	"mealflow/internal/pkg/errs"
)

// Status of a driver assignment:
//
//	Assigned ──> PickedUp ──> Delivered
//	    │            │
//	    └────────────┴──> Cancelled
type Status int

const (
	Unknown Status = iota
	Assigned
	PickedUp
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal is true for Delivered and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
