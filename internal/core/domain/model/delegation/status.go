package delegation

import (
	"fmt"

	"mealflow/internal/pkg/errs"
)

// EntryStatus of one meal in the daily timeline. It only moves forward:
// pending < ready < delivered.
type EntryStatus int

const (
	EntryUnknown EntryStatus = iota
	EntryPending
	EntryReady
	EntryDelivered
)

func getEntryStatusStrings() map[EntryStatus]string {
	return map[EntryStatus]string{
		EntryPending:   "pending",
		EntryReady:     "ready",
		EntryDelivered: "delivered",
	}
}

func (s EntryStatus) Validate() error {
	if _, ok := getEntryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("entryStatus", fmt.Errorf("%d is not a valid timeline status", s))
	}
	return nil
}

func (s EntryStatus) String() string {
	if str, ok := getEntryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Status is the delegation-level status. It is derived from the chef and the
// timeline on every read and never stored.
type Status int

const (
	NotAssigned Status = iota
	Assigned
	InProgress
	Ready
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		NotAssigned: "Not Assigned",
		Assigned:    "Assigned",
		InProgress:  "In Progress",
		Ready:       "Ready",
		Delivered:   "Delivered",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
