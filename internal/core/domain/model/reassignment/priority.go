package reassignment

import (
	"fmt"
	"strings"

	"mealflow/internal/pkg/errs"
)

// Priority orders the reassignment queue: low < normal < high < urgent.
type Priority int

const (
	PriorityUnknown Priority = iota
	Low
	Normal
	High
	Urgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Low:    "low",
		Normal: "normal",
		High:   "high",
		Urgent: "urgent",
	}
}

func ParsePriority(s string) (Priority, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for p, name := range getPriorityStrings() {
		if name == needle {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "unknown"
}

type Status int

const (
	StatusUnknown Status = iota
	Pending
	Approved
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
