package order

import (
	"fmt"
	"strings"

	"mealflow/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	InProgress
	Completed
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		InProgress: "InProgress",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getTransitionMatrix lists every permitted (from, to) pair. Anything absent
// is forbidden.
func getTransitionMatrix() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no exits
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {Delivered, Cancelled},
	}
}

// ParseStatus maps a status name (case-insensitive) to a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if st != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo consults the transition matrix.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitionMatrix()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// PaymentStatus mirrors the state reported by the payment gateway.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:  "Pending",
		PaymentPaid:     "Paid",
		PaymentFailed:   "Failed",
		PaymentRefunded: "Refunded",
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for st, name := range getPaymentStatusStrings() {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
