package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition          = errors.New("invalid transition")
	ErrInvalidState               = errors.New("invalid state")
	ErrChefUnavailable            = errors.New("chef unavailable")
	ErrNoCapacity                 = errors.New("no capacity")
	ErrInvalidConfirmationCode    = errors.New("invalid confirmation code")
	ErrAlreadyResolved            = errors.New("already resolved")
	ErrConflict                   = errors.New("conflict")
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)

// InvalidTransitionError reports a status change the transition matrix forbids.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To), e.Cause)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError reports an operation attempted in a state that does not allow it.
type InvalidStateError struct {
	Entity    string
	State     string
	Operation string
}

func NewInvalidStateError(entity, state, operation string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, State: state, Operation: operation}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s in state %s cannot %s", ErrInvalidState, e.Entity, e.State, e.Operation)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ChefUnavailableError reports an inactive or fully booked chef.
type ChefUnavailableError struct {
	ChefID string
	Reason string
}

func NewChefUnavailableError(chefID, reason string) *ChefUnavailableError {
	return &ChefUnavailableError{ChefID: chefID, Reason: reason}
}

func (e *ChefUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrChefUnavailable, e.ChefID, e.Reason)
}

func (e *ChefUnavailableError) Unwrap() error {
	return ErrChefUnavailable
}

// ConflictError reports a compare-and-swap write that lost a concurrent race.
type ConflictError struct {
	Entity          string
	ID              any
	ExpectedVersion int
}

func NewConflictError(entity string, id any, expectedVersion int) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, ExpectedVersion: expectedVersion}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s was modified concurrently (expected version %d)",
		ErrConflict, e.Entity, sanitize(e.ID), e.ExpectedVersion)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NotificationDeliveryError reports a failed send to one fan-out target.
type NotificationDeliveryError struct {
	Target string
	Cause  error
}

func NewNotificationDeliveryError(target string, cause error) *NotificationDeliveryError {
	return &NotificationDeliveryError{Target: target, Cause: cause}
}

func (e *NotificationDeliveryError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrNotificationDeliveryFailed, e.Target), e.Cause)
}

func (e *NotificationDeliveryError) Unwrap() []error {
	return []error{ErrNotificationDeliveryFailed, e.Cause}
}
