// Package errs provides the error taxonomy shared by every layer of the service.
//
// Each kind follows the same pattern:
//   - a sentinel error (ErrObjectNotFound, ErrInvalidTransition, ...) callers match with errors.Is
//   - a struct carrying the details and an optional Cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Validation kinds (ValueIsRequired, ValueIsInvalid, ValueIsOutOfRange) come from
// constructors of value objects and aggregates. Orchestration kinds
// (InvalidTransition, InvalidState, ChefUnavailable, NoCapacity,
// InvalidConfirmationCode, AlreadyResolved, Conflict) come from the state
// machines and command handlers. NotificationDeliveryFailed is only ever
// reported by the notification fan-out; it is never returned from a command.
package errs
