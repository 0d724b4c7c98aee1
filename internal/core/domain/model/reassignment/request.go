// Package reassignment holds ChefReassignmentRequest, the queue item asking
// for a subscription to move to another chef.
package reassignment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is an aggregate root. resolvedAt is set exactly when the status
// leaves Pending; Approved and Rejected are terminal.
type Request struct {
	kernel.Versioned

	id             kernel.UUID
	subscriptionID kernel.UUID
	currentChefID  *kernel.UUID
	requestedChef  *kernel.UUID
	requestedBy    kernel.UUID
	reason         string
	priority       Priority
	status         Status
	resolutionNote string
	createdAt      time.Time
	resolvedAt     *time.Time

	guard guard.ConstructorGuard
}

func NewRequest(
	id, subscriptionID kernel.UUID,
	currentChefID, requestedChefID *kernel.UUID,
	requestedBy kernel.UUID,
	reason string,
	priority Priority,
	now time.Time,
) (*Request, error) {
	r := &Request{
		currentChefID: currentChefID,
		requestedChef: requestedChefID,
		status:        Pending,
		createdAt:     now.UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setSubscriptionID(subscriptionID),
		r.setRequestedBy(requestedBy),
		r.setReason(reason),
		r.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return r, nil
}

type Snapshot struct {
	ID              kernel.UUID
	SubscriptionID  kernel.UUID
	CurrentChefID   *kernel.UUID
	RequestedChefID *kernel.UUID
	RequestedBy     kernel.UUID
	Reason          string
	Priority        Priority
	Status          Status
	ResolutionNote  string
	CreatedAt       time.Time
	ResolvedAt      *time.Time
	Version         int
}

func RestoreRequest(s Snapshot) (*Request, error) {
	r, err := NewRequest(s.ID, s.SubscriptionID, s.CurrentChefID, s.RequestedChefID, s.RequestedBy, s.Reason, s.Priority, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	if (s.ResolvedAt != nil) != (s.Status != Pending) {
		return nil, errs.NewValueIsInvalidErrorWithCause("resolvedAt", errors.New("resolvedAt must be set exactly when the request is resolved"))
	}

	r.status = s.Status
	r.resolutionNote = s.ResolutionNote
	r.resolvedAt = s.ResolvedAt
	r.Versioned = kernel.RestoreVersioned(s.Version)
	return r, nil
}

func (r *Request) Snapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		SubscriptionID:  r.subscriptionID,
		CurrentChefID:   r.currentChefID,
		RequestedChefID: r.requestedChef,
		RequestedBy:     r.requestedBy,
		Reason:          r.reason,
		Priority:        r.priority,
		Status:          r.status,
		ResolutionNote:  r.resolutionNote,
		CreatedAt:       r.createdAt,
		ResolvedAt:      r.resolvedAt,
		Version:         r.Version(),
	}
}

func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) SubscriptionID() kernel.UUID {
	return r.subscriptionID
}

func (r *Request) CurrentChefID() *kernel.UUID {
	return r.currentChefID
}

func (r *Request) RequestedChefID() *kernel.UUID {
	return r.requestedChef
}

func (r *Request) RequestedBy() kernel.UUID {
	return r.requestedBy
}

func (r *Request) Reason() string {
	return r.reason
}

func (r *Request) Priority() Priority {
	return r.priority
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) ResolutionNote() string {
	return r.resolutionNote
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) ResolvedAt() *time.Time {
	return r.resolvedAt
}

// IsStale reports whether a pending low-priority request has waited longer
// than maxAge and is due for automatic approval.
func (r *Request) IsStale(now time.Time, maxAge time.Duration) bool {
	return r.status == Pending && r.priority == Low && now.Sub(r.createdAt) > maxAge
}

// Approve resolves the request in favour of chefID.
func (r *Request) Approve(chefID kernel.UUID, note string, now time.Time) error {
	if err := r.EnsurePending(); err != nil {
		return err
	}
	if err := chefID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("newChefID", err)
	}

	r.requestedChef = &chefID
	r.resolve(Approved, note, now)
	return nil
}

func (r *Request) Reject(note string, now time.Time) error {
	if err := r.EnsurePending(); err != nil {
		return err
	}
	r.resolve(Rejected, note, now)
	return nil
}

// EnsurePending fails with errs.ErrAlreadyResolved once the request left Pending.
func (r *Request) EnsurePending() error {
	if r.status != Pending {
		return fmt.Errorf("%w: request %s is %s", errs.ErrAlreadyResolved, r.id, r.status)
	}
	return nil
}

func (r *Request) resolve(status Status, note string, now time.Time) {
	at := now.UTC()
	r.status = status
	r.resolutionNote = strings.TrimSpace(note)
	r.resolvedAt = &at
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setSubscriptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("subscriptionID", err)
	}
	r.subscriptionID = id
	return nil
}

func (r *Request) setRequestedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("requestedBy", err)
	}
	r.requestedBy = id
	return nil
}

func (r *Request) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	r.reason = reason
	return nil
}

func (r *Request) setPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.priority = p
	return nil
}
