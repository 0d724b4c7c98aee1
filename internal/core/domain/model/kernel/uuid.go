package kernel

import (
	"fmt"

	"mealflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, chefs, drivers, assignments, subscriptions and
// reassignment requests. It wraps github.com/google/uuid so domain code never
// handles the nil UUID as a valid identifier.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn and hyphen-less forms.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte binary form. The nil UUID is
// rejected because it is what a missing database column decodes to.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// OptionalUUIDFromString parses s, treating the empty string as "absent".
func OptionalUUIDFromString(s string) (*UUID, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // absent identifier
	}
	id, err := UUIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the wrapped google UUID for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate fails for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// SameOptional reports whether two optional identifiers point at the same id
// (or are both absent).
func SameOptional(a, b *UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}
