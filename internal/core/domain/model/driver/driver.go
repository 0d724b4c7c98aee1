package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

type Driver struct {
	kernel.Versioned

	id           kernel.UUID
	name         string
	location     kernel.Location
	serviceAreas []string

	active      bool
	available   bool
	verified    bool
	maxCapacity int

	dailyEarnings       decimal.Decimal
	totalEarnings       decimal.Decimal
	completedDeliveries int
	lastAssignedAt      *time.Time

	guard guard.ConstructorGuard
}

// NewDriver creates an active, available but not yet verified driver.
func NewDriver(id kernel.UUID, name string, maxCapacity int, location kernel.Location, serviceAreas []string) (*Driver, error) {
	d := &Driver{
		active:        true,
		available:     true,
		dailyEarnings: decimal.Zero,
		totalEarnings: decimal.Zero,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setMaxCapacity(maxCapacity),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}
	d.serviceAreas = normalizeAreas(serviceAreas)

	return d, nil
}

type Snapshot struct {
	ID                  kernel.UUID
	Name                string
	Location            kernel.Location
	ServiceAreas        []string
	Active              bool
	Available           bool
	Verified            bool
	MaxCapacity         int
	DailyEarnings       decimal.Decimal
	TotalEarnings       decimal.Decimal
	CompletedDeliveries int
	LastAssignedAt      *time.Time
	Version             int
}

func RestoreDriver(s Snapshot) (*Driver, error) {
	d, err := NewDriver(s.ID, s.Name, s.MaxCapacity, s.Location, s.ServiceAreas)
	if err != nil {
		return nil, err
	}

	if s.DailyEarnings.IsNegative() || s.TotalEarnings.IsNegative() || s.CompletedDeliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("earnings", errors.New("earnings and deliveries cannot be negative"))
	}

	d.active = s.Active
	d.available = s.Available
	d.verified = s.Verified
	d.dailyEarnings = s.DailyEarnings
	d.totalEarnings = s.TotalEarnings
	d.completedDeliveries = s.CompletedDeliveries
	d.lastAssignedAt = s.LastAssignedAt
	d.Versioned = kernel.RestoreVersioned(s.Version)
	return d, nil
}

func (d *Driver) Snapshot() Snapshot {
	return Snapshot{
		ID:                  d.id,
		Name:                d.name,
		Location:            d.location,
		ServiceAreas:        append([]string(nil), d.serviceAreas...),
		Active:              d.active,
		Available:           d.available,
		Verified:            d.verified,
		MaxCapacity:         d.maxCapacity,
		DailyEarnings:       d.dailyEarnings,
		TotalEarnings:       d.totalEarnings,
		CompletedDeliveries: d.completedDeliveries,
		LastAssignedAt:      d.lastAssignedAt,
		Version:             d.Version(),
	}
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Location() kernel.Location {
	return d.location
}

func (d *Driver) ServiceAreas() []string {
	return append([]string(nil), d.serviceAreas...)
}

func (d *Driver) MaxCapacity() int {
	return d.maxCapacity
}

func (d *Driver) DailyEarnings() decimal.Decimal {
	return d.dailyEarnings
}

func (d *Driver) TotalEarnings() decimal.Decimal {
	return d.totalEarnings
}

func (d *Driver) CompletedDeliveries() int {
	return d.completedDeliveries
}

func (d *Driver) LastAssignedAt() *time.Time {
	return d.lastAssignedAt
}

// IsEligible reports whether the driver may receive new assignments at all.
func (d *Driver) IsEligible() bool {
	return d.active && d.available && d.verified
}

// HasCapacity reports whether currentLoad leaves room for one more assignment.
func (d *Driver) HasCapacity(currentLoad int) bool {
	return currentLoad < d.maxCapacity
}

// ServesArea matches area against the configured service areas, case-insensitively.
func (d *Driver) ServesArea(area string) bool {
	needle := strings.ToLower(strings.TrimSpace(area))
	for _, a := range d.serviceAreas {
		if a == needle {
			return true
		}
	}
	return false
}

// MarkAssigned records a selection. The caller persists the driver with a
// version check, which is what makes capacity re-validation atomic.
func (d *Driver) MarkAssigned(now time.Time) error {
	if !d.IsEligible() {
		return errs.NewInvalidStateError("driver", d.stateString(), "accept assignment")
	}
	at := now.UTC()
	d.lastAssignedAt = &at
	return nil
}

// RecordDelivery credits the earnings of a completed delivery.
func (d *Driver) RecordDelivery(earnings decimal.Decimal) error {
	if earnings.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("earnings", fmt.Errorf("%s is negative", earnings))
	}
	d.dailyEarnings = d.dailyEarnings.Add(earnings)
	d.totalEarnings = d.totalEarnings.Add(earnings)
	d.completedDeliveries++
	return nil
}

func (d *Driver) ResetDailyEarnings() {
	d.dailyEarnings = decimal.Zero
}

func (d *Driver) Verify() {
	d.verified = true
}

func (d *Driver) SetAvailable(available bool) {
	d.available = available
}

func (d *Driver) Deactivate() {
	d.active = false
}

func (d *Driver) stateString() string {
	return fmt.Sprintf("active=%t available=%t verified=%t", d.active, d.available, d.verified)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setMaxCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	d.maxCapacity = capacity
	return nil
}

func (d *Driver) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

func normalizeAreas(areas []string) []string {
	out := make([]string, 0, len(areas))
	seen := make(map[string]struct{}, len(areas))
	for _, a := range areas {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
