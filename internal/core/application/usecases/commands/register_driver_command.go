package commands

import (
	"errors"
	"strings"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand onboards a driver. Unverified drivers are stored but
// never selected for an assignment.
//
// Example:
//
//	location, _ := kernel.NewLocation(6.6018, 3.3515)
//	cmd, _ := NewRegisterDriverCommand(driverID, "Ada", 3, location, []string{"Ikeja"}, true)
//	d, err := handler.Handle(ctx, cmd)
type RegisterDriverCommand struct {
	driverID     kernel.UUID
	name         string
	maxCapacity  int
	location     kernel.Location
	serviceAreas []string
	verified     bool

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command that registers a driver.
// Returns an error if any field fails validation.
func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name string,
	maxCapacity int,
	location kernel.Location,
	serviceAreas []string,
	verified bool,
) (RegisterDriverCommand, error) {
	name = strings.TrimSpace(name)

	var nameErr, capacityErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if maxCapacity <= 0 {
		capacityErr = errs.NewValueIsInvalidError("maxCapacity")
	}

	if err := errors.Join(driverID.Validate(), nameErr, capacityErr, location.Validate()); err != nil {
		return RegisterDriverCommand{}, err
	}

	return RegisterDriverCommand{
		driverID:     driverID,
		name:         name,
		maxCapacity:  maxCapacity,
		location:     location,
		serviceAreas: serviceAreas,
		verified:     verified,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the ID of the new driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// MaxCapacity returns how many deliveries the driver can carry at once.
func (c RegisterDriverCommand) MaxCapacity() int {
	return c.maxCapacity
}

// Location returns the driver's starting position.
func (c RegisterDriverCommand) Location() kernel.Location {
	return c.location
}

// ServiceAreas returns the areas the driver covers.
func (c RegisterDriverCommand) ServiceAreas() []string {
	return c.serviceAreas
}

// Verified reports whether the driver passed verification.
func (c RegisterDriverCommand) Verified() bool {
	return c.verified
}
