package kernel

import (
	"errors"
	"strings"

	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is a delivery or kitchen address. Area is the coarse zone used to
// cluster deliveries; it is compared case-insensitively.
type Address struct { //nolint:recvcheck // setters need pointer receivers
	street   string
	area     string
	location Location
	guard    guard.ConstructorGuard
}

func NewAddress(street, area string, location Location) (Address, error) {
	addr := Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setArea(area),
		addr.setLocation(location),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Area() string {
	return a.area
}

// AreaKey is the normalized area used for grouping.
func (a Address) AreaKey() string {
	return strings.ToLower(a.area)
}

func (a Address) Location() Location {
	return a.location
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setArea(area string) error {
	area = strings.TrimSpace(area)
	if area == "" {
		return errs.NewValueIsRequiredError("area")
	}
	a.area = area
	return nil
}

func (a *Address) setLocation(location Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
