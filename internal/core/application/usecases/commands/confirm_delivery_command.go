package commands

import (
	"errors"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand closes an assignment. Code is the value the customer
// read out to the driver; it may be empty when none was issued.
type ConfirmDeliveryCommand struct {
	assignmentID kernel.UUID
	code         string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command that closes a delivery.
// Returns an error if the assignment ID is empty.
func NewConfirmDeliveryCommand(assignmentID kernel.UUID, code string) (ConfirmDeliveryCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		assignmentID: assignmentID,
		code:         code,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through its constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// AssignmentID returns the assignment being delivered.
func (c ConfirmDeliveryCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Code returns the confirmation code given by the customer.
func (c ConfirmDeliveryCommand) Code() string {
	return c.code
}
