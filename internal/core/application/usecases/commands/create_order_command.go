package commands

import (
	"errors"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers an order handed over by checkout. Subscription
// orders carry the subscription and the meal slot they deliver; both or
// neither must be set.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, address, &chefID, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID        kernel.UUID
	customerID     kernel.UUID
	address        kernel.Address
	chefID         *kernel.UUID
	subscriptionID *kernel.UUID
	slot           *kernel.MealSlot

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command that places an order.
// A subscription order must carry both the subscription ID and the meal slot.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	address kernel.Address,
	chefID, subscriptionID *kernel.UUID,
	slot *kernel.MealSlot,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, customerID),
		cmd.setAddress(address),
		cmd.setChefID(chefID),
		cmd.setSubscription(subscriptionID, slot),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built through its constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the ID of the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}

// ChefID returns the chef cooking the order, or nil if not chosen yet.
func (c CreateOrderCommand) ChefID() *kernel.UUID {
	return c.chefID
}

// SubscriptionID returns the owning subscription, or nil for a one-off order.
func (c CreateOrderCommand) SubscriptionID() *kernel.UUID {
	return c.subscriptionID
}

// Slot returns the subscription meal slot, or nil for a one-off order.
func (c CreateOrderCommand) Slot() *kernel.MealSlot {
	return c.slot
}

func (c *CreateOrderCommand) setIDs(orderID, customerID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return err
	}

	c.orderID = orderID
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setChefID(chefID *kernel.UUID) error {
	if chefID == nil {
		return nil
	}
	if err := chefID.Validate(); err != nil {
		return err
	}

	c.chefID = chefID
	return nil
}

func (c *CreateOrderCommand) setSubscription(subscriptionID *kernel.UUID, slot *kernel.MealSlot) error {
	switch {
	case subscriptionID == nil && slot == nil:
		return nil
	case subscriptionID == nil:
		return errs.NewValueIsRequiredError("subscriptionId")
	case slot == nil:
		return errs.NewValueIsRequiredError("mealSlot")
	}

	if err := errors.Join(subscriptionID.Validate(), slot.Validate()); err != nil {
		return err
	}

	c.subscriptionID = subscriptionID
	c.slot = slot
	return nil
}
