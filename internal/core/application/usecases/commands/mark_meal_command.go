package commands

import (
	"errors"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/guard"
)

var ErrMarkMealCommandIsNotConstructed = errors.New(
	"MarkMealCommand must be created via NewMarkMealReadyCommand or NewMarkMealDeliveredCommand",
)

// MealStage is the timeline stage a MarkMealCommand moves a slot to.
type MealStage int

const (
	MealStageReady MealStage = iota + 1
	MealStageDelivered
)

// MarkMealCommand advances one slot of a subscription's daily timeline.
type MarkMealCommand struct {
	subscriptionID kernel.UUID
	slot           kernel.MealSlot
	stage          MealStage

	guard guard.ConstructorGuard
}

// NewMarkMealReadyCommand creates a command that marks a subscription meal as cooked.
func NewMarkMealReadyCommand(subscriptionID kernel.UUID, slot kernel.MealSlot) (MarkMealCommand, error) {
	return newMarkMealCommand(subscriptionID, slot, MealStageReady)
}

// NewMarkMealDeliveredCommand creates a command that marks a subscription meal as delivered.
func NewMarkMealDeliveredCommand(subscriptionID kernel.UUID, slot kernel.MealSlot) (MarkMealCommand, error) {
	return newMarkMealCommand(subscriptionID, slot, MealStageDelivered)
}

func newMarkMealCommand(subscriptionID kernel.UUID, slot kernel.MealSlot, stage MealStage) (MarkMealCommand, error) {
	if err := errors.Join(subscriptionID.Validate(), slot.Validate()); err != nil {
		return MarkMealCommand{}, err
	}

	return MarkMealCommand{
		subscriptionID: subscriptionID,
		slot:           slot,
		stage:          stage,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built through a constructor.
func (c MarkMealCommand) Validate() error {
	return c.guard.Validate(ErrMarkMealCommandIsNotConstructed)
}

// SubscriptionID returns the subscription owning the meal.
func (c MarkMealCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

// Slot returns the meal slot to mark.
func (c MarkMealCommand) Slot() kernel.MealSlot {
	return c.slot
}

// Stage returns the stage the meal moves to.
func (c MarkMealCommand) Stage() MealStage {
	return c.stage
}
