package commands

import (
	"errors"

	"mealflow/internal/pkg/guard"
)

var ErrResetDailyEarningsCommandIsNotConstructed = errors.New(
	"ResetDailyEarningsCommand must be created via NewResetDailyEarningsCommand constructor",
)

type ResetDailyEarningsCommand struct {
	guard guard.ConstructorGuard
}

// NewResetDailyEarningsCommand creates a reset command.
func NewResetDailyEarningsCommand() ResetDailyEarningsCommand {
	return ResetDailyEarningsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate reports whether the command was built through its constructor.
func (c ResetDailyEarningsCommand) Validate() error {
	return c.guard.Validate(ErrResetDailyEarningsCommandIsNotConstructed)
}
