package services

import (
	"fmt"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultFlatEarnings is credited per delivery unless configured otherwise.
var DefaultFlatEarnings = decimal.NewFromInt(500)

// EarningsPolicy pays a flat amount per delivered assignment.
type EarningsPolicy struct {
	flat decimal.Decimal
}

func NewEarningsPolicy(flat decimal.Decimal) (EarningsPolicy, error) {
	if flat.IsNegative() {
		return EarningsPolicy{}, errs.NewValueIsInvalidErrorWithCause("flatEarnings", fmt.Errorf("%s is negative", flat))
	}
	return EarningsPolicy{flat: flat}, nil
}

func (p EarningsPolicy) Compute() (assignment.Earnings, error) {
	return assignment.NewEarnings(p.flat, decimal.Zero)
}
