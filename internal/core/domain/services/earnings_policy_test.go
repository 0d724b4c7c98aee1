package services_test

import (
	"testing"

	"mealflow/internal/core/domain/services"
	"mealflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarningsPolicy(t *testing.T) {
	policy, err := services.NewEarningsPolicy(services.DefaultFlatEarnings)
	require.NoError(t, err)

	earnings, err := policy.Compute()
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(500).Equal(earnings.Base))
	assert.True(t, earnings.Bonus.IsZero())
	assert.True(t, decimal.NewFromInt(500).Equal(earnings.Total))

	_, err = services.NewEarningsPolicy(decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
