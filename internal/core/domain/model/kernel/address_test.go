package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
)

func TestNewAddress(t *testing.T) {
	loc := mustNewLocation(t, 6.43, 3.42)

	t.Run("valid", func(t *testing.T) {
		addr, err := kernel.NewAddress("  12 Admiralty Way ", "Lekki", loc)
		require.NoError(t, err)

		assert.Equal(t, "12 Admiralty Way", addr.Street())
		assert.Equal(t, "Lekki", addr.Area())
		assert.Equal(t, "lekki", addr.AreaKey())
		assert.NoError(t, addr.Validate())
	})

	t.Run("collects every violation", func(t *testing.T) {
		_, err := kernel.NewAddress(" ", "", kernel.Location{})
		require.Error(t, err)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "area")
		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})

	t.Run("zero value", func(t *testing.T) {
		var addr kernel.Address
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, addr.Validate())
	})
}
