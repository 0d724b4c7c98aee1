package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "lagos island", lat: 6.4550, lng: 3.3941},
		{name: "min bounds", lat: kernel.LatitudeMin, lng: kernel.LongitudeMin},
		{name: "max bounds", lat: kernel.LatitudeMax, lng: kernel.LongitudeMax},
		{name: "latitude too small", lat: -90.5, lng: 0, wantErr: true},
		{name: "latitude too large", lat: 91, lng: 0, wantErr: true},
		{name: "longitude too small", lat: 0, lng: -181, wantErr: true},
		{name: "longitude too large", lat: 0, lng: 180.1, wantErr: true},
		{name: "nan latitude", lat: math.NaN(), lng: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lng)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, loc)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.lat, loc.Lat(), 1e-9)
			assert.InDelta(t, tt.lng, loc.Lng(), 1e-9)
			assert.NoError(t, loc.Validate())
		})
	}

	t.Run("reports both coordinates", func(t *testing.T) {
		_, err := kernel.NewLocation(100, 200)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
		assert.Contains(t, err.Error(), "lng")
	})
}

func TestLocation_Validate(t *testing.T) {
	var loc kernel.Location
	assert.Equal(t, kernel.ErrLocationIsNotConstructed, loc.Validate())
}

func TestLocation_String(t *testing.T) {
	loc := mustNewLocation(t, 6.5, 3.25)
	assert.Equal(t, "Location(6.500000,3.250000)", loc.String())
}

func TestLocation_IsEqual(t *testing.T) {
	a := mustNewLocation(t, 6.5, 3.3)
	b := mustNewLocation(t, 6.5, 3.3)
	c := mustNewLocation(t, 6.6, 3.3)

	eq, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = a.IsEqual(kernel.Location{})
	assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

func TestLocation_DistanceKm(t *testing.T) {
	origin := mustNewLocation(t, 0, 0)

	tests := []struct {
		name string
		to   kernel.Location
		want float64
	}{
		{name: "same point", to: mustNewLocation(t, 0, 0), want: 0},
		{name: "one degree north", to: mustNewLocation(t, 1, 0), want: 111.195},
		{name: "one degree east on equator", to: mustNewLocation(t, 0, 1), want: 111.195},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := origin.DistanceKm(tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)

			back, err := tt.to.DistanceKm(origin)
			require.NoError(t, err)
			assert.InDelta(t, got, back, 1e-9)
		})
	}

	t.Run("unconstructed location", func(t *testing.T) {
		_, err := origin.DistanceKm(kernel.Location{})
		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func mustNewLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}
