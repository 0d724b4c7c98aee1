package services_test

import (
	"testing"
	"time"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/services"
	"mealflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotOf(t *testing.T) {
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		hour int
		want services.TimeSlot
	}{
		{0, services.Morning},
		{11, services.Morning},
		{12, services.Afternoon},
		{16, services.Afternoon},
		{17, services.Evening},
		{23, services.Evening},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, services.TimeSlotOf(day.Add(time.Duration(tt.hour)*time.Hour)), "hour %d", tt.hour)
	}
}

func TestRouteClusteringAdvisor_Advise(t *testing.T) {
	advisor, err := services.NewRouteClusteringAdvisor(services.DefaultClusterMinSize, services.DefaultClusterSavingsRatio, nil)
	require.NoError(t, err)

	morning := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	afternoon := time.Date(2025, 3, 4, 13, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 4, 19, 0, 0, 0, time.UTC)

	cancelled := deliveryTo(t, "Lekki", morning, 30*time.Minute)
	require.NoError(t, cancelled.Cancel("customer unreachable", now))

	assignments := []*assignment.Assignment{
		deliveryTo(t, "Lekki", morning, 30*time.Minute),
		deliveryTo(t, "lekki", morning, 30*time.Minute),
		deliveryTo(t, "Lekki", evening, 30*time.Minute),
		cancelled,
		deliveryTo(t, "Yaba", morning, 30*time.Minute),
		deliveryTo(t, "Yaba", morning, 30*time.Minute),
		deliveryTo(t, "Ikeja", afternoon, 20*time.Minute),
		deliveryTo(t, "Ikeja", afternoon, 20*time.Minute),
		deliveryTo(t, "Ikeja", afternoon, 20*time.Minute),
		deliveryTo(t, "Ikeja", afternoon, 20*time.Minute),
	}

	got := advisor.Advise(assignments)

	require.Len(t, got, 3)

	assert.Equal(t, services.ClusterByArea, got[0].Kind)
	assert.Equal(t, "lekki", got[0].Key)
	assert.Equal(t, "Lekki", got[0].Area)
	assert.Equal(t, 3, got[0].Deliveries())
	assert.Equal(t, 90*time.Minute, got[0].TotalDuration)
	assert.Equal(t, 18*time.Minute, got[0].EstimatedSaving)

	assert.Equal(t, services.ClusterByTimeSlotArea, got[1].Kind)
	assert.Equal(t, "afternoon/ikeja", got[1].Key)
	assert.Equal(t, services.Afternoon, got[1].TimeSlot)
	assert.Equal(t, 16*time.Minute, got[1].EstimatedSaving)

	assert.Equal(t, "ikeja", got[2].Key)
	assert.Equal(t, 4, got[2].Deliveries())
}

func TestRouteClusteringAdvisor_NothingToCluster(t *testing.T) {
	advisor, err := services.NewRouteClusteringAdvisor(3, 0.2, nil)
	require.NoError(t, err)

	assert.Empty(t, advisor.Advise(nil))
	assert.Empty(t, advisor.Advise([]*assignment.Assignment{
		deliveryTo(t, "Yaba", now, time.Hour),
		deliveryTo(t, "Yaba", now, time.Hour),
	}))
}

func TestNewRouteClusteringAdvisor_Invalid(t *testing.T) {
	_, err := services.NewRouteClusteringAdvisor(1, 0.2, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewRouteClusteringAdvisor(3, 0, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewRouteClusteringAdvisor(3, 1, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
