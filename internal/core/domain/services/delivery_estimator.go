package services

import (
	"errors"
	"fmt"
	"time"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"
)

// DeliveryEstimator turns straight-line distances into pickup and delivery
// times at a constant average speed, adding a fixed handling time at the
// kitchen.
type DeliveryEstimator struct {
	speedKmh float64
	handling time.Duration
}

func NewDeliveryEstimator(speedKmh float64, handling time.Duration) (DeliveryEstimator, error) {
	if speedKmh <= 0 {
		return DeliveryEstimator{}, errs.NewValueIsInvalidErrorWithCause("averageSpeedKmh", fmt.Errorf("%v is not greater than 0", speedKmh))
	}
	if handling < 0 {
		return DeliveryEstimator{}, errs.NewValueIsInvalidErrorWithCause("handlingTime", fmt.Errorf("%s is negative", handling))
	}
	return DeliveryEstimator{speedKmh: speedKmh, handling: handling}, nil
}

// Estimate plans driver -> kitchen -> customer starting at now.
func (e DeliveryEstimator) Estimate(from kernel.Location, pickup, dropoff kernel.Address, now time.Time) (assignment.Estimate, error) {
	toKitchen, err := from.DistanceKm(pickup.Location())
	if err != nil {
		return assignment.Estimate{}, err
	}
	ride, err := pickup.Location().DistanceKm(dropoff.Location())
	if err != nil {
		return assignment.Estimate{}, errors.Join(errs.NewValueIsInvalidError("dropoff"), err)
	}

	pickupAt := now.Add(e.travel(toKitchen) + e.handling).Truncate(time.Second)
	deliveryAt := pickupAt.Add(e.travel(ride)).Truncate(time.Second)

	return assignment.Estimate{
		PickupAt:   pickupAt.UTC(),
		DeliveryAt: deliveryAt.UTC(),
		Duration:   deliveryAt.Sub(now.Truncate(time.Second)),
	}, nil
}

func (e DeliveryEstimator) travel(km float64) time.Duration {
	return time.Duration(km / e.speedKmh * float64(time.Hour))
}
