// Package notifications fans events out to the customer, the chef and the
// admins. Delivery is best effort: a failed channel is reported, never
// propagated to the operation that raised the event.
package notifications

import (
	"fmt"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/core/domain/model/reassignment"
)

type EventKind string

const (
	OrderStatusChanged   EventKind = "order_status_changed"
	ChefAssigned         EventKind = "chef_assigned"
	ReassignmentResolved EventKind = "reassignment_resolved"
	PickupConfirmed      EventKind = "pickup_confirmed"
	DeliveryCompleted    EventKind = "delivery_completed"
	MealReady            EventKind = "meal_ready"
)

// Event names its recipients; a nil id skips that target.
type Event struct {
	Kind        EventKind
	CustomerID  *kernel.UUID
	ChefID      *kernel.UUID
	NotifyAdmin bool
	Title       string
	Body        string
	Data        map[string]string
}

func NewOrderStatusChangedEvent(o *order.Order) Event {
	customerID := o.CustomerID()
	return Event{
		Kind:        OrderStatusChanged,
		CustomerID:  &customerID,
		ChefID:      o.ChefID(),
		NotifyAdmin: true,
		Title:       "Order " + o.Status().String(),
		Body:        fmt.Sprintf("Order %s is now %s", o.ID(), o.Status()),
		Data: map[string]string{
			"orderId": o.ID().String(),
			"status":  o.Status().String(),
		},
	}
}

func NewChefAssignedEvent(subscriptionID, chefID kernel.UUID, customerID *kernel.UUID, updatedOrders int) Event {
	return Event{
		Kind:        ChefAssigned,
		CustomerID:  customerID,
		ChefID:      &chefID,
		NotifyAdmin: true,
		Title:       "Chef assigned",
		Body:        fmt.Sprintf("Subscription %s is now prepared by chef %s", subscriptionID, chefID),
		Data: map[string]string{
			"subscriptionId": subscriptionID.String(),
			"chefId":         chefID.String(),
			"updatedOrders":  fmt.Sprint(updatedOrders),
		},
	}
}

func NewReassignmentResolvedEvent(r *reassignment.Request) Event {
	return Event{
		Kind:        ReassignmentResolved,
		ChefID:      r.RequestedChefID(),
		NotifyAdmin: true,
		Title:       "Reassignment " + r.Status().String(),
		Body:        fmt.Sprintf("Reassignment request %s was %s", r.ID(), r.Status()),
		Data: map[string]string{
			"requestId":      r.ID().String(),
			"subscriptionId": r.SubscriptionID().String(),
			"status":         r.Status().String(),
		},
	}
}

func NewPickupConfirmedEvent(a *assignment.Assignment, customerID kernel.UUID) Event {
	return Event{
		Kind:       PickupConfirmed,
		CustomerID: &customerID,
		Title:      "Your meal is on the way",
		Body:       fmt.Sprintf("Expected at %s", a.Estimate().DeliveryAt.Format("15:04")),
		Data:       pickupData(a),
	}
}

// pickupData adds the code the customer hands to the driver at the door.
func pickupData(a *assignment.Assignment) map[string]string {
	data := assignmentData(a)
	if a.HasConfirmationCode() {
		data["confirmationCode"] = a.ConfirmationCode().String()
	}
	return data
}

func NewDeliveryCompletedEvent(a *assignment.Assignment, customerID kernel.UUID, chefID *kernel.UUID) Event {
	return Event{
		Kind:        DeliveryCompleted,
		CustomerID:  &customerID,
		ChefID:      chefID,
		NotifyAdmin: true,
		Title:       "Delivered",
		Body:        "Your meal has been delivered. Enjoy!",
		Data:        assignmentData(a),
	}
}

func NewMealReadyEvent(subscriptionID kernel.UUID, slot kernel.MealSlot, customerID *kernel.UUID) Event {
	return Event{
		Kind:       MealReady,
		CustomerID: customerID,
		Title:      "Meal ready",
		Body:       fmt.Sprintf("Your %s for %s is ready", slot.MealTime(), slot.DateString()),
		Data: map[string]string{
			"subscriptionId": subscriptionID.String(),
			"slot":           slot.String(),
		},
	}
}

func assignmentData(a *assignment.Assignment) map[string]string {
	return map[string]string{
		"assignmentId": a.ID().String(),
		"driverId":     a.DriverID().String(),
		"status":       a.Status().String(),
	}
}
