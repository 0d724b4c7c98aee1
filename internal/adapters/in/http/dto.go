package http

import (
	"time"

	"mealflow/internal/core/domain/model/assignment"
	"mealflow/internal/core/domain/model/chef"
	"mealflow/internal/core/domain/model/driver"
	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/domain/model/order"
	"mealflow/internal/core/domain/model/reassignment"
	"mealflow/internal/core/domain/model/subscription"
)

const dateLayout = "2006-01-02"

type AddressRequest struct {
	Street string  `json:"street" validate:"required"`
	Area   string  `json:"area" validate:"required"`
	Lat    float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng    float64 `json:"lng" validate:"gte=-180,lte=180"`
}

func (r AddressRequest) toDomain() (kernel.Address, error) {
	loc, err := kernel.NewLocation(r.Lat, r.Lng)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(r.Street, r.Area, loc)
}

type SlotRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	MealTime string `json:"mealTime" validate:"required,oneof=breakfast lunch dinner"`
}

func (r SlotRequest) toDomain() (kernel.MealSlot, error) {
	return kernel.ParseMealSlot(r.Date, r.MealTime)
}

type CreateOrderRequest struct {
	OrderID        string         `json:"orderId" validate:"omitempty,uuid"`
	CustomerID     string         `json:"customerId" validate:"required,uuid"`
	Address        AddressRequest `json:"address"`
	ChefID         string         `json:"chefId" validate:"omitempty,uuid"`
	SubscriptionID string         `json:"subscriptionId" validate:"omitempty,uuid"`
	Date           string         `json:"date" validate:"required_with=SubscriptionID,omitempty,datetime=2006-01-02"`
	MealTime       string         `json:"mealTime" validate:"required_with=SubscriptionID,omitempty,oneof=breakfast lunch dinner"`
}

type TransitionOrderRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"max=500"`
}

type RegisterChefRequest struct {
	ChefID           string         `json:"chefId" validate:"omitempty,uuid"`
	Name             string         `json:"name" validate:"required,max=200"`
	MaxDailyCapacity int            `json:"maxDailyCapacity" validate:"gte=1"`
	Kitchen          AddressRequest `json:"kitchen"`
}

type CreateSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId" validate:"omitempty,uuid"`
	CustomerID     string `json:"customerId" validate:"required,uuid"`
	StartDate      string `json:"startDate" validate:"required,datetime=2006-01-02"`
	DurationWeeks  int    `json:"durationWeeks" validate:"gte=1"`
}

type AssignChefRequest struct {
	ChefID string `json:"chefId" validate:"required,uuid"`
}

type RequestReassignmentRequest struct {
	Reason          string `json:"reason" validate:"required,max=500"`
	Priority        string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	RequestedBy     string `json:"requestedBy" validate:"required,uuid"`
	RequestedChefID string `json:"requestedChefId" validate:"omitempty,uuid"`
}

type ResolveReassignmentRequest struct {
	Decision  string `json:"decision" validate:"required,oneof=approve reject"`
	NewChefID string `json:"newChefId" validate:"omitempty,uuid"`
	Note      string `json:"note" validate:"max=500"`
}

type RegisterDriverRequest struct {
	DriverID     string   `json:"driverId" validate:"omitempty,uuid"`
	Name         string   `json:"name" validate:"required,max=200"`
	MaxCapacity  int      `json:"maxCapacity" validate:"gte=1"`
	Lat          float64  `json:"lat" validate:"gte=-90,lte=90"`
	Lng          float64  `json:"lng" validate:"gte=-180,lte=180"`
	ServiceAreas []string `json:"serviceAreas" validate:"dive,required"`
	Verified     bool     `json:"verified"`
}

type ConfirmDeliveryRequest struct {
	Code string `json:"code" validate:"max=16"`
}

type CancelAssignmentRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type RegisterDeviceRequest struct {
	Role   string `json:"role" validate:"required,oneof=customer chef admin"`
	UserID string `json:"userId" validate:"required,uuid"`
	Token  string `json:"token" validate:"required,max=512,device_token"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type OrderResponse struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customerId"`
	SubscriptionID     *string    `json:"subscriptionId,omitempty"`
	Date               string     `json:"date,omitempty"`
	MealTime           string     `json:"mealTime,omitempty"`
	ChefID             *string    `json:"chefId,omitempty"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"paymentStatus"`
	CreatedAt          time.Time  `json:"createdAt"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:                 o.ID().String(),
		CustomerID:         o.CustomerID().String(),
		SubscriptionID:     optionalID(o.SubscriptionID()),
		ChefID:             optionalID(o.ChefID()),
		Status:             o.Status().String(),
		PaymentStatus:      o.PaymentStatus().String(),
		CreatedAt:          o.CreatedAt(),
		DeliveredAt:        o.DeliveredAt(),
		CancelledAt:        o.CancelledAt(),
		CancellationReason: o.CancellationReason(),
	}
	if slot := o.MealSlot(); slot != nil {
		resp.Date = slot.DateString()
		resp.MealTime = slot.MealTime().String()
	}
	return resp
}

type ChefResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Active           bool   `json:"active"`
	MaxDailyCapacity int    `json:"maxDailyCapacity"`
	KitchenArea      string `json:"kitchenArea"`
}

func newChefResponse(c *chef.Chef) ChefResponse {
	return ChefResponse{
		ID:               c.ID().String(),
		Name:             c.Name(),
		Active:           c.IsActive(),
		MaxDailyCapacity: c.MaxDailyCapacity(),
		KitchenArea:      c.Kitchen().Area(),
	}
}

type SubscriptionResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	Status        string `json:"status"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	DurationWeeks int    `json:"durationWeeks"`
}

func newSubscriptionResponse(s *subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:            s.ID().String(),
		CustomerID:    s.CustomerID().String(),
		Status:        s.Status().String(),
		StartDate:     s.StartDate().Format(dateLayout),
		EndDate:       s.EndDate().Format(dateLayout),
		DurationWeeks: s.DurationWeeks(),
	}
}

type AssignChefResponse struct {
	SubscriptionID string `json:"subscriptionId"`
	ChefID         string `json:"chefId"`
	UpdatedOrders  int    `json:"updatedOrders"`
}

type ReassignmentResponse struct {
	ID              string     `json:"id"`
	SubscriptionID  string     `json:"subscriptionId"`
	CurrentChefID   *string    `json:"currentChefId,omitempty"`
	RequestedChefID *string    `json:"requestedChefId,omitempty"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	ResolutionNote  string     `json:"resolutionNote,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
}

func newReassignmentResponse(r *reassignment.Request) ReassignmentResponse {
	return ReassignmentResponse{
		ID:              r.ID().String(),
		SubscriptionID:  r.SubscriptionID().String(),
		CurrentChefID:   optionalID(r.CurrentChefID()),
		RequestedChefID: optionalID(r.RequestedChefID()),
		Priority:        r.Priority().String(),
		Status:          r.Status().String(),
		ResolutionNote:  r.ResolutionNote(),
		CreatedAt:       r.CreatedAt(),
		ResolvedAt:      r.ResolvedAt(),
	}
}

type AutoApproveResponse struct {
	Approved int `json:"approved"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

type DriverResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	MaxCapacity         int      `json:"maxCapacity"`
	ServiceAreas        []string `json:"serviceAreas"`
	Eligible            bool     `json:"eligible"`
	DailyEarnings       string   `json:"dailyEarnings"`
	TotalEarnings       string   `json:"totalEarnings"`
	CompletedDeliveries int      `json:"completedDeliveries"`
}

func newDriverResponse(d *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:                  d.ID().String(),
		Name:                d.Name(),
		MaxCapacity:         d.MaxCapacity(),
		ServiceAreas:        d.ServiceAreas(),
		Eligible:            d.IsEligible(),
		DailyEarnings:       d.DailyEarnings().StringFixed(2),
		TotalEarnings:       d.TotalEarnings().StringFixed(2),
		CompletedDeliveries: d.CompletedDeliveries(),
	}
}

type ResetEarningsResponse struct {
	Drivers int64 `json:"drivers"`
}

type AssignmentResponse struct {
	ID                  string     `json:"id"`
	DriverID            string     `json:"driverId"`
	Target              string     `json:"target"`
	Status              string     `json:"status"`
	EstimatedPickupAt   time.Time  `json:"estimatedPickupAt"`
	EstimatedDeliveryAt time.Time  `json:"estimatedDeliveryAt"`
	AssignedAt          time.Time  `json:"assignedAt"`
	PickedUpAt          *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt         *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt         *time.Time `json:"cancelledAt,omitempty"`
	Earnings            *string    `json:"earnings,omitempty"`
	ConfirmationCode    string     `json:"confirmationCode,omitempty"`
}

// newAssignmentResponse renders a. The confirmation code is only included
// when withCode is set, which is the case for the response that created it.
func newAssignmentResponse(a *assignment.Assignment, withCode bool) AssignmentResponse {
	est := a.Estimate()
	resp := AssignmentResponse{
		ID:                  a.ID().String(),
		DriverID:            a.DriverID().String(),
		Target:              a.Target().String(),
		Status:              a.Status().String(),
		EstimatedPickupAt:   est.PickupAt,
		EstimatedDeliveryAt: est.DeliveryAt,
		AssignedAt:          a.AssignedAt(),
		PickedUpAt:          a.PickedUpAt(),
		DeliveredAt:         a.DeliveredAt(),
		CancelledAt:         a.CancelledAt(),
	}
	if e := a.Earnings(); e != nil {
		total := e.Total.StringFixed(2)
		resp.Earnings = &total
	}
	if withCode && a.HasConfirmationCode() {
		resp.ConfirmationCode = a.ConfirmationCode().String()
	}
	return resp
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// idOrNew parses raw, generating a fresh id when the client sent none.
func idOrNew(raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromString(raw)
}
