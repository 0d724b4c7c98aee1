package kernel

import (
	"fmt"
	"strings"
	"time"

	"mealflow/internal/pkg/errs"
	"mealflow/internal/pkg/guard"
)

// MealTime orders the meals of a day: breakfast < lunch < dinner.
type MealTime int

const (
	MealTimeUnknown MealTime = iota
	Breakfast
	Lunch
	Dinner
)

const dateLayout = "2006-01-02"

func getMealTimeStrings() map[MealTime]string {
	return map[MealTime]string{
		Breakfast: "breakfast",
		Lunch:     "lunch",
		Dinner:    "dinner",
	}
}

// ParseMealTime accepts "breakfast", "lunch" or "dinner" in any case.
func ParseMealTime(s string) (MealTime, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for mt, str := range getMealTimeStrings() {
		if str == needle {
			return mt, nil
		}
	}
	return MealTimeUnknown, errs.NewValueIsInvalidErrorWithCause("mealTime", fmt.Errorf("%q is not a meal time", s))
}

func (m MealTime) Validate() error {
	if _, ok := getMealTimeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mealTime", fmt.Errorf("%d is not a valid meal time", m))
	}
	return nil
}

func (m MealTime) String() string {
	if s, ok := getMealTimeStrings()[m]; ok {
		return s
	}
	return "unknown"
}

var ErrMealSlotIsNotConstructed = errs.NewValueIsRequiredError("meal slot must be created via NewMealSlot")

// MealSlot is one meal of one calendar day. The date is kept at UTC midnight
// so slots compare by value.
type MealSlot struct {
	date     time.Time
	mealTime MealTime
	guard    guard.ConstructorGuard
}

func NewMealSlot(date time.Time, mealTime MealTime) (MealSlot, error) {
	if date.IsZero() {
		return MealSlot{}, errs.NewValueIsRequiredError("date")
	}
	if err := mealTime.Validate(); err != nil {
		return MealSlot{}, err
	}

	y, mo, d := date.Date()
	return MealSlot{
		date:     time.Date(y, mo, d, 0, 0, 0, 0, time.UTC),
		mealTime: mealTime,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParseMealSlot builds a slot from a YYYY-MM-DD date and a meal time name.
func ParseMealSlot(date, mealTime string) (MealSlot, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return MealSlot{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	mt, err := ParseMealTime(mealTime)
	if err != nil {
		return MealSlot{}, err
	}
	return NewMealSlot(d, mt)
}

func (s MealSlot) Validate() error {
	return s.guard.Validate(ErrMealSlotIsNotConstructed)
}

func (s MealSlot) Date() time.Time {
	return s.date
}

func (s MealSlot) DateString() string {
	return s.date.Format(dateLayout)
}

func (s MealSlot) MealTime() MealTime {
	return s.mealTime
}

func (s MealSlot) IsEqual(other MealSlot) bool {
	return s.date.Equal(other.date) && s.mealTime == other.mealTime
}

// Before orders slots by date, then by meal time.
func (s MealSlot) Before(other MealSlot) bool {
	if !s.date.Equal(other.date) {
		return s.date.Before(other.date)
	}
	return s.mealTime < other.mealTime
}

func (s MealSlot) String() string {
	return s.DateString() + "/" + s.mealTime.String()
}
