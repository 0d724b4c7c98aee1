// Package dbutil holds the column mappings and write helpers shared by the
// gorm repositories.
package dbutil

import (
	"context"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AddressDTO is embedded with a column prefix wherever an aggregate stores an
// address.
type AddressDTO struct {
	Street string  `gorm:"not null"`
	Area   string  `gorm:"not null"`
	Lat    float64 `gorm:"not null"`
	Lng    float64 `gorm:"not null"`
}

func FromAddress(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street: a.Street(),
		Area:   a.Area(),
		Lat:    a.Location().Lat(),
		Lng:    a.Location().Lng(),
	}
}

func (dto AddressDTO) ToAddress() (kernel.Address, error) {
	location, err := kernel.NewLocation(dto.Lat, dto.Lng)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(dto.Street, dto.Area, location)
}

// SlotDTO stores an optional meal slot as a date plus the meal time ordinal.
type SlotDTO struct {
	Date *time.Time `gorm:"type:date"`
	Meal *int       `gorm:"type:smallint"`
}

func FromSlot(slot *kernel.MealSlot) SlotDTO {
	if slot == nil {
		return SlotDTO{}
	}
	date := slot.Date()
	meal := int(slot.MealTime())
	return SlotDTO{Date: &date, Meal: &meal}
}

// ToSlot returns nil when both columns are NULL.
func (dto SlotDTO) ToSlot() (*kernel.MealSlot, error) {
	if dto.Date == nil && dto.Meal == nil {
		return nil, nil //nolint:nilnil // absent slot
	}
	if dto.Date == nil || dto.Meal == nil {
		return nil, errs.NewValueIsInvalidError("slot")
	}
	slot, err := kernel.NewMealSlot(*dto.Date, kernel.MealTime(*dto.Meal))
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func UUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func ToUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func ToUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent identifier
	}
	k, err := ToUUID(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func UUIDs(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

// UpdateVersioned writes every column of dto to the row identified by id if
// the row is still at expectedVersion. dto must already carry the next
// version. A missing row is errs.ErrObjectNotFound, a version mismatch
// errs.ErrConflict.
func UpdateVersioned(
	ctx context.Context,
	db *gorm.DB,
	entity string,
	id uuid.UUID,
	expectedVersion int,
	dto any,
) error {
	result := db.WithContext(ctx).
		Model(dto).
		Where("id = ? AND version = ?", id, expectedVersion).
		Select("*").
		Omit("id").
		Updates(dto)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "update %s %s", entity, id)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(dto).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrapf(err, "check %s %s", entity, id)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(entity, id.String())
	}
	return errs.NewConflictError(entity, id.String(), expectedVersion)
}

// Insert creates dto and maps a unique violation to errs.ErrConflict. The
// connection must be opened with gorm's TranslateError enabled.
func Insert(ctx context.Context, db *gorm.DB, entity string, id uuid.UUID, dto any) error {
	err := db.WithContext(ctx).Create(dto).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewConflictError(entity, id.String(), 0)
	default:
		return errors.Wrapf(err, "insert %s %s", entity, id)
	}
}

// First loads one row into dto, mapping gorm.ErrRecordNotFound to
// errs.ErrObjectNotFound.
func First(ctx context.Context, db *gorm.DB, entity string, key any, dto any, query string, args ...any) error {
	err := db.WithContext(ctx).Where(query, args...).First(dto).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundError(entity, key)
	default:
		return errors.Wrapf(err, "load %s %v", entity, key)
	}
}
