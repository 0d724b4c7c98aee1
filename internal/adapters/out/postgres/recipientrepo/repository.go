// Package recipientrepo stores device tokens and resolves notification
// recipients for the fan-out.
package recipientrepo

import (
	"context"
	"strings"
	"time"

	"mealflow/internal/core/domain/model/kernel"
	"mealflow/internal/core/ports"
	"mealflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceTokenDTO is one registered device. Admin devices are stored with the
// admin role and any user id.
type DeviceTokenDTO struct {
	Role      string    `gorm:"primaryKey;size:16"`
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (DeviceTokenDTO) TableName() string {
	return "device_tokens"
}

type GormRecipientDirectory struct {
	db *gorm.DB
}

func NewGormRecipientDirectory(db *gorm.DB) *GormRecipientDirectory {
	return &GormRecipientDirectory{db: db}
}

// Register stores token for userID. Re-registering a token moves it to the
// new user.
func (r *GormRecipientDirectory) Register(
	ctx context.Context,
	role ports.RecipientRole,
	userID kernel.UUID,
	token string,
	now time.Time,
) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	dto := DeviceTokenDTO{Role: string(role), Token: token, UserID: userID.Bytes(), CreatedAt: now.UTC()}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role"}, {Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "created_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return errors.Wrapf(err, "register %s device", role)
	}
	return nil
}

func (r *GormRecipientDirectory) TokensFor(ctx context.Context, role ports.RecipientRole, userID kernel.UUID) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&DeviceTokenDTO{}).
		Where("role = ? AND user_id = ?", string(role), userID.Bytes()).
		Order("created_at").
		Pluck("token", &tokens).Error
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s %s", role, userID)
	}
	return tokens, nil
}

func (r *GormRecipientDirectory) AdminTokens(ctx context.Context) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&DeviceTokenDTO{}).
		Where("role = ?", string(ports.RoleAdmin)).
		Order("created_at").
		Pluck("token", &tokens).Error
	if err != nil {
		return nil, errors.Wrap(err, "resolve admins")
	}
	return tokens, nil
}
