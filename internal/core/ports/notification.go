package ports

import (
	"context"

	"mealflow/internal/core/domain/model/kernel"
)

// RecipientRole is who a notification is addressed to.
type RecipientRole string

const (
	RoleCustomer RecipientRole = "customer"
	RoleChef     RecipientRole = "chef"
	RoleAdmin    RecipientRole = "admin"
)

// PushMessage is the transport-level notification.
type PushMessage struct {
	RecipientToken string            `json:"recipientToken"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Data           map[string]string `json:"data,omitempty"`
}

// PushTransport delivers one message to one device.
type PushTransport interface {
	Send(ctx context.Context, role RecipientRole, msg PushMessage) error
}

// RecipientDirectory resolves users to device tokens.
type RecipientDirectory interface {
	TokensFor(ctx context.Context, role RecipientRole, userID kernel.UUID) ([]string, error)
	AdminTokens(ctx context.Context) ([]string, error)
}
