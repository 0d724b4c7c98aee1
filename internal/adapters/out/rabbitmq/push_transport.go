// Package rabbitmq publishes push notifications to a topic exchange. A
// separate gateway consumes them and talks to the device platforms.
package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	"mealflow/internal/core/ports"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "mealflow.notifications"

// Channel is the part of *amqp.Channel the transport uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type PushTransport struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
	mu       sync.Mutex
}

// Dial connects to url and declares the durable topic exchange.
func Dial(url, exchange string) (*PushTransport, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "open channel")
	}

	t, err := NewPushTransport(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	t.conn = conn
	return t, nil
}

func NewPushTransport(ch Channel, exchange string) (*PushTransport, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}
	return &PushTransport{ch: ch, exchange: exchange}, nil
}

// RoutingKey is push.<role>, so gateways can bind per audience.
func RoutingKey(role ports.RecipientRole) string {
	return "push." + string(role)
}

func (t *PushTransport) Send(ctx context.Context, role ports.RecipientRole, msg ports.PushMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal push message")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	err = t.ch.PublishWithContext(ctx, t.exchange, RoutingKey(role), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s notification", role)
	}
	return nil
}

func (t *PushTransport) Close() error {
	err := t.ch.Close()
	if t.conn != nil && !t.conn.IsClosed() {
		if cerr := t.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
