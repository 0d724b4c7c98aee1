// Package pushlog is the push transport used when no broker is configured.
// Every message is written to the log and counted as sent.
package pushlog

import (
	"context"

	"mealflow/internal/core/ports"

	"github.com/rs/zerolog"
)

type Transport struct {
	logger zerolog.Logger
}

func NewTransport(logger zerolog.Logger) *Transport {
	return &Transport{logger: logger.With().Str("component", "push_log").Logger()}
}

func (t *Transport) Send(_ context.Context, role ports.RecipientRole, msg ports.PushMessage) error {
	event := t.logger.Info().
		Str("role", string(role)).
		Str("token", msg.RecipientToken).
		Str("title", msg.Title)
	if len(msg.Data) > 0 {
		dict := zerolog.Dict()
		for k, v := range msg.Data {
			dict.Str(k, v)
		}
		event = event.Dict("data", dict)
	}
	event.Msg(msg.Body)
	return nil
}
