package pushlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"mealflow/internal/adapters/out/pushlog"
	"mealflow/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport_WritesOneLinePerMessage(t *testing.T) {
	var buf bytes.Buffer
	transport := pushlog.NewTransport(zerolog.New(&buf))

	err := transport.Send(context.Background(), ports.RoleAdmin, ports.PushMessage{
		RecipientToken: "ops-1",
		Title:          "Reassignment requested",
		Body:           "A customer asked for a new chef",
		Data:           map[string]string{"requestId": "r-1"},
	})
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "admin", line["role"])
	assert.Equal(t, "ops-1", line["token"])
	assert.Equal(t, "A customer asked for a new chef", line["message"])
	assert.Equal(t, map[string]any{"requestId": "r-1"}, line["data"])
	assert.Equal(t, "push_log", line["component"])
}
