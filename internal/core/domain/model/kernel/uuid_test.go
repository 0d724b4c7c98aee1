package kernel_test

import (
	"testing"

	"mealflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id1.String())
	assert.False(t, id1.IsEqual(id2))
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("accepts canonical and alternative forms", func(t *testing.T) {
		for _, input := range []string{
			validUUID,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		} {
			id, err := kernel.UUIDFromString(input)
			require.NoError(t, err, input)
			assert.Equal(t, validUUID, id.String())
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716", "zzze8400-e29b-41d4-a716-446655440000"} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("valid bytes", func(t *testing.T) {
		id, err := kernel.UUIDFromBytes([]byte{
			0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
			0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
		})

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})
		assert.ErrorContains(t, err, "invalid UUID format")
	})

	t.Run("nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestOptionalUUIDFromString(t *testing.T) {
	id, err := kernel.OptionalUUIDFromString("")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = kernel.OptionalUUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())

	_, err = kernel.OptionalUUIDFromString("bogus")
	assert.Error(t, err)
}

func TestSameOptional(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()
	aCopy := a

	assert.True(t, kernel.SameOptional(nil, nil))
	assert.True(t, kernel.SameOptional(&a, &aCopy))
	assert.False(t, kernel.SameOptional(&a, &b))
	assert.False(t, kernel.SameOptional(&a, nil))
	assert.False(t, kernel.SameOptional(nil, &b))
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())

	parsedNil, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, parsedNil.Validate())
}

func TestUUID_BytesDoesNotLeakMutation(t *testing.T) {
	original := kernel.NewUUID()
	originalString := original.String()

	raw := original.Bytes()
	for i := range raw {
		raw[i] = 0xFF
	}

	assert.Equal(t, originalString, original.String())
	assert.NotEqual(t, originalString, uuid.UUID(raw).String())
}
