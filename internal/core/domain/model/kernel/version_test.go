package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mealflow/internal/core/domain/model/kernel"
)

func TestVersioned(t *testing.T) {
	v := kernel.RestoreVersioned(3)

	assert.Equal(t, 3, v.Version())
	assert.Equal(t, 4, v.NextVersion())

	v.AdvanceVersion()
	assert.Equal(t, 4, v.Version())

	var fresh kernel.Versioned
	assert.Equal(t, 0, fresh.Version())
	assert.Equal(t, 1, fresh.NextVersion())
}
