package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Zero(t, HaversineDistance(-16.5, -68.15, -16.5, -68.15))
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		km := HaversineDistance(0, 0, 0, 1)
		assert.InDelta(t, 111.19, km, 0.1)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := HaversineDistance(-16.5, -68.19, -16.48, -68.24)
		d2 := HaversineDistance(-16.48, -68.24, -16.5, -68.19)
		assert.Equal(t, d1, d2)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(-16.5, -68.15))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))

	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(-90.1, 0))
	assert.False(t, ValidateCoordinates(0, 180.1))
	assert.False(t, ValidateCoordinates(0, -180.1))
}
