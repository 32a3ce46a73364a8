package valueobject_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

func TestLocation_IsValid(t *testing.T) {
	now := time.Now().UTC()

	assert.True(t, valueobject.NewLocation(37.7749, -122.4194, nil, nil, now).IsValid())
	assert.True(t, valueobject.NewLocation(-90, 180, nil, nil, now).IsValid())
	assert.False(t, valueobject.NewLocation(91, 0, nil, nil, now).IsValid())
	assert.False(t, valueobject.NewLocation(0, -180.5, nil, nil, now).IsValid())
}

func TestLocation_AccuracyReading(t *testing.T) {
	t.Run("with accuracy", func(t *testing.T) {
		acc := 12.5
		loc := valueobject.NewLocation(37.7749, -122.4194, nil, &acc, time.Now().UTC())

		r := loc.AccuracyReading(1)

		assert.True(t, r.Equal(valueobject.NewAccuracy(12.5, 1)))
	})

	t.Run("without accuracy", func(t *testing.T) {
		loc := valueobject.NewLocation(37.7749, -122.4194, nil, nil, time.Now().UTC())

		r := loc.AccuracyReading(4)

		assert.False(t, r.HasValue())
		assert.Equal(t, 4, r.Status())
	})
}
