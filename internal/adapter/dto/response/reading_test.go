package response_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/field-notes-sensors/internal/adapter/dto/response"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/entity"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

func TestReadingFromValue(t *testing.T) {
	t.Run("finite accuracy and altitude", func(t *testing.T) {
		alt := 312.4
		fix := &entity.Fix{
			ID:       uuid.New(),
			Location: valueobject.NewLocation(46.77, 23.59, &alt, nil, time.Now().UTC()),
		}

		resp := response.ReadingFromValue(fix, valueobject.NewAccuracy(2.5, 1))

		require.NotNil(t, resp.Accuracy)
		assert.Equal(t, float32(2.5), *resp.Accuracy)
		assert.Empty(t, resp.AccuracyRaw)
		require.NotNil(t, resp.Altitude)
		assert.Equal(t, 312.4, *resp.Altitude)
	})

	t.Run("non-finite accuracy goes to raw field", func(t *testing.T) {
		tests := []struct {
			value float32
			want  string
		}{
			{float32(math.NaN()), "NaN"},
			{float32(math.Inf(1)), "+Inf"},
			{float32(math.Inf(-1)), "-Inf"},
		}

		for _, tt := range tests {
			resp := response.ReadingFromValue(&entity.Fix{ID: uuid.New()}, valueobject.NewAccuracy(tt.value, 0))

			assert.Nil(t, resp.Accuracy)
			assert.Equal(t, tt.want, resp.AccuracyRaw)
		}
	})

	t.Run("unknown accuracy has neither field", func(t *testing.T) {
		resp := response.ReadingFromValue(&entity.Fix{ID: uuid.New()}, valueobject.NewUnknownAccuracy(3))

		assert.Nil(t, resp.Accuracy)
		assert.Empty(t, resp.AccuracyRaw)
		assert.Nil(t, resp.Altitude)
	})
}
