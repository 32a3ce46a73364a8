package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/field-notes-sensors/internal/domain"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

func TestParseSource(t *testing.T) {
	s, err := valueobject.ParseSource("phone")
	require.NoError(t, err)
	assert.Equal(t, valueobject.SourcePhone, s)
	assert.Equal(t, "phone", s.String())

	_, err = valueobject.ParseSource("satellite")
	assert.ErrorIs(t, err, domain.ErrUnknownTag)
	assert.Equal(t, "unknown", valueobject.SourceUnknown.String())
}

func TestParseKind(t *testing.T) {
	k, err := valueobject.ParseKind("phone_gps_accuracy")
	require.NoError(t, err)
	assert.Equal(t, valueobject.KindPhoneGPSAccuracy, k)
	assert.Equal(t, "phone_gps_accuracy", k.String())

	_, err = valueobject.ParseKind("")
	assert.ErrorIs(t, err, domain.ErrUnknownTag)
	assert.Equal(t, "unknown", valueobject.KindUnknown.String())
}
