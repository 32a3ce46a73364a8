package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/entity"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

func TestNewFix(t *testing.T) {
	loc := valueobject.NewLocation(44.43, 26.10, nil, nil, time.Now().UTC())

	a := entity.NewFix("seq-1", loc)
	b := entity.NewFix("seq-1", loc)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "seq-1", a.SequenceID)
	assert.Same(t, loc, a.Location)
}
