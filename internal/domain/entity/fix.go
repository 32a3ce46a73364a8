package entity

import (
	"github.com/google/uuid"

	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

// Fix is a captured location tied to the recording sequence it belongs to.
type Fix struct {
	ID         uuid.UUID
	SequenceID string
	Location   *valueobject.Location
}

func NewFix(sequenceID string, loc *valueobject.Location) *Fix {
	return &Fix{
		ID:         uuid.New(),
		SequenceID: sequenceID,
		Location:   loc,
	}
}
