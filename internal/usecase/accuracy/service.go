package accuracy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/field-notes-sensors/internal/adapter/sink"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/entity"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

type Service struct {
	sink sink.ReadingSink
}

func NewService(readingSink sink.ReadingSink) *Service {
	return &Service{sink: readingSink}
}

type ConvertInput struct {
	FixID      uuid.UUID
	SequenceID string
	Latitude   *float64
	Longitude  *float64
	Altitude   *float64
	Accuracy   *float64
	Status     int
	CapturedAt time.Time
}

type Result struct {
	Fix     *entity.Fix
	Reading valueobject.Accuracy
}

// Convert turns a captured fix into its horizontal accuracy reading and hands
// it to the sink. A fix without accuracy yields the unknown reading.
func (s *Service) Convert(ctx context.Context, input ConvertInput) (*Result, error) {
	if input.Latitude == nil || input.Longitude == nil {
		return nil, fmt.Errorf("converting fix: %w", domain.ErrMissingLocation)
	}

	loc := valueobject.NewLocation(*input.Latitude, *input.Longitude, input.Altitude, input.Accuracy, input.CapturedAt)
	if !loc.IsValid() {
		return nil, fmt.Errorf("converting fix (%f, %f): %w", loc.Latitude, loc.Longitude, domain.ErrInvalidLocation)
	}

	fix := entity.NewFix(input.SequenceID, loc)
	if input.FixID != uuid.Nil {
		fix.ID = input.FixID
	}

	reading := loc.AccuracyReading(input.Status)

	if err := s.sink.Write(ctx, fix, reading); err != nil {
		return nil, fmt.Errorf("writing reading: %w", err)
	}

	return &Result{
		Fix:     fix,
		Reading: reading,
	}, nil
}
