package response

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/entity"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

type ReadingResponse struct {
	FixID       uuid.UUID  `json:"fix_id"`
	SequenceID  string     `json:"sequence_id,omitempty"`
	Source      string     `json:"source"`
	Type        string     `json:"type"`
	Status      int        `json:"status"`
	Accuracy    *float32   `json:"accuracy"`
	AccuracyRaw string     `json:"accuracy_raw,omitempty"`
	Altitude    *float64   `json:"altitude,omitempty"`
	CapturedAt  *time.Time `json:"captured_at,omitempty"`
}

// ReadingFromValue maps a reading to its JSON form. NaN and infinite
// accuracies have no JSON number, so they go to AccuracyRaw as "NaN", "+Inf"
// or "-Inf" and Accuracy stays null.
func ReadingFromValue(f *entity.Fix, r valueobject.Accuracy) ReadingResponse {
	resp := ReadingResponse{
		FixID:      f.ID,
		SequenceID: f.SequenceID,
		Source:     r.Source().String(),
		Type:       r.Kind().String(),
		Status:     r.Status(),
	}

	if m, ok := r.Meters(); ok {
		if v := float64(m); math.IsNaN(v) || math.IsInf(v, 0) {
			resp.AccuracyRaw = strconv.FormatFloat(v, 'g', -1, 32)
		} else {
			resp.Accuracy = &m
		}
	}

	if f.Location != nil {
		resp.Altitude = f.Location.Altitude
		if !f.Location.CapturedAt.IsZero() {
			capturedAt := f.Location.CapturedAt
			resp.CapturedAt = &capturedAt
		}
	}

	return resp
}
