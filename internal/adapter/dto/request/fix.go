package request

import (
	"time"

	"github.com/google/uuid"
)

// FixRequest is one input line of the accuracy converter.
type FixRequest struct {
	ID         uuid.UUID `json:"id"`
	SequenceID string    `json:"sequence_id"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Altitude   *float64  `json:"altitude"`
	Accuracy   *float64  `json:"accuracy"`
	Status     *int      `json:"status"`
	CapturedAt time.Time `json:"captured_at"`
}
