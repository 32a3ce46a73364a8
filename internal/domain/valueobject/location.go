package valueobject

import "time"

type Location struct {
	Latitude   float64
	Longitude  float64
	Altitude   *float64
	Accuracy   *float64
	CapturedAt time.Time
}

func NewLocation(lat, lng float64, altitude, accuracy *float64, capturedAt time.Time) *Location {
	return &Location{
		Latitude:   lat,
		Longitude:  lng,
		Altitude:   altitude,
		Accuracy:   accuracy,
		CapturedAt: capturedAt,
	}
}

func (l *Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// AccuracyReading builds the horizontal accuracy reading of this fix.
func (l *Location) AccuracyReading(status int) Accuracy {
	if l.Accuracy == nil {
		return NewUnknownAccuracy(status)
	}
	return NewAccuracy(float32(*l.Accuracy), status)
}
