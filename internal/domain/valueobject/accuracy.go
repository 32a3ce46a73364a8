package valueobject

import (
	"fmt"
	"math"
)

// UnknownAccuracySentinel is reported by LegacyValue when no accuracy was
// recorded.
const UnknownAccuracySentinel float32 = math.SmallestNonzeroFloat32

// Accuracy is the estimated horizontal accuracy of a phone GPS fix: the
// radius in meters of the 68% confidence circle around the reported position.
type Accuracy struct {
	Reading[float32]
}

// NewAccuracy records meters as given. Negative, infinite and NaN values are
// kept unchanged.
func NewAccuracy(meters float32, status int) Accuracy {
	return Accuracy{Reading: newReading(meters, status, SourcePhone, KindPhoneGPSAccuracy)}
}

// NewUnknownAccuracy returns a reading whose fix carried no accuracy.
func NewUnknownAccuracy(status int) Accuracy {
	return Accuracy{Reading: newEmptyReading[float32](status, SourcePhone, KindPhoneGPSAccuracy)}
}

func (a Accuracy) Meters() (float32, bool) {
	return a.Value()
}

// LegacyValue returns the accuracy or UnknownAccuracySentinel when absent.
func (a Accuracy) LegacyValue() float32 {
	if m, ok := a.Value(); ok {
		return m
	}
	return UnknownAccuracySentinel
}

// Equal compares every accessor. Values are compared by bit pattern, so a NaN
// reading equals itself.
func (a Accuracy) Equal(other Accuracy) bool {
	am, aok := a.Meters()
	om, ook := other.Meters()
	if aok != ook {
		return false
	}
	if aok && math.Float32bits(am) != math.Float32bits(om) {
		return false
	}
	return a.Status() == other.Status() &&
		a.Source() == other.Source() &&
		a.Kind() == other.Kind()
}

func (a Accuracy) String() string {
	if m, ok := a.Meters(); ok {
		return fmt.Sprintf("%s(%gm, status=%d)", a.Kind(), m, a.Status())
	}
	return fmt.Sprintf("%s(unknown, status=%d)", a.Kind(), a.Status())
}
