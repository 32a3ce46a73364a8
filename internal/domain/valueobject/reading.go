package valueobject

import (
	"fmt"

	"github.com/marcos-nsantos/field-notes-sensors/internal/domain"
)

// Source identifies the device class a reading originates from.
type Source uint8

const (
	SourceUnknown Source = iota
	SourcePhone
)

func (s Source) String() string {
	switch s {
	case SourcePhone:
		return "phone"
	default:
		return "unknown"
	}
}

func ParseSource(name string) (Source, error) {
	switch name {
	case "phone":
		return SourcePhone, nil
	default:
		return SourceUnknown, fmt.Errorf("source %q: %w", name, domain.ErrUnknownTag)
	}
}

// Kind identifies the measurement a reading carries.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPhoneGPSAccuracy
)

func (k Kind) String() string {
	switch k {
	case KindPhoneGPSAccuracy:
		return "phone_gps_accuracy"
	default:
		return "unknown"
	}
}

func ParseKind(name string) (Kind, error) {
	switch name {
	case "phone_gps_accuracy":
		return KindPhoneGPSAccuracy, nil
	default:
		return KindUnknown, fmt.Errorf("kind %q: %w", name, domain.ErrUnknownTag)
	}
}

// Reading is the record shape shared by every sensor reading. Fields are
// unexported so a constructed reading cannot change.
type Reading[T any] struct {
	value   T
	present bool
	status  int
	source  Source
	kind    Kind
}

func newReading[T any](value T, status int, source Source, kind Kind) Reading[T] {
	return Reading[T]{
		value:   value,
		present: true,
		status:  status,
		source:  source,
		kind:    kind,
	}
}

func newEmptyReading[T any](status int, source Source, kind Kind) Reading[T] {
	return Reading[T]{
		status: status,
		source: source,
		kind:   kind,
	}
}

// Value returns the measured value and whether one was recorded.
func (r Reading[T]) Value() (T, bool) {
	return r.value, r.present
}

func (r Reading[T]) HasValue() bool {
	return r.present
}

func (r Reading[T]) Status() int {
	return r.status
}

func (r Reading[T]) Source() Source {
	return r.source
}

func (r Reading[T]) Kind() Kind {
	return r.kind
}
