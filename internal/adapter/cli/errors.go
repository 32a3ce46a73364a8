package cli

import (
	"errors"
	"fmt"

	"github.com/marcos-nsantos/field-notes-sensors/internal/domain"
)

type decodeError struct {
	err error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("decoding fix: %v", e.err)
}

func (e *decodeError) Unwrap() error {
	return e.err
}

func isInputError(err error) bool {
	var de *decodeError
	return errors.As(err, &de) || errors.Is(err, domain.ErrInvalidLocation)
}
