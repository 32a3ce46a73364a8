package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrMissingLocation = fmt.Errorf("missing coordinates: %w", ErrInvalidLocation)
	ErrUnknownTag      = errors.New("unknown reading tag")
)
