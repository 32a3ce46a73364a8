package apperror

import (
	"errors"
	"fmt"
)

const (
	ExitOK       = 0
	ExitInternal = 1
	ExitConfig   = 2
	ExitInput    = 3
)

type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	ExitCode int    `json:"-"`
	Err      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Config(err error) *AppError {
	return &AppError{
		Code:     "CONFIG_ERROR",
		Message:  "invalid configuration",
		ExitCode: ExitConfig,
		Err:      err,
	}
}

func InvalidInput(line int, err error) *AppError {
	return &AppError{
		Code:     "INVALID_INPUT",
		Message:  fmt.Sprintf("invalid fix on line %d", line),
		ExitCode: ExitInput,
		Err:      err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:     "INTERNAL_ERROR",
		Message:  "an internal error occurred",
		ExitCode: ExitInternal,
		Err:      err,
	}
}

func Wrap(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:     appErr.Code,
			Message:  message,
			ExitCode: appErr.ExitCode,
			Err:      err,
		}
	}
	return Internal(fmt.Errorf("%s: %w", message, err))
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}
	return ExitInternal
}
