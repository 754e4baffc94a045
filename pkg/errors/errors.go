package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Bootstrap errors
	ErrStepInstall   ErrorCode = "STEP_INSTALL"
	ErrStepFatal     ErrorCode = "STEP_FATAL"
	ErrFrameworkLoad ErrorCode = "FRAMEWORK_LOAD"

	// Sync errors
	ErrFetch     ErrorCode = "FETCH"
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDiff      ErrorCode = "DIFF"

	// Container listing errors
	ErrRuntimeUnavailable ErrorCode = "RUNTIME_UNAVAILABLE"
	ErrListing            ErrorCode = "LISTING"
)

// BootError represents a structured error with code and details.
// Fatal errors abort the whole run; everything else is logged and skipped.
type BootError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
	Fatal   bool
}

// Error implements the error interface
func (e *BootError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BootError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BootError) Is(target error) bool {
	var targetErr *BootError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BootError with the given code and message
func New(code ErrorCode, message string) *BootError {
	return &BootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BootError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BootError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a BootError
func Wrap(err error, code ErrorCode, message string) *BootError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BootError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// AsFatal marks the error as fatal and returns it
func (e *BootError) AsFatal() *BootError {
	e.Fatal = true
	return e
}

// WithDetail adds a detail to the error
func (e *BootError) WithDetail(key string, value interface{}) *BootError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bootErr *BootError
	if errors.As(err, &bootErr) {
		return bootErr.Code == code
	}
	return false
}

// HasErrorCode reports whether any BootError in the chain carries code
func HasErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var bootErr *BootError
		if !errors.As(err, &bootErr) {
			return false
		}
		if bootErr.Code == code {
			return true
		}
		err = bootErr.Wrapped
	}
	return false
}

// IsFatal reports whether any BootError in the chain is marked fatal
func IsFatal(err error) bool {
	for err != nil {
		var bootErr *BootError
		if !errors.As(err, &bootErr) {
			return false
		}
		if bootErr.Fatal {
			return true
		}
		err = bootErr.Wrapped
	}
	return false
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
