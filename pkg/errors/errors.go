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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Selection errors
	ErrInvalidSelection ErrorCode = "INVALID_SELECTION"
	ErrUnresolvedAction ErrorCode = "UNRESOLVED_ACTION"

	// Execution errors
	ErrCommandFailed  ErrorCode = "COMMAND_FAILED"
	ErrFallbackFailed ErrorCode = "FALLBACK_FAILED"
)

// TpickError represents a structured error with code and details
type TpickError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TpickError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TpickError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TpickError) Is(target error) bool {
	var targetErr *TpickError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TpickError with the given code and message
func New(code ErrorCode, message string) *TpickError {
	return &TpickError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TpickError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TpickError {
	return &TpickError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TpickError
func Wrap(err error, code ErrorCode, message string) *TpickError {
	if err == nil {
		return nil
	}
	return &TpickError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TpickError {
	if err == nil {
		return nil
	}
	return &TpickError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TpickError) WithDetail(key string, value interface{}) *TpickError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tpickErr *TpickError
	if errors.As(err, &tpickErr) {
		return tpickErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TpickError
func GetErrorCode(err error) ErrorCode {
	var tpickErr *TpickError
	if errors.As(err, &tpickErr) {
		return tpickErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TpickError
func GetErrorDetails(err error) map[string]interface{} {
	var tpickErr *TpickError
	if errors.As(err, &tpickErr) {
		return tpickErr.Details
	}
	return nil
}

// Message returns the human readable message of a TpickError without the
// code prefix, falling back to err.Error() for other errors.
func Message(err error) string {
	var tpickErr *TpickError
	if errors.As(err, &tpickErr) {
		if tpickErr.Wrapped != nil {
			return fmt.Sprintf("%s: %v", tpickErr.Message, Message(tpickErr.Wrapped))
		}
		return tpickErr.Message
	}
	return err.Error()
}
