// Package errors provides coded errors for cascade.
//
// Every error returned across a package boundary carries an ErrorCode so
// callers and tests can match on the kind of failure without parsing
// messages.
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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration file errors
	ErrFileNotFound      ErrorCode = "FILE_NOT_FOUND"
	ErrConfigLoad        ErrorCode = "CONFIG_LOAD"
	ErrConfigParse       ErrorCode = "CONFIG_PARSE"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"

	// Resolution errors
	ErrOverrideLoad       ErrorCode = "OVERRIDE_LOAD"
	ErrDiscoveredFileLoad ErrorCode = "DISCOVERED_FILE_LOAD"
	ErrDiscoveryIO        ErrorCode = "DISCOVERY_IO"

	// Settings errors
	ErrSettingsLoad ErrorCode = "SETTINGS_LOAD"
)

// CascadeError represents a structured error with code and details
type CascadeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CascadeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CascadeError) Unwrap() error {
	return e.Wrapped
}

// Is matches any CascadeError carrying the same code.
func (e *CascadeError) Is(target error) bool {
	var targetErr *CascadeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CascadeError with the given code and message
func New(code ErrorCode, message string) *CascadeError {
	return &CascadeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CascadeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CascadeError {
	return &CascadeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CascadeError
func Wrap(err error, code ErrorCode, message string) *CascadeError {
	if err == nil {
		return nil
	}
	return &CascadeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CascadeError {
	if err == nil {
		return nil
	}
	return &CascadeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CascadeError) WithDetail(key string, value interface{}) *CascadeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether any error in err's chain has the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var cascadeErr *CascadeError
		if !errors.As(err, &cascadeErr) {
			return false
		}
		if cascadeErr.Code == code {
			return true
		}
		err = cascadeErr.Wrapped
	}
	return false
}

// GetErrorCode returns the outermost error code, or ErrUnknown if err is not a CascadeError
func GetErrorCode(err error) ErrorCode {
	var cascadeErr *CascadeError
	if errors.As(err, &cascadeErr) {
		return cascadeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CascadeError
func GetErrorDetails(err error) map[string]interface{} {
	var cascadeErr *CascadeError
	if errors.As(err, &cascadeErr) {
		return cascadeErr.Details
	}
	return nil
}

// Is reports whether any error in err's chain matches target. It is
// errors.Is, re-exported so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As, re-exported so callers need only this package.
func As(err error, target any) bool {
	return errors.As(err, target)
}
