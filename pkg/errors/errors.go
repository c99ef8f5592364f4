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

	// Rule errors
	ErrInvalidGroup ErrorCode = "INVALID_GROUP"
	ErrInvalidRule  ErrorCode = "INVALID_RULE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWatch ErrorCode = "CONFIG_WATCH"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// FilegroupError represents a structured error with code and details
type FilegroupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilegroupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilegroupError) Unwrap() error {
	return e.Wrapped
}

// Is matches any FilegroupError carrying the same code.
func (e *FilegroupError) Is(target error) bool {
	var targetErr *FilegroupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilegroupError with the given code and message
func New(code ErrorCode, message string) *FilegroupError {
	return &FilegroupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilegroupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilegroupError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &FilegroupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *FilegroupError) WithDetail(key string, value interface{}) *FilegroupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fgErr *FilegroupError
	if errors.As(err, &fgErr) {
		return fgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilegroupError
func GetErrorCode(err error) ErrorCode {
	var fgErr *FilegroupError
	if errors.As(err, &fgErr) {
		return fgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FilegroupError
func GetErrorDetails(err error) map[string]interface{} {
	var fgErr *FilegroupError
	if errors.As(err, &fgErr) {
		return fgErr.Details
	}
	return nil
}
