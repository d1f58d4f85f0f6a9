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
	ErrPermission    ErrorCode = "PERMISSION"
	ErrIO            ErrorCode = "IO"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Mod directory errors
	ErrSourceDirMissing ErrorCode = "SOURCE_DIR_MISSING"
	ErrGameDirMissing   ErrorCode = "GAME_DIR_MISSING"

	// Link errors
	ErrLinkCreate ErrorCode = "LINK_CREATE"
	ErrLinkRemove ErrorCode = "LINK_REMOVE"
	ErrLinkRead   ErrorCode = "LINK_READ"

	// Preset errors
	ErrPresetNotFound ErrorCode = "PRESET_NOT_FOUND"
	ErrPresetLoad     ErrorCode = "PRESET_LOAD"
	ErrPresetSave     ErrorCode = "PRESET_SAVE"
)

// ModlinkError represents a structured error with code and details
type ModlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ModlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ModlinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ModlinkError) Is(target error) bool {
	var targetErr *ModlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ModlinkError with the given code and message
func New(code ErrorCode, message string) *ModlinkError {
	return &ModlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ModlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ModlinkError {
	return &ModlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ModlinkError
func Wrap(err error, code ErrorCode, message string) *ModlinkError {
	if err == nil {
		return nil
	}
	return &ModlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ModlinkError {
	if err == nil {
		return nil
	}
	return &ModlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ModlinkError) WithDetail(key string, value interface{}) *ModlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ModlinkError) WithDetails(details map[string]interface{}) *ModlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mlErr *ModlinkError
	if errors.As(err, &mlErr) {
		return mlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ModlinkError
func GetErrorCode(err error) ErrorCode {
	var mlErr *ModlinkError
	if errors.As(err, &mlErr) {
		return mlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ModlinkError
func GetErrorDetails(err error) map[string]interface{} {
	var mlErr *ModlinkError
	if errors.As(err, &mlErr) {
		return mlErr.Details
	}
	return nil
}
