// Package errors provides coded errors. Codes are stable across
// messages, so tests and scripts match on them instead of text.
package errors

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
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
	ErrLocked        ErrorCode = "LOCKED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Archive errors
	ErrArchiveInvalid ErrorCode = "ARCHIVE_INVALID"
	ErrArchiveWrite   ErrorCode = "ARCHIVE_WRITE"
	ErrEntryNotFound  ErrorCode = "ENTRY_NOT_FOUND"
	ErrEntryRead      ErrorCode = "ENTRY_READ"

	// Livery errors
	ErrLiveryInvalid  ErrorCode = "LIVERY_INVALID"
	ErrLiveryNotFound ErrorCode = "LIVERY_NOT_FOUND"

	// Settings errors
	ErrSettingsParse ErrorCode = "SETTINGS_PARSE"
	ErrSettingsField ErrorCode = "SETTINGS_FIELD"
	ErrStateLoad     ErrorCode = "STATE_LOAD"
	ErrStateSave     ErrorCode = "STATE_SAVE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// SkinError represents a structured error with code and details
type SkinError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SkinError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SkinError) Unwrap() error {
	return e.Wrapped
}

// MarshalZerologObject logs the code, message, details and cause as fields
func (e *SkinError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("code", string(e.Code)).Str("message", e.Message)
	if len(e.Details) > 0 {
		ev.Fields(e.Details)
	}
	if e.Wrapped != nil {
		ev.Str("cause", e.Wrapped.Error())
	}
}

// Is implements errors.Is interface
func (e *SkinError) Is(target error) bool {
	var targetErr *SkinError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SkinError with the given code and message
func New(code ErrorCode, message string) *SkinError {
	return &SkinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SkinError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SkinError {
	return &SkinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SkinError
func Wrap(err error, code ErrorCode, message string) *SkinError {
	if err == nil {
		return nil
	}
	return &SkinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SkinError {
	if err == nil {
		return nil
	}
	return &SkinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SkinError) WithDetail(key string, value interface{}) *SkinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var skinErr *SkinError
	if errors.As(err, &skinErr) {
		return skinErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SkinError
func GetErrorCode(err error) ErrorCode {
	var skinErr *SkinError
	if errors.As(err, &skinErr) {
		return skinErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SkinError
func GetErrorDetails(err error) map[string]interface{} {
	var skinErr *SkinError
	if errors.As(err, &skinErr) {
		return skinErr.Details
	}
	return nil
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
