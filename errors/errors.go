package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors
type ErrorCode string

const (
	// Lookup outcomes
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Store errors
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeStoreError       ErrorCode = "STORE_ERROR"

	// Orchestration errors
	ErrCodeDeadline         ErrorCode = "DEADLINE_EXCEEDED"
	ErrCodeResolutionFailed ErrorCode = "RESOLUTION_FAILED"
	ErrCodeMalformedInput   ErrorCode = "MALFORMED_INPUT"

	// Schema errors
	ErrCodeBadColumn      ErrorCode = "BAD_COLUMN"
	ErrCodeSchemaMismatch ErrorCode = "SCHEMA_MISMATCH"
	ErrCodeBadTimeFormat  ErrorCode = "BAD_TIME_FORMAT"
)

// AppError carries a code alongside the wrapped cause
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError extracts an AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError with the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Signing errors
	ErrBadSignature   = errors.New("signature mismatch")
	ErrStaleTimestamp = errors.New("request timestamp outside tolerance")
)
