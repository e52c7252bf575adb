package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Model errors
	CodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	CodeUpstream      ErrorCode = "UPSTREAM_ERROR"
	CodeQuotaExceeded ErrorCode = "QUOTA_EXCEEDED"

	// Document store errors
	CodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	CodeStoreOperation   ErrorCode = "STORE_OPERATION_ERROR"
)

// ErrQuotaExceeded is the signal a model client returns when the upstream
// answers HTTP 429. It is never shown to callers; the service layer replaces
// it with a fallback payload.
var ErrQuotaExceeded = NewError(CodeQuotaExceeded, "model quota exceeded", nil)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError by code, so wrapped instances of the
// package sentinels compare equal under errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewInvalidInputError(message string, err error) *DomainError {
	return NewError(CodeInvalidInput, message, err)
}

// NewConfigurationError reports a missing credential or connection setting.
// It fails the operation, never the process.
func NewConfigurationError(message string) *DomainError {
	return NewError(CodeConfiguration, message, nil)
}

func NewStoreUnavailableError(message string, err error) *DomainError {
	return NewError(CodeStoreUnavailable, message, err)
}

func NewStoreOperationError(operation string, err error) *DomainError {
	return NewError(CodeStoreOperation, fmt.Sprintf("document store %s failed", operation), err)
}

// UpstreamError is a non-quota failure from the model endpoint.
// StatusCode is zero when the request never got an HTTP response.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("model request failed: %s", e.Body)
	}
	return fmt.Sprintf("model request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsQuotaExceeded reports whether err carries the quota-exhaustion signal.
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

// CodeOf extracts the ErrorCode from err, or CodeInternal when err is not a
// DomainError. UpstreamError maps to CodeUpstream.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return CodeUpstream
	}
	return CodeInternal
}
