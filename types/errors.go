package types

import (
	"errors"
	"fmt"
)

// Standard error types
type ErrorType string

const (
	ErrTypeConfig        ErrorType = "CONFIG_ERROR"
	ErrTypeValidation    ErrorType = "VALIDATION_ERROR"
	ErrTypeInvalidValue  ErrorType = "INVALID_VALUE"
	ErrTypeNetwork       ErrorType = "NETWORK_ERROR"
	ErrTypeHTTPStatus    ErrorType = "HTTP_STATUS_ERROR"
	ErrTypeDecode        ErrorType = "DECODE_ERROR"
	ErrTypeInternal      ErrorType = "INTERNAL_ERROR"
	ErrTypeAssetNotFound ErrorType = "ASSET_NOT_FOUND"
	ErrTypeEmptyPayload  ErrorType = "EMPTY_PAYLOAD"
)

// StandardError provides consistent error formatting
type StandardError struct {
	Type    ErrorType
	Message string
	Details map[string]any
	Cause   error
}

func (e *StandardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.Cause
}

// IsType reports whether err, or anything it wraps, is a StandardError of type t.
func IsType(err error, t ErrorType) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}

// Message returns the user facing message of a StandardError, or err.Error() otherwise.
func Message(err error) string {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

// Error constructors for common cases

func NewConfigError(msg string, cause error) error {
	return &StandardError{
		Type:    ErrTypeConfig,
		Message: msg,
		Cause:   cause,
	}
}

func NewValidationError(field, msg string) error {
	return &StandardError{
		Type:    ErrTypeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, msg),
		Details: map[string]any{"field": field},
	}
}

func NewInvalidValueError(field, value, msg string) error {
	return &StandardError{
		Type:    ErrTypeInvalidValue,
		Message: fmt.Sprintf("invalid value for %s: %s (%s)", field, value, msg),
		Details: map[string]any{"field": field, "value": value},
	}
}

func NewNetworkError(url string, cause error) error {
	return &StandardError{
		Type:    ErrTypeNetwork,
		Message: fmt.Sprintf("network request to %s failed", url),
		Details: map[string]any{"url": url},
		Cause:   cause,
	}
}

// NewHTTPStatusError reports a non-success upstream status. detail is the upstream error
// field when present, otherwise the status text.
func NewHTTPStatusError(status int, detail string) error {
	return &StandardError{
		Type:    ErrTypeHTTPStatus,
		Message: fmt.Sprintf("API request failed: %d - %s", status, detail),
		Details: map[string]any{"status": status},
	}
}

func NewDecodeError(what string, cause error) error {
	return &StandardError{
		Type:    ErrTypeDecode,
		Message: fmt.Sprintf("failed to decode %s", what),
		Cause:   cause,
	}
}

func NewAssetNotFoundError(format Format, tokenId string) error {
	msg := fmt.Sprintf("%s file not found for this token.", format.Label())
	if !format.Is3D() {
		msg = fmt.Sprintf("%s image not found for this token.", format.Label())
	}
	return &StandardError{
		Type:    ErrTypeAssetNotFound,
		Message: msg,
		Details: map[string]any{"format": string(format), "token_id": tokenId},
	}
}

func NewEmptyPayloadError(format Format, tokenId string) error {
	var msg string
	switch format {
	case FormatGLB:
		msg = "No 3D model available."
	case FormatFBX:
		msg = "FBX file is empty for this token. No 3D model available."
	default:
		msg = fmt.Sprintf("%s image is empty for this token.", format.Label())
	}
	return &StandardError{
		Type:    ErrTypeEmptyPayload,
		Message: msg,
		Details: map[string]any{"format": string(format), "token_id": tokenId},
	}
}

func NewInternalError(msg string, cause error) error {
	return &StandardError{
		Type:    ErrTypeInternal,
		Message: msg,
		Cause:   cause,
	}
}
