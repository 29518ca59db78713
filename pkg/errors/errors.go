package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation

	// Infrastructure Errors - errors related to upstream providers and payloads
	ErrorTypeUpstreamUnavailable
	ErrorTypeDecode

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeUpstreamUnavailable:
		return "UPSTREAM_UNAVAILABLE"
	case ErrorTypeDecode:
		return "DECODE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

const (
	ValidationError          = ErrorTypeValidation
	UpstreamUnavailableError = ErrorTypeUpstreamUnavailable
	DecodeError              = ErrorTypeDecode
	ConfigurationError       = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func newError(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap attaches cause to a new AppError of the given type
func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationError(message string) *AppError {
	return newError(ValidationError, message)
}

func NewUpstreamError(message string, cause error) *AppError {
	return Wrap(UpstreamUnavailableError, message, cause)
}

func NewDecodeError(message string, cause error) *AppError {
	return Wrap(DecodeError, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsUpstreamError(err error) bool {
	return TypeOf(err) == UpstreamUnavailableError
}

func IsDecodeError(err error) bool {
	return TypeOf(err) == DecodeError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
