// Package platformerrors defines the typed error taxonomy shared by every
// layer of the service. Handlers translate these into HTTP responses.
package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// Layer identifies where an error originated.
type Layer string

const (
	LayerHandler        Layer = "handler"
	LayerDomain         Layer = "domain"
	LayerRepository     Layer = "repository"
	LayerInfrastructure Layer = "infrastructure"
)

// ErrorType classifies an error for propagation policy purposes.
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeNotFound      ErrorType = "not_found"
	ErrorTypeUnauthorized  ErrorType = "unauthorized"
	ErrorTypeDatabaseError ErrorType = "database_error"
	ErrorTypeExternal      ErrorType = "external"
	ErrorTypeInternal      ErrorType = "internal"
)

// PlatformError carries the error classification alongside the original cause.
type PlatformError struct {
	Layer   Layer
	Type    ErrorType
	Message string
	Code    string
	TraceID string
	Err     error
}

func (e *PlatformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error type to the status the handler layer should emit.
func (e *PlatformError) HTTPStatus() int {
	switch e.Type {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeExternal:
		return http.StatusBadGateway
	case ErrorTypeDatabaseError, ErrorTypeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewError builds a PlatformError with an explicit type. The code is a stable
// identifier for log correlation.
func NewError(ctx context.Context, layer Layer, errType ErrorType, message string, cause error, code string) error {
	return &PlatformError{
		Layer:   layer,
		Type:    errType,
		Message: message,
		Code:    code,
		TraceID: traceIDFromContext(ctx),
		Err:     cause,
	}
}

// AsError wraps err while preserving its classification when it already is a
// PlatformError. Unclassified errors become internal.
func AsError(ctx context.Context, layer Layer, err error, message string) error {
	if err == nil {
		return nil
	}
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return &PlatformError{
			Layer:   layer,
			Type:    platformErr.Type,
			Message: message,
			Code:    platformErr.Code,
			TraceID: traceIDFromContext(ctx),
			Err:     err,
		}
	}
	return &PlatformError{
		Layer:   layer,
		Type:    ErrorTypeInternal,
		Message: message,
		TraceID: traceIDFromContext(ctx),
		Err:     err,
	}
}

// TypeOf returns the classification of err, or internal for plain errors.
func TypeOf(err error) ErrorType {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Type
	}
	return ErrorTypeInternal
}

// IsType reports whether err carries the given classification.
func IsType(err error, errType ErrorType) bool {
	return TypeOf(err) == errType
}

// HTTPStatus resolves the response status for any error value.
func HTTPStatus(err error) int {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func traceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}
