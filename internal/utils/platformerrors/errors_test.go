package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    int
	}{
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeExternal, http.StatusBadGateway},
		{ErrorTypeDatabaseError, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errType), func(t *testing.T) {
			err := NewError(context.Background(), LayerDomain, tt.errType, "boom", nil, "")
			if got := HTTPStatus(err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAsErrorPreservesType(t *testing.T) {
	ctx := context.Background()
	inner := NewError(ctx, LayerRepository, ErrorTypeNotFound, "conversation not found", nil, "abc")
	wrapped := AsError(ctx, LayerDomain, inner, "failed to load conversation")

	if TypeOf(wrapped) != ErrorTypeNotFound {
		t.Errorf("TypeOf() = %s, want %s", TypeOf(wrapped), ErrorTypeNotFound)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error should unwrap to the inner error")
	}
}

func TestAsErrorClassifiesPlainErrorsAsInternal(t *testing.T) {
	wrapped := AsError(context.Background(), LayerDomain, fmt.Errorf("dial tcp: refused"), "db unavailable")
	if TypeOf(wrapped) != ErrorTypeInternal {
		t.Errorf("TypeOf() = %s, want %s", TypeOf(wrapped), ErrorTypeInternal)
	}
}

func TestAsErrorNilPassthrough(t *testing.T) {
	if err := AsError(context.Background(), LayerDomain, nil, "nothing"); err != nil {
		t.Errorf("AsError(nil) = %v, want nil", err)
	}
}
