package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderRejected is returned when the provider answers with a non-200 status.
	ErrProviderRejected = errors.New("provider rejected request")
	// ErrSchema is returned when a 200 response lacks a field the dashboard needs.
	ErrSchema = errors.New("unexpected response schema")
	// ErrCircuitOpen is returned while the provider circuit breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// StatusError records the status code of a rejected request. It unwraps to
// ErrProviderRejected.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status %d", ErrProviderRejected, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrProviderRejected }

// MissingFieldError names the JSON path that was absent from the payload.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: missing field %q", ErrSchema, e.Path)
}

func (e *MissingFieldError) Unwrap() error { return ErrSchema }
