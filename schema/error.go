package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHost indicates a URL whose authority is not the fixed
	// x-callback-url host.
	ErrInvalidHost = errors.New("invalid host")

	// ErrMalformedParameter indicates a key=value parameter without a separator.
	ErrMalformedParameter = errors.New("malformed parameter")

	// ErrUnrecognizedAction indicates an inbound callback whose action is none
	// of success, error or cancel.
	ErrUnrecognizedAction = errors.New("unrecognized terminal action")

	// ErrTransportClosed indicates the response slot was closed before a
	// callback was delivered.
	ErrTransportClosed = errors.New("transport closed")

	// ErrDuplicateID indicates an attempt to register a correlation id that is
	// already pending.
	ErrDuplicateID = errors.New("duplicate correlation id")

	// ErrTimeout indicates the configured wait deadline elapsed before a
	// callback arrived.
	ErrTimeout = errors.New("callback timeout")
)

// NewInvalidHost creates an invalid host error for the given authority.
func NewInvalidHost(host string) error {
	return fmt.Errorf("%w: %q", ErrInvalidHost, host)
}

// NewMalformedParameter creates a malformed parameter error.
func NewMalformedParameter(raw string) error {
	return fmt.Errorf("%w: %q", ErrMalformedParameter, raw)
}

// NewUnrecognizedAction creates an unrecognized terminal action error.
func NewUnrecognizedAction(action string) error {
	return fmt.Errorf("%w: %q", ErrUnrecognizedAction, action)
}
