package client

import (
	"time"

	"go.uber.org/zap"
)

// Option represents a client option
type Option func(c *Client)

// WithScheme sets the scheme return URLs are addressed at.
func WithScheme(scheme string) Option {
	return func(c *Client) {
		c.scheme = scheme
	}
}

// WithSource sets the x-source value identifying this client.
func WithSource(source string) Option {
	return func(c *Client) {
		c.source = source
	}
}

// WithTimeout bounds the wait for an inbound callback. The default is zero:
// no timeout, the wait is unbounded like the protocol itself.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
