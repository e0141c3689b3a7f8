package client

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xcallback/callback/opener"
	"github.com/xcallback/callback/schema"
)

const (
	// DefaultScheme is the scheme return URLs are addressed at.
	DefaultScheme = "callback"
	// DefaultSource identifies this client in the outbound x-source parameter.
	DefaultSource = "callback"

	// ParamCorrelationID carries the correlation token on every return URL and
	// is echoed back by the target application on the inbound callback.
	ParamCorrelationID = "correlation_id"
)

// registration attempts before giving up on id collisions
const maxRegisterAttempts = 3

// Client executes x-callback-url requests: it embeds a correlation id and
// return URLs into the outbound URL, hands it to the opener and blocks until
// the matching inbound callback resolves the request.
type Client struct {
	registry *Registry
	opener   opener.Opener
	scheme   string
	source   string
	timeout  time.Duration
	logger   *zap.SugaredLogger
}

// New creates a client executing requests against the given registry and
// opener.
func New(registry *Registry, op opener.Opener, options ...Option) *Client {
	ret := &Client{
		registry: registry,
		opener:   op,
		scheme:   DefaultScheme,
		source:   DefaultSource,
		logger:   zap.NewNop().Sugar(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Execute fires target at the application owning its scheme and blocks until
// that application opens one of the embedded return URLs. The target is not
// mutated; reserved return addresses are set on a copy. With no timeout
// configured (the default) and no context deadline the wait is unbounded,
// matching the protocol's lack of a response guarantee.
func (c *Client) Execute(ctx context.Context, target *schema.XCallbackURL) (*schema.Response, error) {
	id, slot, err := c.register()
	if err != nil {
		return nil, err
	}

	outbound := target.Clone()
	outbound.SetReserved(schema.Reserved{
		Source:  c.source,
		Success: c.returnURL(schema.ActionSuccess, id),
		Error:   c.returnURL(schema.ActionError, id),
		Cancel:  c.returnURL(schema.ActionCancel, id),
	})

	raw := outbound.String()
	c.logger.Debugw("opening callback url", "url", raw, "id", id)
	if err := c.opener.Open(raw); err != nil {
		c.registry.Unregister(id)
		return nil, fmt.Errorf("failed to open %v: %w", raw, err)
	}
	return c.wait(ctx, id, slot)
}

func (c *Client) register() (string, Slot, error) {
	var err error
	for i := 0; i < maxRegisterAttempts; i++ {
		id := NewID()
		slot := NewSlot()
		if err = c.registry.Register(id, slot); err == nil {
			return id, slot, nil
		}
	}
	return "", nil, err
}

func (c *Client) returnURL(action, id string) string {
	u := schema.New(c.scheme)
	u.SetAction(action)
	u.AppendActionParam(ParamCorrelationID, id)
	return u.String()
}

func (c *Client) wait(ctx context.Context, id string, slot Slot) (*schema.Response, error) {
	var deadline <-chan time.Time
	if c.timeout > 0 {
		timer := time.NewTimer(c.timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	select {
	case inbound, ok := <-slot:
		if !ok {
			return nil, schema.ErrTransportClosed
		}
		return response(inbound)
	case <-ctx.Done():
		c.registry.Unregister(id)
		return nil, ctx.Err()
	case <-deadline:
		c.registry.Unregister(id)
		return nil, schema.ErrTimeout
	}
}

// response converts an inbound callback into a typed response, stripping the
// correlation id from the returned parameters.
func response(inbound *schema.XCallbackURL) (*schema.Response, error) {
	status, err := schema.ParseStatus(inbound.Action())
	if err != nil {
		return nil, err
	}
	var params []schema.Param
	for _, p := range inbound.ActionParams() {
		if p.Key == ParamCorrelationID {
			continue
		}
		params = append(params, p)
	}
	return &schema.Response{Status: status, ActionParams: params}, nil
}
