package client

import (
	"go.uber.org/zap"

	"github.com/xcallback/callback/schema"
)

// Dispatcher routes raw inbound callback URLs to the pending request they
// answer. It is driven by the external event source on whatever goroutine
// that source uses; unroutable events are logged and dropped since there is
// no caller to report them to.
type Dispatcher struct {
	registry *Registry
	logger   *zap.SugaredLogger
}

// NewDispatcher creates a dispatcher resolving against registry. A nil logger
// disables logging.
func NewDispatcher(registry *Registry, logger *zap.SugaredLogger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// OnInbound handles one delivered callback URL.
func (d *Dispatcher) OnInbound(raw string) {
	u, err := schema.Parse(raw)
	if err != nil {
		d.logger.Warnw("dropping unparsable inbound callback", "url", raw, "error", err)
		return
	}
	id, ok := u.ActionParam(ParamCorrelationID)
	if !ok {
		d.logger.Warnw("dropping inbound callback without correlation id", "url", raw)
		return
	}
	if !d.registry.Resolve(id, u) {
		d.logger.Warnw("dropping inbound callback with no pending request", "id", id, "action", u.Action())
	}
}
