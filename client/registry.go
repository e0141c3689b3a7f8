package client

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xcallback/callback/internal/collection"
	"github.com/xcallback/callback/schema"
)

// Slot is the single-use handoff channel of one pending request. It has
// capacity one and receives at most one inbound URL.
type Slot chan *schema.XCallbackURL

// NewSlot creates a response slot.
func NewSlot() Slot {
	return make(Slot, 1)
}

// Registry is the process-wide table of outstanding requests, keyed by
// correlation id. It is shared between every executing goroutine and the
// inbound dispatch goroutine; all operations are atomic with respect to each
// other and none blocks.
type Registry struct {
	pending *collection.SyncMap[string, Slot]
	logger  *zap.SugaredLogger
}

// NewRegistry creates an empty registry. A nil logger disables logging.
func NewRegistry(logger *zap.SugaredLogger) *Registry {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Registry{
		pending: collection.NewSyncMap[string, Slot](),
		logger:  logger,
	}
}

// NewID produces a fresh 32 character alphanumeric correlation token.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Register inserts a pending entry. It fails with ErrDuplicateID when the id
// is already live.
func (r *Registry) Register(id string, slot Slot) error {
	if !r.pending.PutIfAbsent(id, slot) {
		return schema.ErrDuplicateID
	}
	return nil
}

// Resolve removes the entry for id and delivers u into its slot exactly once,
// reporting whether a waiter was found. An unknown id is a no-op: inbound
// events with no live registrant are dropped, never escalated.
func (r *Registry) Resolve(id string, u *schema.XCallbackURL) bool {
	slot, ok := r.pending.Remove(id)
	if !ok {
		r.logger.Debugw("no pending request for correlation id", "id", id)
		return false
	}
	slot <- u
	return true
}

// Unregister removes an entry without delivering a response, used when the
// waiter gives up.
func (r *Registry) Unregister(id string) {
	r.pending.Remove(id)
}

// Len returns the number of outstanding requests.
func (r *Registry) Len() int {
	return r.pending.Len()
}

// Close abandons every outstanding request by closing its slot; waiters
// observe a transport closed failure. Used when the inbound event source
// terminates.
func (r *Registry) Close() {
	var ids []string
	r.pending.Range(func(id string, _ Slot) bool {
		ids = append(ids, id)
		return true
	})
	for _, id := range ids {
		if slot, ok := r.pending.Remove(id); ok {
			close(slot)
		}
	}
}
