package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherResolves(t *testing.T) {
	registry := NewRegistry(nil)
	slot := NewSlot()
	require.NoError(t, registry.Register("abc", slot))

	dispatcher := NewDispatcher(registry, nil)
	dispatcher.OnInbound("callback://x-callback-url/success?correlation_id=abc&title=Note")

	inbound := <-slot
	assert.Equal(t, "success", inbound.Action())
	title, ok := inbound.ActionParam("title")
	assert.True(t, ok)
	assert.Equal(t, "Note", title)
}

func TestDispatcherDropsUnparsable(t *testing.T) {
	registry := NewRegistry(nil)
	slot := NewSlot()
	require.NoError(t, registry.Register("abc", slot))

	dispatcher := NewDispatcher(registry, nil)
	assert.NotPanics(t, func() {
		dispatcher.OnInbound("callback://wrong-host/success?correlation_id=abc")
		dispatcher.OnInbound("%%%not-a-url")
	})
	assert.Equal(t, 1, registry.Len())
	assert.Empty(t, slot)
}

func TestDispatcherDropsMissingCorrelationID(t *testing.T) {
	registry := NewRegistry(nil)
	slot := NewSlot()
	require.NoError(t, registry.Register("abc", slot))

	dispatcher := NewDispatcher(registry, nil)
	dispatcher.OnInbound("callback://x-callback-url/success?title=Note")
	assert.Equal(t, 1, registry.Len())
	assert.Empty(t, slot)
}

func TestDispatcherDropsUnknownID(t *testing.T) {
	registry := NewRegistry(nil)
	dispatcher := NewDispatcher(registry, nil)
	assert.NotPanics(t, func() {
		dispatcher.OnInbound("callback://x-callback-url/success?correlation_id=unknown")
	})
	assert.Equal(t, 0, registry.Len())
}
