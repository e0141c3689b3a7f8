package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		action       string
		actionParams []Param
		reserved     Reserved
	}{
		{
			name:         "action params and success return url",
			input:        "callback://x-callback-url/action?key=value&x-success=callback%3A%2F%2Fx-callback-success",
			action:       "action",
			actionParams: []Param{{Key: "key", Value: "value"}},
			reserved:     Reserved{Success: "callback://x-callback-success"},
		},
		{
			name:   "bare action",
			input:  "callback://x-callback-url/action",
			action: "action",
		},
		{
			name:   "no action",
			input:  "callback://x-callback-url",
			action: "",
		},
		{
			name:         "all reserved params",
			input:        "bear://x-callback-url/create?title=Note&x-source=callback&x-success=a%3A%2F%2Fx-callback-url%2Fs&x-error=a%3A%2F%2Fx-callback-url%2Fe&x-cancel=a%3A%2F%2Fx-callback-url%2Fc",
			action:       "create",
			actionParams: []Param{{Key: "title", Value: "Note"}},
			reserved: Reserved{
				Source:  "callback",
				Success: "a://x-callback-url/s",
				Error:   "a://x-callback-url/e",
				Cancel:  "a://x-callback-url/c",
			},
		},
		{
			name:   "param order preserved",
			input:  "app://x-callback-url/op?b=2&a=1&b=3",
			action: "op",
			actionParams: []Param{
				{Key: "b", Value: "2"},
				{Key: "a", Value: "1"},
				{Key: "b", Value: "3"},
			},
		},
		{
			name:         "percent encoded values",
			input:        "app://x-callback-url/op?title=My+Note&text=First%20line",
			action:       "op",
			actionParams: []Param{{Key: "title", Value: "My Note"}, {Key: "text", Value: "First line"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.action, u.Action())
			assert.Equal(t, tc.actionParams, nilIfEmpty(u.ActionParams()))
			assert.Equal(t, tc.reserved, u.Reserved())
		})
	}
}

func nilIfEmpty(params []Param) []Param {
	if len(params) == 0 {
		return nil
	}
	return params
}

func TestParseInvalidHost(t *testing.T) {
	_, err := Parse("callback://not-callback/action")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHost)
}

func TestParseUnrecognizedReservedKey(t *testing.T) {
	u, err := Parse("app://x-callback-url/op?key=value&x-custom=kept")
	require.NoError(t, err)
	// unrecognized x- keys never leak into action params, but survive round-trip
	assert.Equal(t, []Param{{Key: "key", Value: "value"}}, u.ActionParams())
	assert.Equal(t, "app://x-callback-url/op?key=value&x-custom=kept", u.String())
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"callback://x-callback-url/action?key=value&x-success=callback%3A%2F%2Fx-callback-success",
		"callback://x-callback-url/action",
		"bear://x-callback-url/create?title=Note&text=First+line&x-source=callback&x-success=a%3A%2F%2Fx-callback-url%2Fs&x-error=a%3A%2F%2Fx-callback-url%2Fe&x-cancel=a%3A%2F%2Fx-callback-url%2Fc",
	}
	for _, input := range inputs {
		u, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, u.String())

		reparsed, err := Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, reparsed)
	}
}

func TestRoundTripBuilt(t *testing.T) {
	u := New("bear")
	u.SetAction("create")
	u.SetActionParams([]Param{{Key: "title", Value: "My Note"}})
	u.AppendActionParam("text", "First line")
	u.SetReserved(Reserved{
		Source:  "callback",
		Success: "callback://x-callback-url/success",
		Cancel:  "callback://x-callback-url/cancel",
	})

	reparsed, err := Parse(u.String())
	require.NoError(t, err)
	assert.Equal(t, u, reparsed)
}

func TestStringOmitsUnsetReserved(t *testing.T) {
	u := New("bear")
	u.SetAction("create")
	assert.Equal(t, "bear://x-callback-url/create", u.String())

	u.SetReserved(Reserved{Error: "callback://x-callback-url/error"})
	assert.Equal(t, "bear://x-callback-url/create?x-error=callback%3A%2F%2Fx-callback-url%2Ferror", u.String())
}

func TestStringReservedOrder(t *testing.T) {
	u := New("app")
	u.SetAction("op")
	u.AppendActionParam("k", "v")
	u.SetReserved(Reserved{Source: "s", Success: "a", Error: "b", Cancel: "c"})
	assert.Equal(t, "app://x-callback-url/op?k=v&x-source=s&x-success=a&x-error=b&x-cancel=c", u.String())
}

func TestClone(t *testing.T) {
	u := New("app")
	u.SetAction("op")
	u.AppendActionParam("k", "v")

	clone := u.Clone()
	clone.AppendActionParam("k2", "v2")
	clone.SetReserved(Reserved{Source: "s"})

	assert.Equal(t, []Param{{Key: "k", Value: "v"}}, u.ActionParams())
	assert.Equal(t, Reserved{}, u.Reserved())
}

func TestActionParam(t *testing.T) {
	u := New("app")
	u.AppendActionParam("a", "1")
	u.AppendActionParam("a", "2")

	value, ok := u.ActionParam("a")
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	_, ok = u.ActionParam("missing")
	assert.False(t, ok)
}
