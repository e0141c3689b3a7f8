package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for action, expected := range map[string]Status{
		"success": StatusSuccess,
		"error":   StatusError,
		"cancel":  StatusCancel,
	} {
		status, err := ParseStatus(action)
		assert.NoError(t, err)
		assert.Equal(t, expected, status)
	}

	_, err := ParseStatus("bogus")
	assert.ErrorIs(t, err, ErrUnrecognizedAction)
}
