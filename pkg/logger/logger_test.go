package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("debug", "text")
	require.NoError(t, err)
	log.With("case_id", "c-1").Debug("hello", "n", 1)

	_, err = NewLogger("loud", "json")
	assert.Error(t, err)

	_, err = NewLogger("info", "xml")
	assert.EqualError(t, err, `invalid log format "xml"`)
}
