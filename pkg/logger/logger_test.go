package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace":    TraceLevel,
		"DEBUG":    DebugLevel,
		" info ":   InfoLevel,
		"warn":     WarnLevel,
		"warning":  WarnLevel,
		"error":    ErrorLevel,
		"disabled": Disabled,
	}

	for name, expected := range tests {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, "disabled", Disabled.String())
	assert.Equal(t, "Level(42)", Level(42).String())
}
