package obs

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerPicksHandlerByEnv(t *testing.T) {
	dev := NewLogger("dev")
	require.NotNil(t, dev)
	_, isJSON := dev.Handler().(*slog.JSONHandler)
	assert.False(t, isJSON, "dev env should use the tint handler")

	prod := NewLogger("prod")
	require.NotNil(t, prod)
	_, isJSON = prod.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON)
}
