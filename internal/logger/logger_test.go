package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	require.NoError(t, Init("production", "warn"))
	assert.Equal(t, "warn", Level())
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zap.ErrorLevel))
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, "debug", Level())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, "debug", Level())

	assert.Error(t, SetLevel("loud"))
}
