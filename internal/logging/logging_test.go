package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, level, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.False(t, level.Enabled(zapcore.InfoLevel), "info should be off by default")
	assert.True(t, level.Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestSetVerbose(t *testing.T) {
	logger, level, err := New()
	require.NoError(t, err)

	SetVerbose(level, true)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	SetVerbose(level, false)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
