package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevel(t *testing.T) {
	log, err := New("warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = New("")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNewBadLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)

	_, err = NewSugared("loud")
	assert.Error(t, err)
}

func TestNewSugaredLevel(t *testing.T) {
	log, err := NewSugared("error")
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.ErrorLevel))
}
