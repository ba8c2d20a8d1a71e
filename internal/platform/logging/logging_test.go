package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })

	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelInfo, zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, c := range cases {
		SetLevel(c.in)
		assert.Equal(t, c.want, zapLevel.Level(), "SetLevel(%q)", c.in)
	}
}

func TestConfigureReplacesDefault(t *testing.T) {
	old := Default
	t.Cleanup(func() {
		Default = old
		SetLevel(LevelInfo)
	})

	Configure(LevelDebug, FormatJSON)

	assert.NotSame(t, old, Default)
	assert.True(t, Default.Desugar().Core().Enabled(zapcore.DebugLevel))
}
