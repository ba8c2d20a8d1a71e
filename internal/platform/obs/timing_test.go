package obs

import (
	"context"
	"distance-matrix-client/internal/platform/logging"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	old := logging.Default
	logging.Default = zap.New(core).Sugar()
	t.Cleanup(func() { logging.Default = old })
	return logs
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	logs := observe(t)
	ctx := WithRequestID(context.Background(), "abc")

	func() (err error) {
		defer Time(ctx, "dma.Matrix")(&err)
		return errors.New("boom")
	}()

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "abc", fields["req_id"])
	assert.Equal(t, "dma.Matrix", fields["op"])
	assert.Equal(t, "boom", fields["err"])
}

func TestTimeSuccessIsDebug(t *testing.T) {
	logs := observe(t)

	func() (err error) {
		defer Time(context.Background(), "noop")(&err)
		return nil
	}()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	assert.Equal(t, "", RequestID(context.Background()))
}
