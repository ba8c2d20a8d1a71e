package obs

import (
	"context"
	"distance-matrix-client/internal/platform/logging"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores id on ctx for Time and the access log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation. Use as
// defer obs.Time(ctx, "op")(&err).
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logging.Default.Infow("operation failed", "req_id", reqID, "op", name, "dur", dur, "err", *errp)
			return
		}
		logging.Default.Debugw("operation done", "req_id", reqID, "op", name, "dur", dur)
	}
}
