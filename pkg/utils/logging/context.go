package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

type (
	ctxLoggerKey    struct{}
	ctxRequestIDKey struct{}
	ctxClockKey     struct{}
)

// TimeFunc is the clock used for scan names, job timestamps and report times.
type TimeFunc func() time.Time

// With binds logger to ctx.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns the logger bound to ctx, or the default logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// WithValues returns a new context whose logger carries the given attributes
func WithValues(ctx context.Context, args ...any) context.Context {
	return With(ctx, From(ctx).With(args...))
}

// CtxRequestID returns the request ID of ctx. A fresh ID is generated and attached when ctx has none.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

// CtxWithTime replaces the clock of ctx.
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxClockKey{}, timeFunc)
}

// CtxTime reads the clock of ctx, falling back to time.Now.
func CtxTime(ctx context.Context) time.Time {
	if clock, ok := ctx.Value(ctxClockKey{}).(TimeFunc); ok {
		return clock()
	}
	return time.Now()
}

// Detach returns a context that is never canceled but carries the logger, request ID and clock of ctx.
// Assessments started from an HTTP request run on it after the response is written.
func Detach(ctx context.Context) context.Context {
	dst := With(context.Background(), From(ctx))

	for _, key := range []any{ctxRequestIDKey{}, ctxClockKey{}} {
		if v := ctx.Value(key); v != nil {
			dst = context.WithValue(dst, key, v)
		}
	}

	return dst
}
