package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/controller/server"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestDetachContext(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	logger := slog.Default().With("component", "test")

	newRequestContext := func() (context.Context, context.CancelFunc) {
		ctx := logging.With(context.Background(), logger)
		_, ctx = logging.CtxRequestID(ctx)
		ctx = logging.CtxWithTime(ctx, func() time.Time { return fixedTime })
		return context.WithCancel(ctx)
	}

	t.Run("inherits logger, request ID and clock", func(t *testing.T) {
		reqCtx, cancel := newRequestContext()
		defer cancel()
		reqID, _ := logging.CtxRequestID(reqCtx)

		bgCtx, bgCancel := server.DetachContext(reqCtx, 0)
		defer bgCancel()

		gt.V(t, logging.From(bgCtx)).Equal(logger)
		inherited, _ := logging.CtxRequestID(bgCtx)
		gt.V(t, inherited).Equal(reqID)
		gt.V(t, logging.CtxTime(bgCtx)).Equal(fixedTime)
	})

	t.Run("survives request cancellation", func(t *testing.T) {
		reqCtx, cancel := newRequestContext()
		bgCtx, bgCancel := server.DetachContext(reqCtx, 0)
		defer bgCancel()

		cancel()
		gt.V(t, reqCtx.Err()).Equal(context.Canceled)
		gt.V(t, bgCtx.Err()).Equal(nil)

		_, hasDeadline := bgCtx.Deadline()
		gt.False(t, hasDeadline)
	})

	t.Run("limit sets a deadline", func(t *testing.T) {
		reqCtx, cancel := newRequestContext()
		defer cancel()

		bgCtx, bgCancel := server.DetachContext(reqCtx, time.Hour)
		defer bgCancel()

		deadline, ok := bgCtx.Deadline()
		gt.True(t, ok)
		gt.True(t, time.Until(deadline) > 59*time.Minute)
	})

	t.Run("cancel func stops detached work", func(t *testing.T) {
		reqCtx, cancel := newRequestContext()
		defer cancel()

		bgCtx, bgCancel := server.DetachContext(reqCtx, 0)
		bgCancel()
		gt.V(t, bgCtx.Err()).Equal(context.Canceled)
	})
}
