package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestLoggerInContext(t *testing.T) {
	gt.V(t, logging.From(context.Background())).Equal(logging.Default())

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := logging.With(context.Background(), logger)
	gt.V(t, logging.From(ctx)).Equal(logger)
}

func TestWithValues(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := logging.With(context.Background(), base)

	ctx = logging.WithValues(ctx, "org_id", 42)
	ctx = logging.WithValues(ctx, "job_id", "7")
	logging.From(ctx).Info("hello")

	gt.S(t, buf.String()).Contains(`"org_id":42`)
	gt.S(t, buf.String()).Contains(`"job_id":"7"`)
}

func TestCtxRequestID(t *testing.T) {
	id1, ctx := logging.CtxRequestID(context.Background())
	gt.V(t, id1).NotEqual("")

	id2, _ := logging.CtxRequestID(ctx)
	gt.V(t, id2).Equal(id1)

	other, _ := logging.CtxRequestID(context.Background())
	gt.V(t, other).NotEqual(id1)
}

func TestCtxTime(t *testing.T) {
	gt.False(t, logging.CtxTime(context.Background()).IsZero())

	fixed := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return fixed })
	gt.V(t, logging.CtxTime(ctx)).Equal(fixed)
}

func TestDetach(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	fixed := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)

	ctx := logging.With(context.Background(), logger)
	ctx = logging.CtxWithTime(ctx, func() time.Time { return fixed })
	reqID, ctx := logging.CtxRequestID(ctx)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	detached := logging.Detach(ctx)
	gt.NoError(t, detached.Err())
	gt.V(t, logging.From(detached)).Equal(logger)
	gt.V(t, logging.CtxTime(detached)).Equal(fixed)

	got, _ := logging.CtxRequestID(detached)
	gt.V(t, got).Equal(reqID)
}

func TestDetachEmpty(t *testing.T) {
	detached := logging.Detach(context.Background())
	gt.V(t, logging.From(detached)).Equal(logging.Default())

	_, ok := detached.Deadline()
	gt.False(t, ok)
}
