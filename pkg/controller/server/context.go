package server

import (
	"context"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
)

// DetachContext returns a context for work that outlives the request. A positive limit bounds the detached work.
func DetachContext(ctx context.Context, limit time.Duration) (context.Context, context.CancelFunc) {
	bgCtx := logging.Detach(ctx)

	if limit <= 0 {
		return context.WithCancel(bgCtx)
	}
	return context.WithTimeout(bgCtx, limit)
}
