package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
)

const headerRequestID = "X-Request-Id"

// preProcess tags every request with a request ID, echoed in the response header, and writes one access log line
// after the handler returns.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.From(ctx).With(slog.String("request_id", reqID.String()))
		ctx = logging.With(ctx, logger)
		w.Header().Set(headerRequestID, reqID.String())

		rw := &accessRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(rw, r.WithContext(ctx))

		level := slog.LevelInfo
		if rw.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status", rw.status),
			slog.Int64("request_bytes", r.ContentLength),
			slog.Int("response_bytes", rw.written),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(started)),
		)
	})
}

type accessRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (x *accessRecorder) WriteHeader(code int) {
	x.status = code
	x.ResponseWriter.WriteHeader(code)
}

func (x *accessRecorder) Write(b []byte) (int, error) {
	n, err := x.ResponseWriter.Write(b)
	x.written += n
	return n, err
}
