package safe

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
)

// Close closes the resource and logs the error if any
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && err != io.EOF {
		logging.Default().Warn("Fail to close resource", slog.Any("error", err))
	}
}

// CloseBody drains and closes a response body so the connection can be reused
func CloseBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		logging.Default().Debug("Fail to drain response body", slog.Any("error", err))
	}
	Close(resp.Body)
}

// Remove removes the file and logs the error if any
func Remove(path string) {
	if err := os.Remove(path); err != nil {
		logging.Default().Warn("Fail to remove file", slog.Any("error", err), slog.String("path", path))
	}
}
