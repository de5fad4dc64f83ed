package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		_ = logging.Configure("text", "info", "stderr")
	})

	testCases := map[string]struct {
		format, level string
		wantErr       bool
	}{
		"json":           {"json", "info", false},
		"text":           {"text", "debug", false},
		"level alias":    {"text", "WARNING", false},
		"invalid format": {"yaml", "info", true},
		"invalid level":  {"json", "verbose", true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := logging.Configure(tc.format, tc.level, "stderr")
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
		})
	}
}

func TestSecretsAreMasked(t *testing.T) {
	t.Cleanup(func() {
		_ = logging.Configure("text", "info", "stderr")
	})

	path := filepath.Join(t.TempDir(), "egis.log")
	gt.NoError(t, logging.Configure("json", "info", path))

	type credentials struct {
		User     string
		Password string
	}
	logging.Default().Info("connecting",
		slog.Any("secretKey", types.NessusSecretKey("nessus-secret-value")),
		slog.Any("elastic", credentials{User: "egis", Password: "elastic-password-value"}),
	)

	raw := string(gt.R1(os.ReadFile(path)).NoError(t))
	gt.S(t, raw).Contains("connecting")
	gt.False(t, strings.Contains(raw, "nessus-secret-value"))
	gt.False(t, strings.Contains(raw, "elastic-password-value"))
}
