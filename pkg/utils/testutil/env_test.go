package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("Returns value when env var is set", func(t *testing.T) {
		t.Setenv("EGIS_TEST_ENV_VAR", "value")
		gt.V(t, testutil.GetEnvOrSkip(t, "EGIS_TEST_ENV_VAR")).Equal("value")
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	gt.NoError(t, os.WriteFile(path, []byte("Plugin ID,Host\n"), 0600))
	gt.V(t, string(testutil.ReadFile(t, path))).Equal("Plugin ID,Host\n")
}
