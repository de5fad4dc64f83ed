package gcs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra/gcs"
	"github.com/m-mizutani/gt"
)

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	storage := gcs.NewLocalStorage(dir)
	ctx := context.Background()

	t.Run("writes nested key", func(t *testing.T) {
		gt.NoError(t, storage.Put(ctx, "acme/scan_1.csv", "text/csv", []byte("a,b\n")))
		data := gt.R1(os.ReadFile(filepath.Join(dir, "acme", "scan_1.csv"))).NoError(t)
		gt.V(t, string(data)).Equal("a,b\n")
	})

	t.Run("overwrites existing object", func(t *testing.T) {
		gt.NoError(t, storage.Put(ctx, "acme/scan_1.csv", "text/csv", []byte("c,d\n")))
		data := gt.R1(os.ReadFile(filepath.Join(dir, "acme", "scan_1.csv"))).NoError(t)
		gt.V(t, string(data)).Equal("c,d\n")
	})

	t.Run("rejects key outside directory", func(t *testing.T) {
		err := storage.Put(ctx, "../escape.csv", "text/csv", []byte("x"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
