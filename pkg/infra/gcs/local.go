package gcs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// LocalStorage archives exports into a local directory with the same key layout as the bucket
type LocalStorage struct {
	dir string
}

var _ interfaces.ObjectStorage = (*LocalStorage)(nil)

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (x *LocalStorage) Put(ctx context.Context, key, contentType string, data []byte) error {
	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return goerr.Wrap(types.ErrInvalidOption, "archive key escapes the directory", goerr.V("key", key))
	}

	dst := filepath.Join(x.dir, clean)
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return goerr.Wrap(err, "failed to create archive directory", goerr.V("path", dst))
	}
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		return goerr.Wrap(err, "failed to write archive file", goerr.V("path", dst))
	}

	return nil
}
