package config

import (
	"context"
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

// Archive selects where raw exports are kept. A GCS bucket takes precedence over a local directory.
type Archive struct {
	bucket string
	prefix string
	dir    string
}

func (x *Archive) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "archive-gcs-bucket",
			Usage:       "GCS bucket for raw scanner exports",
			Category:    "Archive",
			Sources:     cli.EnvVars("EGIS_ARCHIVE_GCS_BUCKET"),
			Destination: &x.bucket,
		},
		&cli.StringFlag{
			Name:        "archive-gcs-prefix",
			Usage:       "Object key prefix in the GCS bucket",
			Category:    "Archive",
			Sources:     cli.EnvVars("EGIS_ARCHIVE_GCS_PREFIX"),
			Destination: &x.prefix,
		},
		&cli.StringFlag{
			Name:        "archive-dir",
			Usage:       "Local directory for raw scanner exports",
			Category:    "Archive",
			Sources:     cli.EnvVars("EGIS_ARCHIVE_DIR"),
			Destination: &x.dir,
		},
	}
}

func (x *Archive) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket),
		slog.String("prefix", x.prefix),
		slog.String("dir", x.dir),
	)
}

// NewStorage returns nil when archiving is disabled. The returned closer is never nil.
func (x *Archive) NewStorage(ctx context.Context) (interfaces.ObjectStorage, func(), error) {
	switch {
	case x.bucket != "":
		client, err := gcs.New(ctx, x.bucket, x.prefix)
		if err != nil {
			return nil, func() {}, err
		}
		return client, func() { _ = client.Close() }, nil

	case x.dir != "":
		return gcs.NewLocalStorage(x.dir), func() {}, nil

	default:
		return nil, func() {}, nil
	}
}
