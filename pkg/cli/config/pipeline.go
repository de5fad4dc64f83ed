package config

import (
	"log/slog"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/normalizer"
	"github.com/C-S-I-FIIT/egis/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Pipeline holds the polling limits, the index prefix and custom column schemas
type Pipeline struct {
	pollInterval       time.Duration
	scanTimeout        time.Duration
	exportPollInterval time.Duration
	exportTimeout      time.Duration
	maxStatusErrors    int64
	indexPrefix        string
	schemaFiles        []string
}

func (x *Pipeline) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Interval of scan status polling",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("EGIS_POLL_INTERVAL"),
			Value:       usecase.DefaultPollInterval,
			Destination: &x.pollInterval,
		},
		&cli.DurationFlag{
			Name:        "scan-timeout",
			Usage:       "Maximum time to wait for a scan to complete",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("EGIS_SCAN_TIMEOUT"),
			Value:       usecase.DefaultScanTimeout,
			Destination: &x.scanTimeout,
		},
		&cli.DurationFlag{
			Name:        "export-poll-interval",
			Usage:       "Interval of export status polling",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("EGIS_EXPORT_POLL_INTERVAL"),
			Value:       usecase.DefaultExportPollInterval,
			Destination: &x.exportPollInterval,
		},
		&cli.DurationFlag{
			Name:        "export-timeout",
			Usage:       "Maximum time to wait for an export to become ready",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("EGIS_EXPORT_TIMEOUT"),
			Value:       usecase.DefaultExportTimeout,
			Destination: &x.exportTimeout,
		},
		&cli.Int64Flag{
			Name:        "max-status-errors",
			Usage:       "Consecutive status query failures tolerated while polling",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("EGIS_MAX_STATUS_ERRORS"),
			Value:       usecase.DefaultMaxStatusErrors,
			Destination: &x.maxStatusErrors,
		},
		&cli.StringFlag{
			Name:        "index-prefix",
			Usage:       "Prefix of the monthly finding index",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("EGIS_INDEX_PREFIX"),
			Value:       usecase.DefaultIndexPrefix,
			Destination: &x.indexPrefix,
		},
		&cli.StringSliceFlag{
			Name:        "schema-file",
			Usage:       "YAML column schema file (can be repeated)",
			Category:    "Pipeline",
			Sources:     cli.EnvVars("EGIS_SCHEMA_FILES"),
			Destination: &x.schemaFiles,
		},
	}
}

func (x *Pipeline) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("pollInterval", x.pollInterval),
		slog.Duration("scanTimeout", x.scanTimeout),
		slog.Duration("exportPollInterval", x.exportPollInterval),
		slog.Duration("exportTimeout", x.exportTimeout),
		slog.Int64("maxStatusErrors", x.maxStatusErrors),
		slog.String("indexPrefix", x.indexPrefix),
		slog.Any("schemaFiles", x.schemaFiles),
	)
}

// Options validates the settings and converts them to usecase options
func (x *Pipeline) Options() ([]usecase.Option, error) {
	for name, d := range map[string]time.Duration{
		"poll-interval":        x.pollInterval,
		"scan-timeout":         x.scanTimeout,
		"export-poll-interval": x.exportPollInterval,
		"export-timeout":       x.exportTimeout,
	} {
		if d <= 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "duration must be positive",
				goerr.V("flag", name),
				goerr.V("value", d),
			)
		}
	}
	if x.maxStatusErrors < 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "max-status-errors must not be negative", goerr.V("value", x.maxStatusErrors))
	}

	schemas := make([]*normalizer.Schema, 0, len(x.schemaFiles))
	for _, path := range x.schemaFiles {
		schema, err := normalizer.LoadSchemaFile(path)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, schema)
	}

	return []usecase.Option{
		usecase.WithPollInterval(x.pollInterval),
		usecase.WithScanTimeout(x.scanTimeout),
		usecase.WithExportPollInterval(x.exportPollInterval),
		usecase.WithExportTimeout(x.exportTimeout),
		usecase.WithMaxStatusErrors(int(x.maxStatusErrors)),
		usecase.WithIndexPrefix(x.indexPrefix),
		usecase.WithSchemaRegistry(normalizer.NewRegistry(schemas...)),
	}, nil
}
