package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/normalizer"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// scanNameFromPath derives a scan name from the export file name, e.g. "exports/Acme weekly.csv" -> "Acme_weekly"
func scanNameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(base, " ", "_")
}

func processCommand() *cli.Command {
	var (
		st       stack
		file     string
		scanName string
		schema   string
		orgID    string
		output   string
	)

	return &cli.Command{
		Name:    "process",
		Aliases: []string{"p"},
		Usage:   "Normalize a local export file (Nessus/OpenVAS CSV or JSON) and store the findings",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Usage:       "Path to the export file (required)",
				Sources:     cli.EnvVars("EGIS_EXPORT_FILE"),
				Destination: &file,
			},
			&cli.StringFlag{
				Name:        "scan-name",
				Usage:       "Scan name (file name without extension if empty)",
				Destination: &scanName,
			},
			&cli.StringFlag{
				Name:        "schema",
				Usage:       "Column schema name [nessus|nessus-numeric|openvas|<custom>]",
				Value:       normalizer.SchemaNessus,
				Destination: &schema,
			},
			&cli.StringFlag{
				Name:        "org-id",
				Usage:       "Organization ID to attach the findings to (optional)",
				Destination: &orgID,
			},
			outputFlag(&output),
		}, st.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if file == "" {
				return goerr.Wrap(types.ErrInvalidOption, "--file is required")
			}
			if scanName == "" {
				scanName = scanNameFromPath(file)
			}
			id, err := parseOptionalOrgID(orgID)
			if err != nil {
				return err
			}

			logging.Default().Info("starting process",
				slog.Any("config", &st),
				slog.String("file", file),
				slog.String("scanName", scanName),
				slog.String("schema", schema),
			)

			var reqs []requirement
			if id != 0 {
				reqs = append(reqs, requireInventory)
			}
			uc, cleanup, err := st.build(ctx, reqs...)
			if err != nil {
				return err
			}
			defer cleanup()

			raw, err := os.ReadFile(filepath.Clean(file))
			if err != nil {
				return goerr.Wrap(err, "failed to read export file", goerr.V("path", file))
			}

			org, targets, err := uc.ResolveOrganization(ctx, id)
			if err != nil {
				return err
			}

			report, err := uc.ProcessExport(ctx, raw, &model.ExportMetadata{
				ScanName:     scanName,
				Schema:       schema,
				Format:       types.ExportFormatCSV,
				Organization: org,
				Targets:      targets,
			})
			if err != nil {
				return err
			}

			return writeJSON(output, report)
		},
	}
}
