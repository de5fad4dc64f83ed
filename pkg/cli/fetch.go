package cli

import (
	"context"
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func fetchCommand() *cli.Command {
	var (
		st       stack
		remoteID string
		scanName string
		orgID    string
		output   string
	)

	return &cli.Command{
		Name:  "fetch",
		Usage: "Export a scan that already completed on the scanner and process it",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "scan-id",
				Usage:       "Scanner job ID (required)",
				Destination: &remoteID,
			},
			&cli.StringFlag{
				Name:        "scan-name",
				Usage:       "Scan name (the scanner's job name if empty)",
				Destination: &scanName,
			},
			&cli.StringFlag{
				Name:        "org-id",
				Usage:       "Organization ID the scan belongs to (optional)",
				Destination: &orgID,
			},
			outputFlag(&output),
		}, st.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if remoteID == "" {
				return goerr.Wrap(types.ErrInvalidOption, "--scan-id is required")
			}
			id, err := parseOptionalOrgID(orgID)
			if err != nil {
				return err
			}

			logging.Default().Info("starting fetch", slog.Any("config", &st), slog.String("scanID", remoteID))

			reqs := []requirement{requireScanner}
			if id != 0 {
				reqs = append(reqs, requireInventory)
			}
			uc, cleanup, err := st.build(ctx, reqs...)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := uc.ProcessCompletedScan(ctx, &model.ProcessCompletedScanInput{
				RemoteID:       remoteID,
				ScanName:       scanName,
				OrganizationID: id,
			})
			if err != nil {
				return err
			}

			return writeJSON(output, report)
		},
	}
}
