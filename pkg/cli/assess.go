package cli

import (
	"context"
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func assessCommand() *cli.Command {
	var (
		st     stack
		orgIDs []string
		all    bool
		output string
	)

	return &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Scan the tagged addresses of organizations and process the results",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringSliceFlag{
				Name:        "org-id",
				Usage:       "Organization (tenant) ID to assess (can be repeated)",
				Sources:     cli.EnvVars("EGIS_ORG_IDS"),
				Destination: &orgIDs,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "Assess every organization in the inventory",
				Destination: &all,
			},
			outputFlag(&output),
		}, st.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting assess", slog.Any("config", &st), slog.Any("orgIDs", orgIDs), slog.Bool("all", all))

			uc, cleanup, err := st.build(ctx, requireScanner, requireInventory)
			if err != nil {
				return err
			}
			defer cleanup()

			targets, err := parseOrgIDs(orgIDs)
			if err != nil {
				return err
			}
			if all {
				orgs, err := uc.ListOrganizations(ctx)
				if err != nil {
					return err
				}
				for _, org := range orgs {
					targets = append(targets, org.ID)
				}
			}
			if len(targets) == 0 {
				return goerr.Wrap(types.ErrInvalidOption, "--org-id or --all is required")
			}

			reports, runErr := uc.RunAssessments(ctx, targets)
			if len(reports) > 0 {
				if err := writeJSON(output, reports); err != nil {
					return err
				}
			}
			return runErr
		},
	}
}
