package cli

import (
	"context"

	"github.com/C-S-I-FIIT/egis/pkg/cli/config"
	"github.com/C-S-I-FIIT/egis/pkg/infra"
	"github.com/C-S-I-FIIT/egis/pkg/usecase"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func jobsCommand() *cli.Command {
	var (
		firestore config.Firestore
		orgID     string
		limit     int64
		output    string
	)

	return &cli.Command{
		Name:  "jobs",
		Usage: "List recorded scan jobs, newest first",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "org-id",
				Usage:       "Organization ID (all organizations if empty)",
				Destination: &orgID,
			},
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "Maximum number of jobs, 0 for no limit",
				Value:       20,
				Destination: &limit,
			},
			outputFlag(&output),
		}, firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := parseOptionalOrgID(orgID)
			if err != nil {
				return err
			}

			repo, err := firestore.NewRepository(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithScanJobRepository(repo)))
			jobs, err := uc.ListScanJobs(ctx, id, int(limit))
			if err != nil {
				return err
			}

			return writeJSON(output, jobs)
		},
	}
}
