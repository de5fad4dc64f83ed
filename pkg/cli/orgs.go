package cli

import (
	"context"

	"github.com/C-S-I-FIIT/egis/pkg/cli/config"
	"github.com/C-S-I-FIIT/egis/pkg/infra"
	"github.com/C-S-I-FIIT/egis/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func orgsCommand() *cli.Command {
	var (
		netbox config.Netbox
		output string
	)

	return &cli.Command{
		Name:  "orgs",
		Usage: "List organizations of the inventory with their primary contact",
		Flags: append([]cli.Flag{outputFlag(&output)}, netbox.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := netbox.NewClient()
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithTargetProvider(client)))
			orgs, err := uc.ListOrganizations(ctx)
			if err != nil {
				return err
			}

			return writeJSON(output, orgs)
		},
	}
}
