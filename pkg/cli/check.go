package cli

import (
	"context"
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/cli/config"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// checkServices pings every service and returns the names of unreachable ones
func checkServices(ctx context.Context, services map[string]pinger) []string {
	logger := logging.From(ctx)
	var failed []string

	for name, svc := range services {
		if err := svc.Ping(ctx); err != nil {
			logger.Error("service is not reachable", slog.String("service", name), slog.Any("error", err))
			failed = append(failed, name)
			continue
		}
		logger.Info("service is reachable", slog.String("service", name))
	}

	return failed
}

func checkCommand() *cli.Command {
	var (
		nessus  config.Nessus
		netbox  config.Netbox
		elastic config.Elastic
	)

	return &cli.Command{
		Name:  "check",
		Usage: "Check connectivity to the scanner, the inventory and the document store",
		Flags: slice.Flatten(nessus.Flags(), netbox.Flags(), elastic.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			services := map[string]pinger{}

			if nessus.Enabled() {
				client, err := nessus.NewClient()
				if err != nil {
					return err
				}
				services["nessus"] = client
			}
			if netbox.Enabled() {
				client, err := netbox.NewClient()
				if err != nil {
					return err
				}
				services["netbox"] = client
			}
			if client, err := elastic.NewClient(); err != nil {
				return err
			} else if client != nil {
				services["elasticsearch"] = client
			}

			if len(services) == 0 {
				return goerr.New("no service is configured")
			}

			if failed := checkServices(ctx, services); len(failed) > 0 {
				return goerr.New("connectivity check failed", goerr.V("services", failed))
			}
			return nil
		},
	}
}
