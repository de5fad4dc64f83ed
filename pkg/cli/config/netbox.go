package config

import (
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra/netbox"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Netbox struct {
	url       string
	token     string
	targetTag string
	insecure  bool
}

func (x *Netbox) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "netbox-url",
			Usage:       "NetBox base URL",
			Category:    "NetBox",
			Sources:     cli.EnvVars("EGIS_NETBOX_URL"),
			Destination: &x.url,
		},
		&cli.StringFlag{
			Name:        "netbox-token",
			Usage:       "NetBox API token",
			Category:    "NetBox",
			Sources:     cli.EnvVars("EGIS_NETBOX_TOKEN"),
			Destination: &x.token,
		},
		&cli.StringFlag{
			Name:        "netbox-target-tag",
			Usage:       "Tag of IP addresses to be scanned",
			Category:    "NetBox",
			Sources:     cli.EnvVars("EGIS_NETBOX_TARGET_TAG"),
			Value:       "vuln-scan",
			Destination: &x.targetTag,
		},
		&cli.BoolFlag{
			Name:        "netbox-insecure",
			Usage:       "Skip TLS certificate verification of NetBox",
			Category:    "NetBox",
			Sources:     cli.EnvVars("EGIS_NETBOX_INSECURE"),
			Destination: &x.insecure,
		},
	}
}

func (x *Netbox) Enabled() bool {
	return x.url != ""
}

func (x *Netbox) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", x.url),
		slog.Any("token", types.NetboxToken(x.token)),
		slog.String("targetTag", x.targetTag),
		slog.Bool("insecure", x.insecure),
	)
}

func (x *Netbox) NewClient() (*netbox.Client, error) {
	if !x.Enabled() {
		return nil, goerr.Wrap(types.ErrNotConfigured, "netbox URL is required")
	}
	if x.token == "" {
		return nil, goerr.Wrap(types.ErrNotConfigured, "netbox token is required")
	}

	options := []netbox.Option{netbox.WithTargetTag(x.targetTag)}
	if x.insecure {
		options = append(options, netbox.WithInsecureTLS())
	}

	return netbox.New(x.url, types.NetboxToken(x.token), options...)
}
