package config

import (
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra/nessus"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Nessus struct {
	url          string
	accessKey    string
	secretKey    string
	templateUUID string
	insecure     bool
	apiToken     string
	discover     bool
}

func (x *Nessus) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "nessus-url",
			Usage:       "Nessus API base URL, e.g. https://nessus.example.com:8834",
			Category:    "Nessus",
			Sources:     cli.EnvVars("EGIS_NESSUS_URL"),
			Destination: &x.url,
		},
		&cli.StringFlag{
			Name:        "nessus-access-key",
			Usage:       "Nessus API access key",
			Category:    "Nessus",
			Sources:     cli.EnvVars("EGIS_NESSUS_ACCESS_KEY"),
			Destination: &x.accessKey,
		},
		&cli.StringFlag{
			Name:        "nessus-secret-key",
			Usage:       "Nessus API secret key",
			Category:    "Nessus",
			Sources:     cli.EnvVars("EGIS_NESSUS_SECRET_KEY"),
			Destination: &x.secretKey,
		},
		&cli.StringFlag{
			Name:        "nessus-template-uuid",
			Usage:       "Scan template UUID (basic network scan if empty)",
			Category:    "Nessus",
			Sources:     cli.EnvVars("EGIS_NESSUS_TEMPLATE_UUID"),
			Destination: &x.templateUUID,
		},
		&cli.StringFlag{
			Name:        "nessus-api-token",
			Usage:       "X-Api-Token of the Nessus web UI",
			Category:    "Nessus",
			Sources:     cli.EnvVars("EGIS_NESSUS_API_TOKEN"),
			Destination: &x.apiToken,
		},
		&cli.BoolFlag{
			Name:        "nessus-discover-api-token",
			Usage:       "Read the X-Api-Token from /nessus6.js when --nessus-api-token is empty",
			Category:    "Nessus",
			Value:       true,
			Sources:     cli.EnvVars("EGIS_NESSUS_DISCOVER_API_TOKEN"),
			Destination: &x.discover,
		},
		&cli.BoolFlag{
			Name:        "nessus-insecure",
			Usage:       "Skip TLS certificate verification of the Nessus API",
			Category:    "Nessus",
			Sources:     cli.EnvVars("EGIS_NESSUS_INSECURE"),
			Destination: &x.insecure,
		},
	}
}

func (x *Nessus) Enabled() bool {
	return x.url != ""
}

func (x *Nessus) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", x.url),
		slog.String("accessKey", x.accessKey),
		slog.Any("secretKey", types.NessusSecretKey(x.secretKey)),
		slog.String("templateUUID", x.templateUUID),
		slog.Bool("insecure", x.insecure),
		slog.Bool("apiToken", x.apiToken != ""),
		slog.Bool("discoverAPIToken", x.discover),
	)
}

func (x *Nessus) NewClient() (*nessus.Client, error) {
	if !x.Enabled() {
		return nil, goerr.Wrap(types.ErrNotConfigured, "nessus URL is required")
	}
	if x.accessKey == "" || x.secretKey == "" {
		return nil, goerr.Wrap(types.ErrNotConfigured, "nessus access key and secret key are required")
	}

	var options []nessus.Option
	if x.templateUUID != "" {
		options = append(options, nessus.WithTemplateUUID(x.templateUUID))
	}
	if x.insecure {
		options = append(options, nessus.WithInsecureTLS())
	}
	if x.apiToken != "" {
		options = append(options, nessus.WithAPIToken(x.apiToken))
	}
	if x.discover {
		options = append(options, nessus.WithAPITokenDiscovery())
	}

	return nessus.New(x.url, types.NessusAccessKey(x.accessKey), types.NessusSecretKey(x.secretKey), options...)
}
