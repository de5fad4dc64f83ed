package config

import (
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra/elastic"
	"github.com/urfave/cli/v3"
)

type Elastic struct {
	addresses []string
	username  string
	password  string
	apiKey    string
	insecure  bool
}

func (x *Elastic) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "elastic-address",
			Usage:       "Elasticsearch node URL (can be repeated)",
			Category:    "Elasticsearch",
			Sources:     cli.EnvVars("EGIS_ELASTIC_ADDRESSES"),
			Destination: &x.addresses,
		},
		&cli.StringFlag{
			Name:        "elastic-username",
			Usage:       "Elasticsearch basic auth user",
			Category:    "Elasticsearch",
			Sources:     cli.EnvVars("EGIS_ELASTIC_USERNAME"),
			Destination: &x.username,
		},
		&cli.StringFlag{
			Name:        "elastic-password",
			Usage:       "Elasticsearch basic auth password",
			Category:    "Elasticsearch",
			Sources:     cli.EnvVars("EGIS_ELASTIC_PASSWORD"),
			Destination: &x.password,
		},
		&cli.StringFlag{
			Name:        "elastic-api-key",
			Usage:       "Elasticsearch API key (takes precedence over basic auth)",
			Category:    "Elasticsearch",
			Sources:     cli.EnvVars("EGIS_ELASTIC_API_KEY"),
			Destination: &x.apiKey,
		},
		&cli.BoolFlag{
			Name:        "elastic-insecure",
			Usage:       "Skip TLS certificate verification of Elasticsearch",
			Category:    "Elasticsearch",
			Sources:     cli.EnvVars("EGIS_ELASTIC_INSECURE"),
			Destination: &x.insecure,
		},
	}
}

func (x *Elastic) Enabled() bool {
	return len(x.addresses) > 0
}

func (x *Elastic) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("addresses", x.addresses),
		slog.String("username", x.username),
		slog.Any("apiKey", types.ElasticAPIKey(x.apiKey)),
		slog.Bool("insecure", x.insecure),
	)
}

// NewClient returns nil when no address is configured
func (x *Elastic) NewClient() (*elastic.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []elastic.Option
	switch {
	case x.apiKey != "":
		options = append(options, elastic.WithAPIKey(types.ElasticAPIKey(x.apiKey)))
	case x.username != "":
		options = append(options, elastic.WithBasicAuth(x.username, x.password))
	}
	if x.insecure {
		options = append(options, elastic.WithInsecureTLS())
	}

	return elastic.New(x.addresses, options...)
}
