package config

import (
	"context"
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra/bq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID                 string
	datasetID                 string
	tableID                   string
	impersonateServiceAccount string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bq-project-id",
			Usage:       "BigQuery project ID for archiving findings (optional)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("EGIS_BQ_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "bq-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("EGIS_BQ_DATASET_ID"),
			Destination: &x.datasetID,
		},
		&cli.StringFlag{
			Name:        "bq-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("EGIS_BQ_TABLE_ID"),
			Value:       "findings",
			Destination: &x.tableID,
		},
		&cli.StringFlag{
			Name:        "bq-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("EGIS_BQ_IMPERSONATE_SERVICE_ACCOUNT"),
			Destination: &x.impersonateServiceAccount,
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("projectID", x.projectID),
		slog.String("datasetID", x.datasetID),
		slog.String("tableID", x.tableID),
		slog.String("impersonateServiceAccount", x.impersonateServiceAccount),
	)
}

// NewClient returns nil when BigQuery is not configured
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	if x.datasetID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "BigQuery dataset ID is required when project ID is set")
	}

	var options []option.ClientOption
	if x.impersonateServiceAccount != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateServiceAccount,
			Scopes: []string{
				"https://www.googleapis.com/auth/bigquery",
				"https://www.googleapis.com/auth/cloud-platform",
			},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create token source for impersonation",
				goerr.V("service_account", x.impersonateServiceAccount),
			)
		}
		options = append(options, option.WithTokenSource(ts))
	}

	return bq.New(ctx,
		types.GoogleProjectID(x.projectID),
		types.BQDatasetID(x.datasetID),
		types.BQTableID(x.tableID),
		options...,
	)
}
