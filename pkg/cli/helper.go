package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/C-S-I-FIIT/egis/pkg/cli/config"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra"
	"github.com/C-S-I-FIIT/egis/pkg/usecase"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/C-S-I-FIIT/egis/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

type requirement int

const (
	requireScanner requirement = iota + 1
	requireInventory
)

// stack is the set of external services a command can be wired to
type stack struct {
	nessus    config.Nessus
	netbox    config.Netbox
	elastic   config.Elastic
	bigQuery  config.BigQuery
	firestore config.Firestore
	archive   config.Archive
	pipeline  config.Pipeline
	sentry    config.Sentry
}

func (x *stack) Flags() []cli.Flag {
	return slice.Flatten(
		x.nessus.Flags(),
		x.netbox.Flags(),
		x.elastic.Flags(),
		x.bigQuery.Flags(),
		x.firestore.Flags(),
		x.archive.Flags(),
		x.pipeline.Flags(),
		x.sentry.Flags(),
	)
}

func (x *stack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Nessus", &x.nessus),
		slog.Any("NetBox", &x.netbox),
		slog.Any("Elastic", &x.elastic),
		slog.Any("BigQuery", &x.bigQuery),
		slog.Any("Firestore", &x.firestore),
		slog.Any("Archive", &x.archive),
		slog.Any("Pipeline", &x.pipeline),
	)
}

func hasRequirement(reqs []requirement, r requirement) bool {
	for _, v := range reqs {
		if v == r {
			return true
		}
	}
	return false
}

// build creates the use case. Optional services are wired only when configured. The returned cleanup is never nil.
func (x *stack) build(ctx context.Context, reqs ...requirement) (*usecase.UseCase, func(), error) {
	flush, err := x.sentry.Configure(ctx)
	if err != nil {
		return nil, func() {}, err
	}
	cleanup := flush

	ucOptions, err := x.pipeline.Options()
	if err != nil {
		return nil, cleanup, err
	}

	var infraOptions []infra.Option

	if x.nessus.Enabled() || hasRequirement(reqs, requireScanner) {
		client, err := x.nessus.NewClient()
		if err != nil {
			return nil, cleanup, err
		}
		infraOptions = append(infraOptions, infra.WithScanner(client))
		ucOptions = append(ucOptions, usecase.WithScannerInfo(model.ScannerInfo{Name: "Nessus", URL: client.URL()}))
	}

	if x.netbox.Enabled() || hasRequirement(reqs, requireInventory) {
		client, err := x.netbox.NewClient()
		if err != nil {
			return nil, cleanup, err
		}
		infraOptions = append(infraOptions, infra.WithTargetProvider(client))
	}

	if client, err := x.elastic.NewClient(); err != nil {
		return nil, cleanup, err
	} else if client != nil {
		infraOptions = append(infraOptions, infra.WithDocumentStore(client))
	} else {
		logging.From(ctx).Warn("elasticsearch is not configured, findings are not stored")
	}

	if client, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, cleanup, err
	} else if client != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(client))
	}

	storage, closeStorage, err := x.archive.NewStorage(ctx)
	if err != nil {
		return nil, cleanup, err
	}
	cleanup = func() {
		closeStorage()
		flush()
	}
	if storage != nil {
		infraOptions = append(infraOptions, infra.WithObjectStorage(storage))
	}

	repo, err := x.firestore.NewRepository(ctx)
	if err != nil {
		return nil, cleanup, err
	}
	infraOptions = append(infraOptions, infra.WithScanJobRepository(repo))

	return usecase.New(infra.New(infraOptions...), ucOptions...), cleanup, nil
}

func parseOrgIDs(values []string) ([]types.OrganizationID, error) {
	ids := make([]types.OrganizationID, 0, len(values))
	for _, v := range values {
		id, err := types.ParseOrganizationID(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseOptionalOrgID returns zero for an empty value
func parseOptionalOrgID(v string) (types.OrganizationID, error) {
	if v == "" {
		return 0, nil
	}
	return types.ParseOrganizationID(v)
}

func outputFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "output",
		Usage:       "Output file of the JSON result, '-' for stdout",
		Value:       "-",
		Destination: dst,
	}
}

// writeJSON writes v as indented JSON to the path, or to stdout for "" and "-". A partially written file is removed.
func writeJSON(path string, v any) error {
	if path == "" || path == "-" {
		return encodeJSON(os.Stdout, v)
	}

	fd, err := os.Create(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	if err := encodeJSON(fd, v); err != nil {
		safe.Close(fd)
		safe.Remove(path)
		return goerr.Wrap(err, "failed to write output", goerr.V("path", path))
	}
	if err := fd.Close(); err != nil {
		return goerr.Wrap(err, "failed to close output file", goerr.V("path", path))
	}
	return nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON")
	}
	return nil
}
