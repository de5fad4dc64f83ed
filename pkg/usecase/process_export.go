package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/C-S-I-FIIT/egis/pkg/aggregator"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/normalizer"
	"github.com/C-S-I-FIIT/egis/pkg/utils/errutil"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ProcessExport normalizes a raw export, persists the findings and builds the report. It does not talk to the scanner,
// so previously exported data can be processed again. Malformed rows are skipped and listed in the report.
func (x *UseCase) ProcessExport(ctx context.Context, raw []byte, meta *model.ExportMetadata) (*model.ScanReport, error) {
	if meta == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "export metadata is required")
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	schema, err := x.schemas.Lookup(meta.Schema)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithValues(ctx, slog.String("scan_name", meta.ScanName))
	logger := logging.From(ctx)

	parsed, err := normalizer.Parse(ctx, raw, schema, normalizer.Options{
		ScanName:       meta.ScanName,
		OrganizationID: meta.OrganizationID(),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse export", goerr.V("schema", schema.Name))
	}
	logger.Info("export normalized",
		slog.String("schema", schema.Name),
		slog.Int("rows", parsed.Rows),
		slog.Int("findings", len(parsed.Findings)),
		slog.Int("malformed", len(parsed.Malformed)),
	)

	summary, err := x.IngestFindings(ctx, parsed.Findings, meta)
	if err != nil {
		return nil, err
	}

	report := aggregator.BuildReport(aggregator.ReportInput{
		Organization: meta.Organization,
		Scanner:      x.scanner,
		Scan: model.ScanInfo{
			Name:      meta.ScanName,
			JobID:     meta.JobID,
			StartTime: meta.StartTime,
			EndTime:   meta.EndTime,
		},
		Targets:     meta.Targets,
		Findings:    parsed.Findings,
		Malformed:   parsed.Malformed,
		GeneratedAt: logging.CtxTime(ctx),
	})
	report.Ingest = summary

	if err := x.archiveReport(ctx, parsed.Findings, meta); err != nil {
		errutil.HandleError(ctx, "failed to archive findings", err)
	}

	return report, nil
}

// ResolveOrganization returns the organization and its targets for enrichment. Zero orgID returns nothing.
func (x *UseCase) ResolveOrganization(ctx context.Context, orgID types.OrganizationID) (*model.Organization, []model.Target, error) {
	if orgID == 0 {
		return nil, nil, nil
	}
	tp := x.clients.TargetProvider()
	if tp == nil {
		return nil, nil, goerr.Wrap(types.ErrNotConfigured, "target provider is required to resolve organization",
			goerr.V("org_id", orgID),
		)
	}

	org, err := tp.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to get organization", goerr.V("org_id", orgID))
	}

	targets, err := tp.ResolveTargets(ctx, orgID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to resolve targets", goerr.V("org_id", orgID))
	}

	return org, targets, nil
}

// ProcessCompletedScan exports a scanner job that already finished and processes it without creating a new job
func (x *UseCase) ProcessCompletedScan(ctx context.Context, input *model.ProcessCompletedScanInput) (*model.ScanReport, error) {
	if input == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	org, targets, err := x.ResolveOrganization(ctx, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithValues(ctx, slog.String("remote_id", input.RemoteID))

	scanName := input.ScanName
	if scanName == "" {
		scanner, err := x.scannerAPI()
		if err != nil {
			return nil, err
		}
		name, err := scanner.GetScanName(ctx, input.RemoteID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get scan name", goerr.V("remote_id", input.RemoteID))
		}
		scanName = name
	}
	if scanName == "" {
		scanName = "scan_" + input.RemoteID
	}

	raw, err := x.exportRemote(ctx, input.RemoteID, types.ExportFormatCSV)
	if err != nil {
		return nil, err
	}
	x.archiveExport(ctx, org, scanName, types.ExportFormatCSV, raw)

	return x.ProcessExport(ctx, raw, &model.ExportMetadata{
		ScanName:     scanName,
		Schema:       normalizer.SchemaNessus,
		Format:       types.ExportFormatCSV,
		Organization: org,
		Targets:      targets,
	})
}

// ArchiveKey is the object key of a raw export: <organization>/<scan name>.<format>
func ArchiveKey(org *model.Organization, scanName string, format types.ExportFormat) string {
	owner := "unassigned"
	if org != nil {
		switch {
		case org.Slug != "":
			owner = org.Slug
		case org.Name != "":
			owner = strings.ReplaceAll(org.Name, " ", "_")
		default:
			owner = org.ID.String()
		}
	}
	return owner + "/" + scanName + "." + string(format)
}

// archiveExport keeps the raw export. A storage failure is reported but does not stop processing.
func (x *UseCase) archiveExport(ctx context.Context, org *model.Organization, scanName string, format types.ExportFormat, raw []byte) {
	storage := x.clients.ObjectStorage()
	if storage == nil {
		return
	}

	key := ArchiveKey(org, scanName, format)
	if err := storage.Put(ctx, key, format.ContentType(), raw); err != nil {
		errutil.HandleError(ctx, "failed to archive raw export", goerr.Wrap(err, "failed to put export",
			goerr.V("key", key),
			goerr.V("scan_name", scanName),
		))
		return
	}

	logging.From(ctx).Info("raw export archived", slog.String("key", key), slog.Int("bytes", len(raw)))
}
