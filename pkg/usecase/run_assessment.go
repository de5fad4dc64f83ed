package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/aggregator"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/normalizer"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ScanName builds the scanner job name, e.g. "Acme_Corp_EGIS_Assessment_20240501_130000"
func ScanName(orgName string, now time.Time) string {
	return strings.ReplaceAll(orgName, " ", "_") + "_EGIS_Assessment_" + now.Format("20060102_150405")
}

// RunAssessment scans all targets of the organization and processes the results
func (x *UseCase) RunAssessment(ctx context.Context, orgID types.OrganizationID) (*model.ScanReport, error) {
	ctx = logging.WithValues(ctx, slog.String("org_id", orgID.String()))
	logger := logging.From(ctx)

	org, targets, err := x.ResolveOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "organization ID is required")
	}
	if len(targets) == 0 {
		return nil, goerr.Wrap(types.ErrNoTargets, "organization has no scan targets",
			goerr.V("org_id", orgID),
			goerr.V("org_name", org.Name),
		)
	}
	logger.Info("targets resolved", slog.String("org_name", org.Name), slog.Int("targets", len(targets)))

	name := ScanName(org.Name, logging.CtxTime(ctx))

	job, err := x.CreateScan(ctx, name, orgID, targets)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithValues(ctx, slog.String("job_id", job.ID.String()))

	if err := x.LaunchScan(ctx, job); err != nil {
		return nil, err
	}

	if _, err := x.AwaitCompletion(ctx, job, x.pollInterval, x.scanTimeout); err != nil {
		return nil, err
	}

	raw, err := x.ExportResults(ctx, job, types.ExportFormatCSV)
	if err != nil {
		return nil, err
	}
	x.archiveExport(ctx, org, name, types.ExportFormatCSV, raw)

	return x.ProcessExport(ctx, raw, &model.ExportMetadata{
		ScanName:     name,
		JobID:        job.ID.String(),
		Schema:       normalizer.SchemaNessus,
		Format:       types.ExportFormatCSV,
		Organization: org,
		Targets:      targets,
		StartTime:    job.StartedAt,
		EndTime:      job.CompletedAt,
	})
}

// RunAssessments runs the organizations one after another. A failed organization does not stop the others;
// the returned error lists every failed organization.
func (x *UseCase) RunAssessments(ctx context.Context, orgIDs []types.OrganizationID) (map[types.OrganizationID]*model.ScanReport, error) {
	logger := logging.From(ctx)
	reports := make(map[types.OrganizationID]*model.ScanReport, len(orgIDs))
	var failed []string

	for i, orgID := range orgIDs {
		if ctx.Err() != nil {
			return reports, goerr.Wrap(ctx.Err(), "assessments interrupted",
				goerr.V("completed", len(reports)),
				goerr.V("remaining", len(orgIDs)-i),
			)
		}

		logger.Info("running assessment",
			slog.Int("progress", i+1),
			slog.Int("total", len(orgIDs)),
			slog.String("org_id", orgID.String()),
		)

		report, err := x.RunAssessment(ctx, orgID)
		if err != nil {
			failed = append(failed, orgID.String())
			logger.Warn("assessment failed",
				slog.String("org_id", orgID.String()),
				slog.Any("error", err),
			)
			continue
		}
		reports[orgID] = report
	}

	var findings []model.Finding
	for _, report := range reports {
		for _, host := range report.Hosts {
			findings = append(findings, host.Findings...)
		}
	}
	logger.Info("assessments completed",
		slog.Int("total", len(orgIDs)),
		slog.Int("success", len(reports)),
		slog.Int("failure", len(failed)),
		slog.Any("findings_by_org", aggregator.CountByOrganization(findings)),
	)

	if len(failed) > 0 {
		return reports, goerr.New("some organizations failed to be assessed",
			goerr.V("failed_org_ids", strings.Join(failed, ",")),
			goerr.V("success_count", len(reports)),
			goerr.V("failure_count", len(failed)),
		)
	}

	return reports, nil
}

func (x *UseCase) ListOrganizations(ctx context.Context) ([]*model.Organization, error) {
	tp := x.clients.TargetProvider()
	if tp == nil {
		return nil, goerr.Wrap(types.ErrNotConfigured, "target provider is not configured")
	}

	orgs, err := tp.ListOrganizations(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list organizations")
	}
	return orgs, nil
}

// ListScanJobs returns recorded jobs of the organization, newest first. Zero orgID lists all organizations.
func (x *UseCase) ListScanJobs(ctx context.Context, orgID types.OrganizationID, limit int) ([]*model.ScanJob, error) {
	repo := x.clients.ScanJobRepository()
	if repo == nil {
		return nil, goerr.Wrap(types.ErrNotConfigured, "scan job repository is not configured")
	}

	jobs, err := repo.ListScanJobs(ctx, orgID, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scan jobs", goerr.V("org_id", orgID))
	}
	return jobs, nil
}
