package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/mock"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra"
	"github.com/C-S-I-FIIT/egis/pkg/repository/memory"
	"github.com/C-S-I-FIIT/egis/pkg/usecase"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestScanName(t *testing.T) {
	gt.V(t, usecase.ScanName("Acme Corp", fixedTime)).Equal("Acme_Corp_EGIS_Assessment_20240501_130000")
}

type assessmentEnv struct {
	uc       *usecase.UseCase
	scanner  *mock.ScannerAPIMock
	provider *mock.TargetProviderMock
	stored   map[string]*model.FindingDocument
	repo     interface {
		ListScanJobs(ctx context.Context, orgID types.OrganizationID, limit int) ([]*model.ScanJob, error)
	}
}

func newAssessmentEnv(t *testing.T, raw []byte) *assessmentEnv {
	t.Helper()

	scanner := &mock.ScannerAPIMock{
		CreateJobFunc: func(ctx context.Context, name string, targets []string) (string, error) {
			return "42", nil
		},
		LaunchFunc: func(ctx context.Context, remoteID string) error {
			return nil
		},
		GetStatusFunc: statusSequence(types.RemoteStatusPending, types.RemoteStatusRunning, types.RemoteStatusCompleted),
		RequestExportFunc: func(ctx context.Context, remoteID string, format types.ExportFormat) (string, error) {
			return "7", nil
		},
		GetExportStatusFunc: func(ctx context.Context, remoteID, fileID string) (types.RemoteStatus, error) {
			return types.RemoteStatusReady, nil
		},
		DownloadExportFunc: func(ctx context.Context, remoteID, fileID string) ([]byte, error) {
			return raw, nil
		},
	}
	provider := &mock.TargetProviderMock{
		GetOrganizationFunc: func(ctx context.Context, orgID types.OrganizationID) (*model.Organization, error) {
			return &model.Organization{ID: orgID, Name: "Acme Corp", Slug: "acme"}, nil
		},
		ResolveTargetsFunc: func(ctx context.Context, orgID types.OrganizationID) ([]model.Target, error) {
			if orgID == 99 {
				return nil, nil
			}
			return []model.Target{
				{IP: "10.0.0.5", DNSName: "dc.acme.test", OrganizationID: orgID},
				{IP: "2.0.0.7", OrganizationID: orgID},
			}, nil
		},
	}
	store, stored := memoryStore(nil)
	repo := memory.New()

	uc := usecase.New(infra.New(
		infra.WithScanner(scanner),
		infra.WithTargetProvider(provider),
		infra.WithDocumentStore(store),
		infra.WithScanJobRepository(repo),
	),
		usecase.WithPollInterval(time.Millisecond),
		usecase.WithExportPollInterval(time.Millisecond),
	)

	return &assessmentEnv{uc: uc, scanner: scanner, provider: provider, stored: stored, repo: repo}
}

func TestRunAssessment(t *testing.T) {
	t.Run("drives the scan end to end", func(t *testing.T) {
		env := newAssessmentEnv(t, readTestData(t, "nessus.csv"))

		report := gt.R1(env.uc.RunAssessment(fixedContext(), 7)).NoError(t)

		created := env.scanner.CreateJobCalls()
		gt.V(t, len(created)).Equal(1)
		gt.V(t, created[0].Name).Equal("Acme_Corp_EGIS_Assessment_20240501_130000")
		gt.V(t, created[0].Targets).Equal([]string{"10.0.0.5", "2.0.0.7"})
		gt.V(t, len(env.scanner.LaunchCalls())).Equal(1)

		gt.V(t, report.Scan.Name).Equal("Acme_Corp_EGIS_Assessment_20240501_130000")
		gt.V(t, report.Scan.JobID).NotEqual("")
		gt.True(t, report.Scan.StartTime.Equal(fixedTime))
		gt.V(t, report.TotalFindings).Equal(4)
		gt.V(t, report.Hosts[0].IP).Equal("2.0.0.7")
		gt.V(t, len(report.Ingest.Succeeded)).Equal(3)

		for _, doc := range env.stored {
			gt.V(t, doc.Organization.ID).Equal(types.OrganizationID(7))
			gt.V(t, doc.Scan.Name).Equal(report.Scan.Name)
		}

		jobs := gt.R1(env.repo.ListScanJobs(context.Background(), 7, 10)).NoError(t)
		gt.V(t, len(jobs)).Equal(1)
		gt.V(t, jobs[0].State).Equal(types.ScanStateCompleted)
		gt.V(t, jobs[0].RemoteID).Equal("42")
	})

	t.Run("organization without targets", func(t *testing.T) {
		env := newAssessmentEnv(t, nil)

		_, err := env.uc.RunAssessment(fixedContext(), 99)
		gt.True(t, errors.Is(err, types.ErrNoTargets))
		gt.V(t, len(env.scanner.CreateJobCalls())).Equal(0)
	})

	t.Run("failed scan stops before export", func(t *testing.T) {
		env := newAssessmentEnv(t, nil)
		env.scanner.GetStatusFunc = statusSequence(types.NewRemoteStatus("canceled"))

		_, err := env.uc.RunAssessment(fixedContext(), 7)
		gt.True(t, errors.Is(err, types.ErrScanFailed))
		gt.V(t, len(env.scanner.RequestExportCalls())).Equal(0)

		jobs := gt.R1(env.repo.ListScanJobs(context.Background(), 7, 10)).NoError(t)
		gt.V(t, jobs[0].State).Equal(types.ScanStateFailed)
	})
}

func TestRunAssessments(t *testing.T) {
	t.Run("continues past failed organizations", func(t *testing.T) {
		env := newAssessmentEnv(t, readTestData(t, "nessus.csv"))

		reports, err := env.uc.RunAssessments(fixedContext(), []types.OrganizationID{7, 99, 8})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("some organizations failed")
		gt.V(t, len(reports)).Equal(2)
		gt.True(t, reports[7] != nil)
		gt.True(t, reports[8] != nil)
		gt.True(t, reports[99] == nil)
	})

	t.Run("summary counts findings per organization", func(t *testing.T) {
		env := newAssessmentEnv(t, readTestData(t, "nessus.csv"))
		var buf bytes.Buffer
		ctx := logging.With(fixedContext(), slog.New(slog.NewJSONHandler(&buf, nil)))

		_, err := env.uc.RunAssessments(ctx, []types.OrganizationID{7, 99, 8})
		gt.Error(t, err)
		gt.S(t, buf.String()).Contains(`"findings_by_org":{"7":4,"8":4}`)
	})

	t.Run("all succeed", func(t *testing.T) {
		env := newAssessmentEnv(t, readTestData(t, "nessus.csv"))

		reports := gt.R1(env.uc.RunAssessments(fixedContext(), []types.OrganizationID{7})).NoError(t)
		gt.V(t, len(reports)).Equal(1)
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		env := newAssessmentEnv(t, nil)
		ctx, cancel := context.WithCancel(fixedContext())
		cancel()

		_, err := env.uc.RunAssessments(ctx, []types.OrganizationID{7, 8})
		gt.True(t, errors.Is(err, context.Canceled))
		gt.V(t, len(env.provider.GetOrganizationCalls())).Equal(0)
	})
}

func TestListScanJobs(t *testing.T) {
	env := newAssessmentEnv(t, readTestData(t, "nessus.csv"))
	gt.R1(env.uc.RunAssessment(fixedContext(), 7)).NoError(t)

	jobs := gt.R1(env.uc.ListScanJobs(context.Background(), 7, 0)).NoError(t)
	gt.V(t, len(jobs)).Equal(1)

	_, err := usecase.New(infra.New()).ListScanJobs(context.Background(), 7, 0)
	gt.True(t, errors.Is(err, types.ErrNotConfigured))
}
