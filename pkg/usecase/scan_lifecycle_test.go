package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/mock"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/infra"
	"github.com/C-S-I-FIIT/egis/pkg/repository/memory"
	"github.com/C-S-I-FIIT/egis/pkg/usecase"
	"github.com/m-mizutani/gt"
)

var testTargets = []model.Target{
	{IP: "10.0.0.1", OrganizationID: 1},
	{IP: "10.0.0.2", OrganizationID: 1},
}

// statusSequence returns the statuses in order and repeats the last one
func statusSequence(statuses ...types.RemoteStatus) func(ctx context.Context, remoteID string) (types.RemoteStatus, error) {
	var n atomic.Int32
	return func(ctx context.Context, remoteID string) (types.RemoteStatus, error) {
		i := int(n.Add(1)) - 1
		if i >= len(statuses) {
			i = len(statuses) - 1
		}
		return statuses[i], nil
	}
}

func newJob(t *testing.T, state types.ScanState) *model.ScanJob {
	t.Helper()
	job := model.NewScanJob("acme_scan", 1, testTargets, fixedTime)
	job.RemoteID = "42"
	for _, s := range []types.ScanState{types.ScanStateCreated, types.ScanStateLaunched, types.ScanStatePolling, types.ScanStateCompleted} {
		if job.State == state {
			break
		}
		gt.NoError(t, job.Transition(s, fixedTime))
	}
	return job
}

func TestCreateScan(t *testing.T) {
	t.Run("job enters Created", func(t *testing.T) {
		repo := memory.New()
		scanner := &mock.ScannerAPIMock{
			CreateJobFunc: func(ctx context.Context, name string, targets []string) (string, error) {
				gt.V(t, name).Equal("acme_scan")
				gt.V(t, targets).Equal([]string{"10.0.0.1", "10.0.0.2"})
				return "42", nil
			},
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner), infra.WithScanJobRepository(repo)))

		job := gt.R1(uc.CreateScan(fixedContext(), "acme_scan", 1, testTargets)).NoError(t)
		gt.V(t, job.State).Equal(types.ScanStateCreated)
		gt.V(t, job.RemoteID).Equal("42")
		gt.True(t, job.CreatedAt.Equal(fixedTime))

		saved := gt.R1(repo.GetScanJob(context.Background(), job.ID)).NoError(t)
		gt.V(t, saved.State).Equal(types.ScanStateCreated)
	})

	t.Run("rejected target list fails the job", func(t *testing.T) {
		scanner := &mock.ScannerAPIMock{
			CreateJobFunc: func(ctx context.Context, name string, targets []string) (string, error) {
				return "", types.ErrRemoteRejected
			},
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job, err := uc.CreateScan(fixedContext(), "acme_scan", 1, []model.Target{{IP: "999.0.0.1"}})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRemoteRejected))
		gt.V(t, job.State).Equal(types.ScanStateFailed)
	})

	t.Run("no targets", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithScanner(&mock.ScannerAPIMock{})))
		_, err := uc.CreateScan(fixedContext(), "acme_scan", 1, nil)
		gt.True(t, errors.Is(err, types.ErrNoTargets))
	})

	t.Run("scanner is required", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.CreateScan(fixedContext(), "acme_scan", 1, testTargets)
		gt.True(t, errors.Is(err, types.ErrNotConfigured))
	})
}

func TestLaunchScan(t *testing.T) {
	t.Run("Created to Launched", func(t *testing.T) {
		scanner := &mock.ScannerAPIMock{
			LaunchFunc: func(ctx context.Context, remoteID string) error {
				gt.V(t, remoteID).Equal("42")
				return nil
			},
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job := newJob(t, types.ScanStateCreated)
		gt.NoError(t, uc.LaunchScan(fixedContext(), job))
		gt.V(t, job.State).Equal(types.ScanStateLaunched)
		gt.True(t, job.StartedAt.Equal(fixedTime))
	})

	t.Run("launch failure marks job Failed without retry", func(t *testing.T) {
		scanner := &mock.ScannerAPIMock{
			LaunchFunc: func(ctx context.Context, remoteID string) error {
				return errors.New("503 service unavailable")
			},
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job := newJob(t, types.ScanStateCreated)
		err := uc.LaunchScan(fixedContext(), job)
		gt.True(t, errors.Is(err, types.ErrLaunchFailed))
		gt.V(t, job.State).Equal(types.ScanStateFailed)
		gt.V(t, len(scanner.LaunchCalls())).Equal(1)
	})

	t.Run("only a Created job can be launched", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithScanner(&mock.ScannerAPIMock{})))
		err := uc.LaunchScan(fixedContext(), newJob(t, types.ScanStateLaunched))
		gt.True(t, errors.Is(err, types.ErrInvalidState))
	})
}

func TestAwaitCompletion(t *testing.T) {
	t.Run("polls until completed", func(t *testing.T) {
		scanner := &mock.ScannerAPIMock{
			GetStatusFunc: statusSequence(types.RemoteStatusPending, types.RemoteStatusRunning, types.RemoteStatusCompleted),
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job := newJob(t, types.ScanStateLaunched)
		job = gt.R1(uc.AwaitCompletion(fixedContext(), job, time.Millisecond, time.Minute)).NoError(t)
		gt.V(t, job.State).Equal(types.ScanStateCompleted)
		gt.V(t, job.LastStatus).Equal(types.RemoteStatusCompleted)
		gt.V(t, len(scanner.GetStatusCalls())).Equal(3)
	})

	t.Run("never completing scan times out in bounded time", func(t *testing.T) {
		scanner := &mock.ScannerAPIMock{
			GetStatusFunc: statusSequence(types.RemoteStatusRunning),
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job := newJob(t, types.ScanStateLaunched)
		started := time.Now()
		_, err := uc.AwaitCompletion(fixedContext(), job, 10*time.Millisecond, time.Second)
		elapsed := time.Since(started)

		gt.True(t, errors.Is(err, types.ErrScanTimeout))
		gt.True(t, elapsed < 3*time.Second)
		gt.V(t, job.State).Equal(types.ScanStateFailed)
	})

	t.Run("cancellation keeps the job resumable", func(t *testing.T) {
		ctx, cancel := context.WithCancel(fixedContext())
		var calls atomic.Int32
		scanner := &mock.ScannerAPIMock{
			GetStatusFunc: func(ctx context.Context, remoteID string) (types.RemoteStatus, error) {
				if calls.Add(1) == 2 {
					cancel()
				}
				return types.RemoteStatusRunning, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job := newJob(t, types.ScanStateLaunched)
		_, err := uc.AwaitCompletion(ctx, job, time.Millisecond, time.Minute)
		gt.True(t, errors.Is(err, context.Canceled))
		gt.False(t, errors.Is(err, types.ErrScanTimeout))
		gt.V(t, job.State).Equal(types.ScanStatePolling)

		scanner.GetStatusFunc = statusSequence(types.RemoteStatusCompleted)
		job = gt.R1(uc.AwaitCompletion(fixedContext(), job, time.Millisecond, time.Minute)).NoError(t)
		gt.V(t, job.State).Equal(types.ScanStateCompleted)
	})

	t.Run("completed job returns immediately", func(t *testing.T) {
		scanner := &mock.ScannerAPIMock{}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job := newJob(t, types.ScanStateCompleted)
		got := gt.R1(uc.AwaitCompletion(fixedContext(), job, time.Millisecond, time.Minute)).NoError(t)
		gt.V(t, got.State).Equal(types.ScanStateCompleted)
		gt.V(t, len(scanner.GetStatusCalls())).Equal(0)
	})

	t.Run("remote error status fails the scan", func(t *testing.T) {
		scanner := &mock.ScannerAPIMock{
			GetStatusFunc: statusSequence(types.RemoteStatusRunning, types.NewRemoteStatus("Aborted")),
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job := newJob(t, types.ScanStateLaunched)
		_, err := uc.AwaitCompletion(fixedContext(), job, time.Millisecond, time.Minute)
		gt.True(t, errors.Is(err, types.ErrScanFailed))
		gt.V(t, job.State).Equal(types.ScanStateFailed)

		// terminal state is kept
		_, err = uc.AwaitCompletion(fixedContext(), job, time.Millisecond, time.Minute)
		gt.True(t, errors.Is(err, types.ErrScanFailed))
	})

	t.Run("transient status errors are tolerated", func(t *testing.T) {
		var calls atomic.Int32
		scanner := &mock.ScannerAPIMock{
			GetStatusFunc: func(ctx context.Context, remoteID string) (types.RemoteStatus, error) {
				if calls.Add(1) <= 3 {
					return "", errors.New("connection reset")
				}
				return types.RemoteStatusCompleted, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)))

		job := newJob(t, types.ScanStateLaunched)
		job = gt.R1(uc.AwaitCompletion(fixedContext(), job, time.Millisecond, time.Minute)).NoError(t)
		gt.V(t, job.State).Equal(types.ScanStateCompleted)
	})

	t.Run("too many status errors fail the scan", func(t *testing.T) {
		scanner := &mock.ScannerAPIMock{
			GetStatusFunc: func(ctx context.Context, remoteID string) (types.RemoteStatus, error) {
				return "", errors.New("connection reset")
			},
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)), usecase.WithMaxStatusErrors(1))

		job := newJob(t, types.ScanStateLaunched)
		_, err := uc.AwaitCompletion(fixedContext(), job, time.Millisecond, time.Minute)
		gt.True(t, errors.Is(err, types.ErrScanFailed))
		gt.V(t, len(scanner.GetStatusCalls())).Equal(2)
	})

	t.Run("job not launched yet", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithScanner(&mock.ScannerAPIMock{})))
		_, err := uc.AwaitCompletion(fixedContext(), newJob(t, types.ScanStateCreated), time.Millisecond, time.Minute)
		gt.True(t, errors.Is(err, types.ErrInvalidState))
	})
}

func TestExportResults(t *testing.T) {
	newScanner := func(exportStatus ...types.RemoteStatus) *mock.ScannerAPIMock {
		statuses := statusSequence(exportStatus...)
		return &mock.ScannerAPIMock{
			RequestExportFunc: func(ctx context.Context, remoteID string, format types.ExportFormat) (string, error) {
				gt.V(t, format).Equal(types.ExportFormatCSV)
				return "7", nil
			},
			GetExportStatusFunc: func(ctx context.Context, remoteID, fileID string) (types.RemoteStatus, error) {
				gt.V(t, fileID).Equal("7")
				return statuses(ctx, remoteID)
			},
			DownloadExportFunc: func(ctx context.Context, remoteID, fileID string) ([]byte, error) {
				return []byte("Plugin ID,Host\n"), nil
			},
		}
	}

	t.Run("waits until ready and downloads", func(t *testing.T) {
		scanner := newScanner(types.RemoteStatusLoading, types.RemoteStatusReady)
		uc := usecase.New(infra.New(infra.WithScanner(scanner)), usecase.WithExportPollInterval(time.Millisecond))

		data := gt.R1(uc.ExportResults(fixedContext(), newJob(t, types.ScanStateCompleted), types.ExportFormatCSV)).NoError(t)
		gt.V(t, string(data)).Equal("Plugin ID,Host\n")
		gt.V(t, len(scanner.GetExportStatusCalls())).Equal(2)
	})

	t.Run("export timeout", func(t *testing.T) {
		scanner := newScanner(types.RemoteStatusLoading)
		uc := usecase.New(infra.New(infra.WithScanner(scanner)),
			usecase.WithExportPollInterval(5*time.Millisecond),
			usecase.WithExportTimeout(50*time.Millisecond),
		)

		_, err := uc.ExportResults(fixedContext(), newJob(t, types.ScanStateCompleted), types.ExportFormatCSV)
		gt.True(t, errors.Is(err, types.ErrExportTimeout))
		gt.V(t, len(scanner.DownloadExportCalls())).Equal(0)
	})

	t.Run("export error status", func(t *testing.T) {
		scanner := newScanner(types.NewRemoteStatus("error"))
		uc := usecase.New(infra.New(infra.WithScanner(scanner)), usecase.WithExportPollInterval(time.Millisecond))

		_, err := uc.ExportResults(fixedContext(), newJob(t, types.ScanStateCompleted), types.ExportFormatCSV)
		gt.True(t, errors.Is(err, types.ErrExportFailed))
	})

	t.Run("download failure", func(t *testing.T) {
		scanner := newScanner(types.RemoteStatusReady)
		scanner.DownloadExportFunc = func(ctx context.Context, remoteID, fileID string) ([]byte, error) {
			return nil, errors.New("connection closed")
		}
		uc := usecase.New(infra.New(infra.WithScanner(scanner)), usecase.WithExportPollInterval(time.Millisecond))

		_, err := uc.ExportResults(fixedContext(), newJob(t, types.ScanStateCompleted), types.ExportFormatCSV)
		gt.True(t, errors.Is(err, types.ErrExportFailed))
	})

	t.Run("only a completed job is exported", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithScanner(newScanner(types.RemoteStatusReady))))
		_, err := uc.ExportResults(fixedContext(), newJob(t, types.ScanStatePolling), types.ExportFormatCSV)
		gt.True(t, errors.Is(err, types.ErrInvalidState))
	})
}

func TestPoll(t *testing.T) {
	t.Run("checks immediately", func(t *testing.T) {
		calls := 0
		err := usecase.PollForTest(context.Background(), time.Hour, func() (bool, error) {
			calls++
			return true, nil
		})
		gt.NoError(t, err)
		gt.V(t, calls).Equal(1)
	})

	t.Run("rejects non-positive interval", func(t *testing.T) {
		err := usecase.PollForTest(context.Background(), 0, func() (bool, error) { return true, nil })
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
