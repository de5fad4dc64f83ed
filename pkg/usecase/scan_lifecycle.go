package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) scannerAPI() (interfaces.ScannerAPI, error) {
	scanner := x.clients.Scanner()
	if scanner == nil {
		return nil, goerr.Wrap(types.ErrNotConfigured, "scanner is not configured")
	}
	return scanner, nil
}

// saveJob records a snapshot of the job. A registry failure does not stop the scan.
func (x *UseCase) saveJob(ctx context.Context, job *model.ScanJob) {
	repo := x.clients.ScanJobRepository()
	if repo == nil {
		return
	}
	if err := repo.PutScanJob(ctx, job); err != nil {
		logging.From(ctx).Warn("failed to save scan job",
			slog.String("job_id", job.ID.String()),
			slog.String("state", string(job.State)),
			slog.Any("error", err),
		)
	}
}

func (x *UseCase) failJob(ctx context.Context, job *model.ScanJob, cause error) {
	job.Fail(cause, logging.CtxTime(ctx))
	x.saveJob(ctx, job)
}

func (x *UseCase) transition(ctx context.Context, job *model.ScanJob, to types.ScanState) error {
	if err := job.Transition(to, logging.CtxTime(ctx)); err != nil {
		return err
	}
	x.saveJob(ctx, job)
	return nil
}

// CreateScan registers a job for the targets at the scanner. On rejection the returned job is Failed and the error wraps ErrRemoteRejected.
func (x *UseCase) CreateScan(ctx context.Context, name string, orgID types.OrganizationID, targets []model.Target) (*model.ScanJob, error) {
	if len(targets) == 0 {
		return nil, goerr.Wrap(types.ErrNoTargets, "cannot create scan without targets",
			goerr.V("scan_name", name),
			goerr.V("org_id", orgID),
		)
	}
	scanner, err := x.scannerAPI()
	if err != nil {
		return nil, err
	}

	job := model.NewScanJob(name, orgID, targets, logging.CtxTime(ctx))
	x.saveJob(ctx, job)

	remoteID, err := scanner.CreateJob(ctx, name, job.TargetIPs())
	if err != nil {
		x.failJob(ctx, job, err)
		return job, goerr.Wrap(err, "failed to create scan",
			goerr.V("job_id", job.ID),
			goerr.V("scan_name", name),
		)
	}

	job.RemoteID = remoteID
	if err := x.transition(ctx, job, types.ScanStateCreated); err != nil {
		return job, err
	}

	logging.From(ctx).Info("scan created",
		slog.String("job_id", job.ID.String()),
		slog.String("remote_id", remoteID),
		slog.String("scan_name", name),
		slog.Int("targets", len(targets)),
	)
	return job, nil
}

// LaunchScan starts a Created job. A launch failure marks the job Failed; retrying is up to the caller.
func (x *UseCase) LaunchScan(ctx context.Context, job *model.ScanJob) error {
	if job.State != types.ScanStateCreated {
		return goerr.Wrap(types.ErrInvalidState, "only a created scan can be launched",
			goerr.V("job_id", job.ID),
			goerr.V("state", job.State),
		)
	}
	scanner, err := x.scannerAPI()
	if err != nil {
		return err
	}

	if err := scanner.Launch(ctx, job.RemoteID); err != nil {
		x.failJob(ctx, job, err)
		return goerr.Wrap(types.ErrLaunchFailed, "failed to launch scan",
			goerr.V("job_id", job.ID),
			goerr.V("remote_id", job.RemoteID),
			goerr.V("cause", err.Error()),
		)
	}

	if err := x.transition(ctx, job, types.ScanStateLaunched); err != nil {
		return err
	}

	logging.From(ctx).Info("scan launched",
		slog.String("job_id", job.ID.String()),
		slog.String("remote_id", job.RemoteID),
	)
	return nil
}

// AwaitCompletion polls the scanner until the job completes, fails or the timeout elapses.
// A Completed job returns immediately. Cancelling ctx stops polling and leaves the job Polling so it can be awaited again.
func (x *UseCase) AwaitCompletion(ctx context.Context, job *model.ScanJob, pollInterval, timeout time.Duration) (*model.ScanJob, error) {
	if pollInterval <= 0 || timeout <= 0 {
		return job, goerr.Wrap(types.ErrInvalidOption, "poll interval and timeout must be positive",
			goerr.V("poll_interval", pollInterval.String()),
			goerr.V("timeout", timeout.String()),
		)
	}

	switch job.State {
	case types.ScanStateCompleted:
		return job, nil
	case types.ScanStateFailed:
		return job, goerr.Wrap(types.ErrScanFailed, "scan has already failed",
			goerr.V("job_id", job.ID),
			goerr.V("cause", job.Error),
		)
	case types.ScanStateLaunched:
		if err := x.transition(ctx, job, types.ScanStatePolling); err != nil {
			return job, err
		}
	case types.ScanStatePolling:
	default:
		return job, goerr.Wrap(types.ErrInvalidState, "scan is not launched",
			goerr.V("job_id", job.ID),
			goerr.V("state", job.State),
		)
	}

	scanner, err := x.scannerAPI()
	if err != nil {
		return job, err
	}

	logger := logging.From(ctx).With(
		slog.String("job_id", job.ID.String()),
		slog.String("remote_id", job.RemoteID),
	)

	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	statusErrors := 0
	err = poll(pollCtx, pollInterval, func() (bool, error) {
		status, err := scanner.GetStatus(pollCtx, job.RemoteID)
		if err != nil {
			if pollCtx.Err() != nil {
				return false, pollCtx.Err()
			}
			statusErrors++
			logger.Warn("failed to get scan status",
				slog.Int("consecutive_errors", statusErrors),
				slog.Any("error", err),
			)
			if statusErrors > x.maxStatusErrors {
				return false, goerr.Wrap(err, "too many consecutive status errors",
					goerr.V("count", statusErrors),
				)
			}
			return false, nil
		}
		statusErrors = 0

		if status != job.LastStatus {
			logger.Info("scan status changed", slog.String("status", string(status)))
			job.LastStatus = status
			job.UpdatedAt = logging.CtxTime(ctx)
			x.saveJob(ctx, job)
		}

		switch {
		case status == types.RemoteStatusCompleted:
			return true, nil
		case status.IsError():
			return false, goerr.Wrap(types.ErrScanFailed, "scanner reported error status",
				goerr.V("status", status),
			)
		}
		return false, nil
	})

	switch {
	case err == nil:
		if err := x.transition(ctx, job, types.ScanStateCompleted); err != nil {
			return job, err
		}
		logger.Info("scan completed")
		return job, nil

	case errors.Is(err, context.DeadlineExceeded):
		timeoutErr := goerr.Wrap(types.ErrScanTimeout, "scan did not complete before timeout",
			goerr.V("job_id", job.ID),
			goerr.V("remote_id", job.RemoteID),
			goerr.V("timeout", timeout.String()),
			goerr.V("last_status", job.LastStatus),
		)
		x.failJob(ctx, job, timeoutErr)
		return job, timeoutErr

	case errors.Is(err, context.Canceled):
		logger.Warn("waiting for scan was cancelled", slog.String("last_status", string(job.LastStatus)))
		return job, goerr.Wrap(err, "waiting for scan was cancelled",
			goerr.V("job_id", job.ID),
			goerr.V("remote_id", job.RemoteID),
		)

	case errors.Is(err, types.ErrScanFailed):
		x.failJob(ctx, job, err)
		return job, goerr.Wrap(err, "scan failed", goerr.V("job_id", job.ID), goerr.V("remote_id", job.RemoteID))

	default:
		x.failJob(ctx, job, err)
		return job, goerr.Wrap(types.ErrScanFailed, "failed to track scan status",
			goerr.V("job_id", job.ID),
			goerr.V("remote_id", job.RemoteID),
			goerr.V("cause", err.Error()),
		)
	}
}

// ExportResults requests an export of a completed job, waits until it is ready and downloads it
func (x *UseCase) ExportResults(ctx context.Context, job *model.ScanJob, format types.ExportFormat) ([]byte, error) {
	if job.State != types.ScanStateCompleted {
		return nil, goerr.Wrap(types.ErrInvalidState, "only a completed scan can be exported",
			goerr.V("job_id", job.ID),
			goerr.V("state", job.State),
		)
	}
	return x.exportRemote(ctx, job.RemoteID, format)
}

func (x *UseCase) exportRemote(ctx context.Context, remoteID string, format types.ExportFormat) ([]byte, error) {
	scanner, err := x.scannerAPI()
	if err != nil {
		return nil, err
	}

	fileID, err := scanner.RequestExport(ctx, remoteID, format)
	if err != nil {
		return nil, goerr.Wrap(types.ErrExportFailed, "failed to request export",
			goerr.V("remote_id", remoteID),
			goerr.V("format", format),
			goerr.V("cause", err.Error()),
		)
	}

	pollCtx, cancel := context.WithTimeout(ctx, x.exportTimeout)
	defer cancel()

	err = poll(pollCtx, x.exportPollInterval, func() (bool, error) {
		status, err := scanner.GetExportStatus(pollCtx, remoteID, fileID)
		if err != nil {
			return false, err
		}
		if status == types.RemoteStatusReady {
			return true, nil
		}
		if status.IsError() {
			return false, goerr.New("export reported error status", goerr.V("status", status))
		}
		return false, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		return nil, goerr.Wrap(types.ErrExportTimeout, "export was not ready before timeout",
			goerr.V("remote_id", remoteID),
			goerr.V("file_id", fileID),
			goerr.V("timeout", x.exportTimeout.String()),
		)
	case errors.Is(err, context.Canceled):
		return nil, goerr.Wrap(err, "waiting for export was cancelled", goerr.V("remote_id", remoteID))
	default:
		return nil, goerr.Wrap(types.ErrExportFailed, "export did not become ready",
			goerr.V("remote_id", remoteID),
			goerr.V("file_id", fileID),
			goerr.V("cause", err.Error()),
		)
	}

	data, err := scanner.DownloadExport(ctx, remoteID, fileID)
	if err != nil {
		return nil, goerr.Wrap(types.ErrExportFailed, "failed to download export",
			goerr.V("remote_id", remoteID),
			goerr.V("file_id", fileID),
			goerr.V("cause", err.Error()),
		)
	}

	logging.From(ctx).Info("export downloaded",
		slog.String("remote_id", remoteID),
		slog.String("format", string(format)),
		slog.Int("bytes", len(data)),
	)
	return data, nil
}

// poll calls check at once and then on every tick until it reports done, returns an error or ctx ends
func poll(ctx context.Context, interval time.Duration, check func() (bool, error)) error {
	if interval <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "poll interval must be positive", goerr.V("interval", interval.String()))
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		done, err := check()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
