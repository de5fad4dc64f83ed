package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrRemoteRejected means the scanner refused the request input. Retrying without changing the input does not help.
	ErrRemoteRejected = goerr.New("remote rejected request")

	ErrLaunchFailed  = goerr.New("scan launch failed")
	ErrScanTimeout   = goerr.New("scan did not complete in time")
	ErrScanFailed    = goerr.New("scan failed")
	ErrExportTimeout = goerr.New("export was not ready in time")
	ErrExportFailed  = goerr.New("export failed")

	ErrMalformedRow         = goerr.New("malformed row")
	ErrPartialIngestFailure = goerr.New("some documents failed to persist")

	ErrInvalidState  = goerr.New("invalid scan job state")
	ErrInvalidOption = goerr.New("invalid option")
	ErrNoTargets     = goerr.New("no scan targets")
	ErrNotConfigured = goerr.New("client is not configured")
)
