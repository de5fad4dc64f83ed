package types

import "strings"

// ScanState is the local lifecycle state of a scanner job.
type ScanState string

const (
	ScanStateIdle      ScanState = "idle"
	ScanStateCreated   ScanState = "created"
	ScanStateLaunched  ScanState = "launched"
	ScanStatePolling   ScanState = "polling"
	ScanStateCompleted ScanState = "completed"
	ScanStateFailed    ScanState = "failed"
)

func (x ScanState) Terminal() bool {
	return x == ScanStateCompleted || x == ScanStateFailed
}

// RemoteStatus is a scan or export status string reported by the scanner.
type RemoteStatus string

const (
	RemoteStatusCompleted RemoteStatus = "completed"
	RemoteStatusRunning   RemoteStatus = "running"
	RemoteStatusPending   RemoteStatus = "pending"
	RemoteStatusReady     RemoteStatus = "ready"
	RemoteStatusLoading   RemoteStatus = "loading"
)

var remoteErrorStatuses = map[RemoteStatus]struct{}{
	"canceled": {},
	"aborted":  {},
	"stopped":  {},
	"error":    {},
	"empty":    {},
}

func NewRemoteStatus(s string) RemoteStatus {
	return RemoteStatus(strings.ToLower(strings.TrimSpace(s)))
}

// IsError reports whether the scanner will never bring the job to completion.
func (x RemoteStatus) IsError() bool {
	_, ok := remoteErrorStatuses[x]
	return ok
}

type ExportFormat string

const (
	ExportFormatCSV    ExportFormat = "csv"
	ExportFormatNessus ExportFormat = "nessus"
)

func (x ExportFormat) ContentType() string {
	switch x {
	case ExportFormatCSV:
		return "text/csv"
	case ExportFormatNessus:
		return "application/xml"
	default:
		return "application/octet-stream"
	}
}
