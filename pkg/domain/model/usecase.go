package model

import (
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ExportMetadata describes where a raw export came from.
type ExportMetadata struct {
	ScanName     string
	JobID        string
	Schema       string
	Format       types.ExportFormat
	Organization *Organization
	Targets      []Target
	StartTime    time.Time
	EndTime      time.Time
}

func (x *ExportMetadata) Validate() error {
	if x.ScanName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "scan name is required")
	}
	return nil
}

func (x *ExportMetadata) OrganizationID() types.OrganizationID {
	if x.Organization == nil {
		return 0
	}
	return x.Organization.ID
}

type ProcessCompletedScanInput struct {
	RemoteID       string
	ScanName       string
	OrganizationID types.OrganizationID
}

func (x *ProcessCompletedScanInput) Validate() error {
	if x.RemoteID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "scanner job ID is required")
	}
	return nil
}
