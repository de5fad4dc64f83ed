package interfaces

import (
	"context"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

//go:generate moq -out ../mock/scan_job_repository_mock.go -pkg mock . ScanJobRepository

// ScanJobRepository records scan job snapshots for auditing and listing
type ScanJobRepository interface {
	PutScanJob(ctx context.Context, job *model.ScanJob) error
	GetScanJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error)
	// ListScanJobs returns jobs of the organization, newest first
	ListScanJobs(ctx context.Context, orgID types.OrganizationID, limit int) ([]*model.ScanJob, error)
}
