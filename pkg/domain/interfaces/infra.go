package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ScannerAPI TargetProvider DocumentStore BigQuery ObjectStorage

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

// ScannerAPI is the remote vulnerability scanner. Implementations treat non-2xx responses as errors.
type ScannerAPI interface {
	CreateJob(ctx context.Context, name string, targets []string) (string, error)
	Launch(ctx context.Context, remoteID string) error
	GetStatus(ctx context.Context, remoteID string) (types.RemoteStatus, error)
	GetScanName(ctx context.Context, remoteID string) (string, error)
	RequestExport(ctx context.Context, remoteID string, format types.ExportFormat) (string, error)
	GetExportStatus(ctx context.Context, remoteID, fileID string) (types.RemoteStatus, error)
	DownloadExport(ctx context.Context, remoteID, fileID string) ([]byte, error)
}

// TargetProvider resolves organizations and their scan targets from the inventory.
type TargetProvider interface {
	ListOrganizations(ctx context.Context) ([]*model.Organization, error)
	GetOrganization(ctx context.Context, orgID types.OrganizationID) (*model.Organization, error)
	ResolveTargets(ctx context.Context, orgID types.OrganizationID) ([]model.Target, error)
}

// DocumentStore persists finding documents. A document with an existing ID is overwritten.
type DocumentStore interface {
	BulkUpsert(ctx context.Context, index string, docs []*model.FindingDocument) (*model.BulkResult, error)
}

type BigQueryInsertOption func(*BigQueryInsertConfig)

type BigQueryInsertConfig struct {
	EnableRetry bool
}

// WithRetry retries the insert while a freshly updated table schema is not yet visible to the write API
func WithRetry(retry bool) BigQueryInsertOption {
	return func(c *BigQueryInsertConfig) {
		c.EnableRetry = retry
	}
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data []any, opts ...BigQueryInsertOption) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// ObjectStorage archives raw export files
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}
