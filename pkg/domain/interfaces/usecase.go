package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

type UseCase interface {
	RunAssessment(ctx context.Context, orgID types.OrganizationID) (*model.ScanReport, error)
	RunAssessments(ctx context.Context, orgIDs []types.OrganizationID) (map[types.OrganizationID]*model.ScanReport, error)
	ProcessExport(ctx context.Context, raw []byte, meta *model.ExportMetadata) (*model.ScanReport, error)
	ListOrganizations(ctx context.Context) ([]*model.Organization, error)
	ResolveOrganization(ctx context.Context, orgID types.OrganizationID) (*model.Organization, []model.Target, error)
}
