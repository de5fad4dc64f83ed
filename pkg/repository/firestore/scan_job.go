package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type scanJobRepository struct {
	client     *firestore.Client
	collection string
}

func (r *scanJobRepository) PutScanJob(ctx context.Context, job *model.ScanJob) error {
	if job == nil || job.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "scan job ID is required")
	}

	docRef := r.client.Collection(r.collection).Doc(job.ID.String())
	if _, err := docRef.Set(ctx, job); err != nil {
		return goerr.Wrap(err, "failed to put scan job",
			goerr.V("job_id", job.ID),
		)
	}

	return nil
}

func (r *scanJobRepository) GetScanJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
	if id == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "scan job ID is required")
	}

	snap, err := r.client.Collection(r.collection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "scan job not found",
				goerr.V("job_id", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get scan job",
			goerr.V("job_id", id),
		)
	}

	var job model.ScanJob
	if err := snap.DataTo(&job); err != nil {
		return nil, goerr.Wrap(err, "failed to decode scan job",
			goerr.V("job_id", id),
		)
	}

	return &job, nil
}

// ListScanJobs requires a composite index on (OrganizationID, CreatedAt desc) when orgID is set
func (r *scanJobRepository) ListScanJobs(ctx context.Context, orgID types.OrganizationID, limit int) ([]*model.ScanJob, error) {
	query := r.client.Collection(r.collection).Query
	if orgID != 0 {
		query = query.Where("OrganizationID", "==", int64(orgID))
	}
	query = query.OrderBy("CreatedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var jobs []*model.ScanJob
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate scan jobs",
				goerr.V("org_id", orgID),
			)
		}

		var job model.ScanJob
		if err := doc.DataTo(&job); err != nil {
			return nil, goerr.Wrap(err, "failed to decode scan job",
				goerr.V("doc_id", doc.Ref.ID),
			)
		}
		jobs = append(jobs, &job)
	}

	return jobs, nil
}
