package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type scanJobData struct {
	job *model.ScanJob
	seq int
}

type scanJobRepository struct {
	mu   sync.RWMutex
	jobs map[string]*scanJobData
	seq  int
}

func (r *scanJobRepository) PutScanJob(ctx context.Context, job *model.ScanJob) error {
	if job == nil || job.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "scan job ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if data, exists := r.jobs[job.ID.String()]; exists {
		data.job = job.Copy()
		return nil
	}

	r.seq++
	r.jobs[job.ID.String()] = &scanJobData{
		job: job.Copy(),
		seq: r.seq,
	}
	return nil
}

func (r *scanJobRepository) GetScanJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.jobs[id.String()]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "scan job not found",
			goerr.V("job_id", id),
		)
	}

	return data.job.Copy(), nil
}

func (r *scanJobRepository) ListScanJobs(ctx context.Context, orgID types.OrganizationID, limit int) ([]*model.ScanJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*scanJobData
	for _, data := range r.jobs {
		if orgID != 0 && data.job.OrganizationID != orgID {
			continue
		}
		matched = append(matched, data)
	}

	// newest first; insertion order breaks ties of equal creation time
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.job.CreatedAt.Equal(b.job.CreatedAt) {
			return a.job.CreatedAt.After(b.job.CreatedAt)
		}
		return a.seq > b.seq
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	jobs := make([]*model.ScanJob, len(matched))
	for i, data := range matched {
		jobs[i] = data.job.Copy()
	}
	return jobs, nil
}
