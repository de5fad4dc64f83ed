package testhelper

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/repository"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for ScanJobRepository
// This is the main entry point for testing any ScanJobRepository implementation
func TestAll(t *testing.T, repo interfaces.ScanJobRepository) {
	t.Run("ScanJobCRUD", func(t *testing.T) {
		TestScanJobCRUD(t, repo)
	})
	t.Run("ScanJobNotFound", func(t *testing.T) {
		TestScanJobNotFound(t, repo)
	})
	t.Run("ListScanJobs", func(t *testing.T) {
		TestListScanJobs(t, repo)
	})
}

// randomOrgID keeps test data of parallel runs on a shared database apart
func randomOrgID() types.OrganizationID {
	return types.OrganizationID(rand.Int64N(1<<40) + 1)
}

func newJob(orgID types.OrganizationID, createdAt time.Time) *model.ScanJob {
	return model.NewScanJob("acme_EGIS_Assessment_"+uuid.NewString()[:8], orgID, []model.Target{
		{IP: "10.0.0.1", DNSName: "web.acme.test", OrganizationID: orgID, DeviceMetadata: map[string]string{"device_name": "web01"}},
		{IP: "10.0.0.2", OrganizationID: orgID},
	}, createdAt)
}

// TestScanJobCRUD tests put, get and overwrite of a scan job snapshot
func TestScanJobCRUD(t *testing.T, repo interfaces.ScanJobRepository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	job := newJob(randomOrgID(), now)
	gt.NoError(t, repo.PutScanJob(ctx, job))

	retrieved := gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.V(t, retrieved.ID).Equal(job.ID)
	gt.V(t, retrieved.Name).Equal(job.Name)
	gt.V(t, retrieved.OrganizationID).Equal(job.OrganizationID)
	gt.V(t, retrieved.State).Equal(types.ScanStateIdle)
	gt.V(t, len(retrieved.Targets)).Equal(2)
	gt.V(t, retrieved.Targets[0].DeviceMetadata["device_name"]).Equal("web01")
	gt.True(t, retrieved.CreatedAt.Equal(now))

	// Update the snapshot
	job.RemoteID = "42"
	gt.NoError(t, job.Transition(types.ScanStateCreated, now.Add(time.Second)))
	gt.NoError(t, repo.PutScanJob(ctx, job))

	retrieved = gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.V(t, retrieved.RemoteID).Equal("42")
	gt.V(t, retrieved.State).Equal(types.ScanStateCreated)

	// Stored snapshot is not affected by later changes of the caller's copy
	job.RemoteID = "changed"
	retrieved = gt.R1(repo.GetScanJob(ctx, job.ID)).NoError(t)
	gt.V(t, retrieved.RemoteID).Equal("42")

	// ID is required
	err := repo.PutScanJob(ctx, &model.ScanJob{})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}

// TestScanJobNotFound tests the error of an unknown job
func TestScanJobNotFound(t *testing.T, repo interfaces.ScanJobRepository) {
	ctx := context.Background()

	_, err := repo.GetScanJob(ctx, types.ScanJobID(uuid.NewString()))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestListScanJobs tests filtering by organization, ordering and limit
func TestListScanJobs(t *testing.T, repo interfaces.ScanJobRepository) {
	ctx := context.Background()
	orgID := randomOrgID()
	otherOrgID := randomOrgID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	oldest := newJob(orgID, base.Add(-2*time.Hour))
	middle := newJob(orgID, base.Add(-time.Hour))
	newest := newJob(orgID, base)
	other := newJob(otherOrgID, base.Add(time.Hour))

	for _, job := range []*model.ScanJob{middle, other, oldest, newest} {
		gt.NoError(t, repo.PutScanJob(ctx, job))
	}

	jobs := gt.R1(repo.ListScanJobs(ctx, orgID, 0)).NoError(t)
	gt.V(t, len(jobs)).Equal(3)
	gt.V(t, jobs[0].ID).Equal(newest.ID)
	gt.V(t, jobs[1].ID).Equal(middle.ID)
	gt.V(t, jobs[2].ID).Equal(oldest.ID)

	limited := gt.R1(repo.ListScanJobs(ctx, orgID, 2)).NoError(t)
	gt.V(t, len(limited)).Equal(2)
	gt.V(t, limited[0].ID).Equal(newest.ID)

	others := gt.R1(repo.ListScanJobs(ctx, otherOrgID, 10)).NoError(t)
	gt.V(t, len(others)).Equal(1)
	gt.V(t, others[0].ID).Equal(other.ID)
}
