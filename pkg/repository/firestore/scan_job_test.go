package firestore_test

import (
	"context"
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/repository/firestore"
	"github.com/C-S-I-FIIT/egis/pkg/repository/testhelper"
	"github.com/C-S-I-FIIT/egis/pkg/utils/testutil"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
)

func TestFirestoreScanJobRepository(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_PROJECT_ID")
	databaseID := testutil.GetEnvOrSkip(t, "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo := gt.R1(firestore.New(ctx, projectID,
		firestore.WithDatabase(databaseID),
		firestore.WithCollection("scan_job_test_"+uuid.NewString()),
	)).NoError(t)

	testhelper.TestAll(t, repo)
}
