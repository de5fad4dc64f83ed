package config

import (
	"context"
	"log/slog"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/repository/firestore"
	"github.com/C-S-I-FIIT/egis/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
	collection string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID for the scan job registry (optional, in-memory if empty)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("EGIS_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("EGIS_FIRESTORE_DATABASE_ID"),
			Value:       firestore.DefaultDatabase,
			Destination: &x.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection for scan job documents",
			Category:    "Firestore",
			Sources:     cli.EnvVars("EGIS_FIRESTORE_COLLECTION"),
			Value:       firestore.DefaultCollection,
			Destination: &x.collection,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
		slog.Any("collection", x.collection),
	)
}

// NewRepository returns the Firestore registry, or an in-memory one when no project is set
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.ScanJobRepository, error) {
	if !x.Enabled() {
		return memory.New(), nil
	}
	return firestore.New(ctx, x.projectID,
		firestore.WithDatabase(x.databaseID),
		firestore.WithCollection(x.collection),
	)
}
