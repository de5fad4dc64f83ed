package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

const (
	DefaultDatabase = firestore.DefaultDatabaseID
	// DefaultCollection holds scan job documents keyed by job ID
	DefaultCollection = "scan_job"
)

type config struct {
	databaseID    string
	collection    string
	clientOptions []option.ClientOption
}

type Option func(*config)

// WithDatabase selects a named database. The project's default database is used otherwise.
func WithDatabase(databaseID string) Option {
	return func(c *config) {
		c.databaseID = databaseID
	}
}

func WithCollection(name string) Option {
	return func(c *config) {
		c.collection = name
	}
}

func WithClientOptions(opts ...option.ClientOption) Option {
	return func(c *config) {
		c.clientOptions = append(c.clientOptions, opts...)
	}
}

// New connects to Firestore and returns the scan job registry backed by it
func New(ctx context.Context, projectID string, opts ...Option) (interfaces.ScanJobRepository, error) {
	cfg := config{
		databaseID: DefaultDatabase,
		collection: DefaultCollection,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.databaseID == "" {
		cfg.databaseID = DefaultDatabase
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, cfg.databaseID, cfg.clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", cfg.databaseID),
		)
	}

	return &scanJobRepository{
		client:     client,
		collection: cfg.collection,
	}, nil
}
