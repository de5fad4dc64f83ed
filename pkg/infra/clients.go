package infra

import (
	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
)

type Clients struct {
	scanner        interfaces.ScannerAPI
	targetProvider interfaces.TargetProvider
	documentStore  interfaces.DocumentStore
	bqClient       interfaces.BigQuery
	objectStorage  interfaces.ObjectStorage
	scanJobRepo    interfaces.ScanJobRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Scanner() interfaces.ScannerAPI {
	return x.scanner
}
func (x *Clients) TargetProvider() interfaces.TargetProvider {
	return x.targetProvider
}
func (x *Clients) DocumentStore() interfaces.DocumentStore {
	return x.documentStore
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) ObjectStorage() interfaces.ObjectStorage {
	return x.objectStorage
}
func (x *Clients) ScanJobRepository() interfaces.ScanJobRepository {
	return x.scanJobRepo
}

func WithScanner(client interfaces.ScannerAPI) Option {
	return func(x *Clients) {
		x.scanner = client
	}
}

func WithTargetProvider(client interfaces.TargetProvider) Option {
	return func(x *Clients) {
		x.targetProvider = client
	}
}

func WithDocumentStore(client interfaces.DocumentStore) Option {
	return func(x *Clients) {
		x.documentStore = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithObjectStorage(client interfaces.ObjectStorage) Option {
	return func(x *Clients) {
		x.objectStorage = client
	}
}

func WithScanJobRepository(repo interfaces.ScanJobRepository) Option {
	return func(x *Clients) {
		x.scanJobRepo = repo
	}
}
