package usecase

import (
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/infra"
	"github.com/C-S-I-FIIT/egis/pkg/normalizer"
)

const (
	DefaultPollInterval       = 30 * time.Second
	DefaultScanTimeout        = 24 * time.Hour
	DefaultExportPollInterval = 2 * time.Second
	DefaultExportTimeout      = 10 * time.Minute
	DefaultMaxStatusErrors    = 3
	DefaultIndexPrefix        = "egis-vulnerabilities"
)

type UseCase struct {
	clients *infra.Clients
	schemas *normalizer.Registry
	scanner model.ScannerInfo

	pollInterval       time.Duration
	scanTimeout        time.Duration
	exportPollInterval time.Duration
	exportTimeout      time.Duration
	maxStatusErrors    int
	indexPrefix        string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithPollInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.pollInterval = d
	}
}

func WithScanTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.scanTimeout = d
	}
}

func WithExportPollInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.exportPollInterval = d
	}
}

func WithExportTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.exportTimeout = d
	}
}

// WithMaxStatusErrors sets how many consecutive status query failures are tolerated while polling
func WithMaxStatusErrors(n int) Option {
	return func(x *UseCase) {
		x.maxStatusErrors = n
	}
}

func WithIndexPrefix(prefix string) Option {
	return func(x *UseCase) {
		x.indexPrefix = prefix
	}
}

func WithSchemaRegistry(registry *normalizer.Registry) Option {
	return func(x *UseCase) {
		x.schemas = registry
	}
}

func WithScannerInfo(info model.ScannerInfo) Option {
	return func(x *UseCase) {
		x.scanner = info
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:            clients,
		schemas:            normalizer.NewRegistry(),
		scanner:            model.ScannerInfo{Name: "Nessus"},
		pollInterval:       DefaultPollInterval,
		scanTimeout:        DefaultScanTimeout,
		exportPollInterval: DefaultExportPollInterval,
		exportTimeout:      DefaultExportTimeout,
		maxStatusErrors:    DefaultMaxStatusErrors,
		indexPrefix:        DefaultIndexPrefix,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
