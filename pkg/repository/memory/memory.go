package memory

import "github.com/C-S-I-FIIT/egis/pkg/domain/interfaces"

// New creates a new in-memory repository
func New() interfaces.ScanJobRepository {
	return &scanJobRepository{
		jobs: make(map[string]*scanJobData),
	}
}
