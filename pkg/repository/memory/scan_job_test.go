package memory_test

import (
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/repository/memory"
	"github.com/C-S-I-FIIT/egis/pkg/repository/testhelper"
)

func TestMemoryScanJobRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
