package types

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type (
	RequestID      string
	OrganizationID int64
	ScanJobID      string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string { return string(x) }

// ParseOrganizationID parses a decimal organization ID. Zero and negative values are rejected.
func ParseOrganizationID(s string) (OrganizationID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(ErrInvalidOption, "organization ID must be an integer", goerr.V("value", s))
	}
	if v <= 0 {
		return 0, goerr.Wrap(ErrInvalidOption, "organization ID must be positive", goerr.V("value", s))
	}
	return OrganizationID(v), nil
}

func (x OrganizationID) String() string { return strconv.FormatInt(int64(x), 10) }

func NewScanJobID() ScanJobID {
	return ScanJobID(uuid.NewString())
}

func (x ScanJobID) String() string { return string(x) }

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
