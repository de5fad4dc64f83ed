package model

import (
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

// HostReport groups the findings of one host, ordered for review.
type HostReport struct {
	IP        string    `json:"ip"`
	Target    *Target   `json:"target,omitempty"`
	VulnCount int       `json:"vuln_count"`
	Findings  []Finding `json:"findings"`
}

type ScannerInfo struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	Version string `json:"version,omitempty"`
}

type ScanInfo struct {
	Name      string    `json:"name"`
	JobID     string    `json:"job_id,omitempty"`
	StartTime time.Time `json:"start_time,omitzero"`
	EndTime   time.Time `json:"end_time,omitzero"`
}

// MalformedRow describes one source record that could not be turned into a Finding.
type MalformedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type IngestSummary struct {
	Index     string        `json:"index"`
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed,omitempty"`
}

// ScanReport is the read side projection of one scan. It is rebuilt on every call.
type ScanReport struct {
	Organization   *Organization          `json:"organization,omitempty"`
	Scanner        ScannerInfo            `json:"scanner"`
	Scan           ScanInfo               `json:"scan"`
	Hosts          []HostReport           `json:"hosts"`
	SeverityCounts map[types.Severity]int `json:"severity_counts"`
	TotalFindings  int                    `json:"total_findings"`
	MalformedRows  []MalformedRow         `json:"malformed_rows,omitempty"`
	Ingest         *IngestSummary         `json:"ingest,omitempty"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

// MalformedCount is the number of source rows dropped during normalization
func (x *ScanReport) MalformedCount() int {
	return len(x.MalformedRows)
}
