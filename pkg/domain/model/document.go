package model

import (
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// FindingDocument is the stored form of a Finding, enriched with host and organization context.
type FindingDocument struct {
	ID        string    `json:"-"`
	Timestamp time.Time `json:"@timestamp"`

	Host          DocumentHost          `json:"host"`
	Vulnerability DocumentVulnerability `json:"vulnerability"`
	Scan          DocumentScan          `json:"scan"`
	Organization  *DocumentOrganization `json:"organization,omitempty"`
}

type DocumentHost struct {
	IP          string            `json:"ip"`
	Port        int               `json:"port"`
	Protocol    string            `json:"protocol"`
	DNSName     string            `json:"dns_name,omitempty"`
	Description string            `json:"description,omitempty"`
	Device      map[string]string `json:"device,omitempty"`
}

type DocumentVulnerability struct {
	PluginID      string         `json:"plugin_id"`
	Name          string         `json:"name"`
	Severity      types.Severity `json:"severity"`
	SeverityLevel int            `json:"severity_level"`
	CVSSv2        *float64       `json:"cvss_v2,omitempty"`
	CVSSv3        *float64       `json:"cvss_v3,omitempty"`
	CVEs          []string       `json:"cves,omitempty"`
	Synopsis      string         `json:"synopsis,omitempty"`
	Description   string         `json:"description,omitempty"`
	Solution      string         `json:"solution,omitempty"`
	References    []string       `json:"references,omitempty"`
	PluginOutput  string         `json:"plugin_output,omitempty"`
}

type DocumentScan struct {
	Name      string    `json:"name"`
	JobID     string    `json:"job_id,omitempty"`
	StartTime time.Time `json:"start_time,omitzero"`
	EndTime   time.Time `json:"end_time,omitzero"`
}

type DocumentOrganization struct {
	ID   types.OrganizationID `json:"id"`
	Name string               `json:"name"`
}

type BulkFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkResult is the outcome of one bulk upsert. Successes are kept even when some documents fail.
type BulkResult struct {
	Succeeded []string      `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

// Err returns ErrPartialIngestFailure when any document failed, otherwise nil.
func (x *BulkResult) Err() error {
	if x == nil || len(x.Failed) == 0 {
		return nil
	}

	ids := make([]string, 0, len(x.Failed))
	for _, f := range x.Failed {
		ids = append(ids, f.ID)
	}
	return goerr.Wrap(types.ErrPartialIngestFailure, "bulk upsert partially failed",
		goerr.V("succeeded", len(x.Succeeded)),
		goerr.V("failed", len(x.Failed)),
		goerr.V("failed_ids", ids),
	)
}
