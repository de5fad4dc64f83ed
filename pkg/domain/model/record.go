package model

import (
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

// FindingRecord is the archived form of one finding, one row per finding in the analytics table
type FindingRecord struct {
	ID               string   `bigquery:"id" json:"id"`
	Timestamp        int64    `bigquery:"timestamp" json:"timestamp"`
	ScanName         string   `bigquery:"scan_name" json:"scan_name"`
	JobID            string   `bigquery:"job_id" json:"job_id"`
	OrganizationID   int64    `bigquery:"organization_id" json:"organization_id"`
	OrganizationName string   `bigquery:"organization_name" json:"organization_name"`
	HostIP           string   `bigquery:"host_ip" json:"host_ip"`
	DNSName          string   `bigquery:"dns_name" json:"dns_name"`
	Port             int64    `bigquery:"port" json:"port"`
	Protocol         string   `bigquery:"protocol" json:"protocol"`
	PluginID         string   `bigquery:"plugin_id" json:"plugin_id"`
	PluginName       string   `bigquery:"plugin_name" json:"plugin_name"`
	Severity         string   `bigquery:"severity" json:"severity"`
	SeverityLevel    int64    `bigquery:"severity_level" json:"severity_level"`
	Score            float64  `bigquery:"score" json:"score"`
	CVEs             []string `bigquery:"cves" json:"cves"`
	Synopsis         string   `bigquery:"synopsis" json:"synopsis"`
	Solution         string   `bigquery:"solution" json:"solution"`
}

// NewFindingRecord builds the archive row of a finding. Timestamp is in microseconds.
func NewFindingRecord(id string, f *Finding, org *Organization, jobID types.ScanJobID, target *Target, ts time.Time) *FindingRecord {
	rec := &FindingRecord{
		ID:             id,
		Timestamp:      ts.UnixMicro(),
		ScanName:       f.ScanName,
		JobID:          jobID.String(),
		OrganizationID: int64(f.OrganizationID),
		HostIP:         f.HostIP,
		Port:           int64(f.Port),
		Protocol:       f.Protocol,
		PluginID:       f.PluginID,
		PluginName:     f.PluginName,
		Severity:       f.Severity.String(),
		SeverityLevel:  int64(f.Severity),
		Score:          f.Score(),
		CVEs:           f.CVEs,
		Synopsis:       f.Synopsis,
		Solution:       f.Solution,
	}
	if org != nil {
		rec.OrganizationID = int64(org.ID)
		rec.OrganizationName = org.Name
	}
	if target != nil {
		rec.DNSName = target.DNSName
	}
	if rec.CVEs == nil {
		rec.CVEs = []string{}
	}
	return rec
}
