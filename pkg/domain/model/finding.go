package model

import (
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

// Finding is the canonical vulnerability record produced by the normalizer.
// (HostIP, PluginID, Port, ScanName) identifies the same real world fact.
type Finding struct {
	HostIP         string               `json:"host_ip"`
	Port           int                  `json:"port"`
	Protocol       string               `json:"protocol"`
	PluginID       string               `json:"plugin_id"`
	PluginName     string               `json:"plugin_name"`
	Severity       types.Severity       `json:"severity"`
	CVSSv2         *float64             `json:"cvss_v2,omitempty"`
	CVSSv3         *float64             `json:"cvss_v3,omitempty"`
	CVEs           []string             `json:"cves,omitempty"`
	Synopsis       string               `json:"synopsis,omitempty"`
	Description    string               `json:"description,omitempty"`
	Solution       string               `json:"solution,omitempty"`
	References     []string             `json:"references,omitempty"`
	PluginOutput   string               `json:"plugin_output,omitempty"`
	ScanName       string               `json:"scan_name"`
	OrganizationID types.OrganizationID `json:"organization_id,omitempty"`
}

// Score is the sort key of a finding: the CVSS v3 base score, or 0 when the export has none.
// CVSS v2 is kept for display only.
func (x *Finding) Score() float64 {
	if x.CVSSv3 != nil {
		return *x.CVSSv3
	}
	return 0
}

func Float(v float64) *float64 {
	return &v
}
