package aggregator

import (
	"net/netip"
	"sort"
	"strings"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

// GroupByHost partitions findings by host. Hosts are ordered by numeric IP value and the
// findings of each host by severity desc, CVSS score desc, then port asc. The input is not modified.
func GroupByHost(findings []model.Finding) []model.HostReport {
	var order []string
	byHost := map[string][]model.Finding{}
	for _, f := range findings {
		if _, ok := byHost[f.HostIP]; !ok {
			order = append(order, f.HostIP)
		}
		byHost[f.HostIP] = append(byHost[f.HostIP], f)
	}

	SortHosts(order)

	reports := make([]model.HostReport, 0, len(order))
	for _, host := range order {
		items := byHost[host]
		SortFindings(items)
		reports = append(reports, model.HostReport{
			IP:        host,
			VulnCount: len(items),
			Findings:  items,
		})
	}
	return reports
}

// SortFindings orders findings by (severity desc, score desc, port asc). Equal keys keep their input order.
func SortFindings(findings []model.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := &findings[i], &findings[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if sa, sb := a.Score(), b.Score(); sa != sb {
			return sa > sb
		}
		return a.Port < b.Port
	})
}

// SortHosts orders host addresses by numeric value. IPv4 addresses come first, then IPv6,
// then names that are not addresses in lexical order.
func SortHosts(hosts []string) {
	sort.SliceStable(hosts, func(i, j int) bool {
		return compareHosts(hosts[i], hosts[j]) < 0
	})
}

func compareHosts(a, b string) int {
	addrA, errA := netip.ParseAddr(a)
	addrB, errB := netip.ParseAddr(b)

	switch {
	case errA == nil && errB == nil:
		return addrA.Unmap().Compare(addrB.Unmap())
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// SummaryCounts counts findings per severity. Every canonical level is present, zero included.
func SummaryCounts(findings []model.Finding) map[types.Severity]int {
	counts := make(map[types.Severity]int, len(types.Severities))
	for _, sev := range types.Severities {
		counts[sev] = 0
	}
	for _, f := range findings {
		sev := f.Severity
		if !sev.Valid() {
			sev = types.SeverityInfo
		}
		counts[sev]++
	}
	return counts
}

// CountByOrganization counts findings per organization; 0 collects findings without one.
func CountByOrganization(findings []model.Finding) map[types.OrganizationID]int {
	counts := map[types.OrganizationID]int{}
	for _, f := range findings {
		counts[f.OrganizationID]++
	}
	return counts
}

type ReportInput struct {
	Organization *model.Organization
	Scanner      model.ScannerInfo
	Scan         model.ScanInfo
	Targets      []model.Target
	Findings     []model.Finding
	Malformed    []model.MalformedRow
	GeneratedAt  time.Time
}

// BuildReport assembles the report projection of one scan
func BuildReport(input ReportInput) *model.ScanReport {
	hosts := GroupByHost(input.Findings)

	if len(input.Targets) > 0 {
		idx := model.TargetIndex(input.Targets)
		for i := range hosts {
			if t, ok := idx[hosts[i].IP]; ok {
				hosts[i].Target = &t
			}
		}
	}

	return &model.ScanReport{
		Organization:   input.Organization,
		Scanner:        input.Scanner,
		Scan:           input.Scan,
		Hosts:          hosts,
		SeverityCounts: SummaryCounts(input.Findings),
		TotalFindings:  len(input.Findings),
		MalformedRows:  input.Malformed,
		GeneratedAt:    input.GeneratedAt,
	}
}
