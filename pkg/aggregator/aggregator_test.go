package aggregator_test

import (
	"testing"
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/aggregator"
	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func finding(host string, port int, sev types.Severity, cvss float64) model.Finding {
	return model.Finding{
		HostIP:   host,
		Port:     port,
		PluginID: "1",
		Severity: sev,
		CVSSv3:   model.Float(cvss),
	}
}

func TestGroupByHost(t *testing.T) {
	t.Run("hosts ordered by numeric address", func(t *testing.T) {
		reports := aggregator.GroupByHost([]model.Finding{
			finding("10.0.0.1", 22, types.SeverityLow, 1),
			finding("2.0.0.5", 22, types.SeverityLow, 1),
			finding("192.168.1.1", 22, types.SeverityLow, 1),
		})

		gt.V(t, len(reports)).Equal(3)
		gt.V(t, reports[0].IP).Equal("2.0.0.5")
		gt.V(t, reports[1].IP).Equal("10.0.0.1")
		gt.V(t, reports[2].IP).Equal("192.168.1.1")
	})

	t.Run("port breaks ties of equal severity and score", func(t *testing.T) {
		reports := aggregator.GroupByHost([]model.Finding{
			finding("10.0.0.1", 80, types.SeverityHigh, 7.0),
			finding("10.0.0.1", 22, types.SeverityHigh, 7.0),
		})

		gt.V(t, len(reports)).Equal(1)
		gt.V(t, reports[0].VulnCount).Equal(2)
		gt.V(t, reports[0].Findings[0].Port).Equal(22)
		gt.V(t, reports[0].Findings[1].Port).Equal(80)
	})

	t.Run("severity first then score", func(t *testing.T) {
		reports := aggregator.GroupByHost([]model.Finding{
			finding("10.0.0.1", 1, types.SeverityMedium, 6.5),
			finding("10.0.0.1", 2, types.SeverityCritical, 9.0),
			finding("10.0.0.1", 3, types.SeverityHigh, 7.5),
			finding("10.0.0.1", 4, types.SeverityHigh, 8.8),
			finding("10.0.0.1", 5, types.SeverityInfo, 0),
		})

		var ports []int
		for _, f := range reports[0].Findings {
			ports = append(ports, f.Port)
		}
		gt.V(t, ports).Equal([]int{2, 4, 3, 1, 5})
	})

	t.Run("score is CVSS v3 only", func(t *testing.T) {
		v2Only := model.Finding{HostIP: "10.0.0.1", Port: 443, PluginID: "1", Severity: types.SeverityMedium, CVSSv2: model.Float(9.3)}
		reports := aggregator.GroupByHost([]model.Finding{
			v2Only,
			finding("10.0.0.1", 8443, types.SeverityMedium, 6.5),
		})

		gt.V(t, reports[0].Findings[0].Port).Equal(8443)
		gt.V(t, reports[0].Findings[1].Port).Equal(443)
	})

	t.Run("input is not modified", func(t *testing.T) {
		input := []model.Finding{
			finding("10.0.0.1", 80, types.SeverityLow, 1),
			finding("10.0.0.1", 22, types.SeverityHigh, 7),
		}
		_ = aggregator.GroupByHost(input)
		gt.V(t, input[0].Port).Equal(80)
		gt.V(t, input[1].Port).Equal(22)
	})

	t.Run("empty input", func(t *testing.T) {
		gt.V(t, len(aggregator.GroupByHost(nil))).Equal(0)
	})
}

func TestSortHosts(t *testing.T) {
	hosts := []string{"fe80::1", "web01.example.com", "10.0.0.10", "10.0.0.9", "::ffff:1.1.1.1", "api.example.com"}
	aggregator.SortHosts(hosts)
	gt.V(t, hosts).Equal([]string{
		"::ffff:1.1.1.1",
		"10.0.0.9",
		"10.0.0.10",
		"fe80::1",
		"api.example.com",
		"web01.example.com",
	})
}

func TestSummaryCounts(t *testing.T) {
	counts := aggregator.SummaryCounts([]model.Finding{
		finding("10.0.0.1", 1, types.SeverityHigh, 7),
		finding("10.0.0.2", 1, types.SeverityHigh, 7),
		finding("10.0.0.2", 2, types.SeverityInfo, 0),
	})

	gt.V(t, len(counts)).Equal(5)
	gt.V(t, counts[types.SeverityCritical]).Equal(0)
	gt.V(t, counts[types.SeverityHigh]).Equal(2)
	gt.V(t, counts[types.SeverityMedium]).Equal(0)
	gt.V(t, counts[types.SeverityLow]).Equal(0)
	gt.V(t, counts[types.SeverityInfo]).Equal(1)
}

func TestCountByOrganization(t *testing.T) {
	a := finding("10.0.0.1", 1, types.SeverityHigh, 7)
	a.OrganizationID = 3
	b := finding("10.0.0.2", 1, types.SeverityHigh, 7)

	counts := aggregator.CountByOrganization([]model.Finding{a, a, b})
	gt.V(t, counts[3]).Equal(2)
	gt.V(t, counts[0]).Equal(1)
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	org := &model.Organization{ID: 1, Name: "acme"}

	report := aggregator.BuildReport(aggregator.ReportInput{
		Organization: org,
		Scanner:      model.ScannerInfo{Name: "nessus"},
		Scan:         model.ScanInfo{Name: "acme_scan"},
		Targets:      []model.Target{{IP: "10.0.0.1", DNSName: "fw01.acme.local"}},
		Findings: []model.Finding{
			finding("10.0.0.2", 443, types.SeverityMedium, 5),
			finding("10.0.0.1", 22, types.SeverityHigh, 7),
		},
		Malformed:   []model.MalformedRow{{Line: 4, Reason: "missing host"}},
		GeneratedAt: now,
	})

	gt.V(t, report.Organization).Equal(org)
	gt.V(t, report.TotalFindings).Equal(2)
	gt.V(t, report.MalformedCount()).Equal(1)
	gt.V(t, len(report.Hosts)).Equal(2)
	gt.V(t, report.Hosts[0].IP).Equal("10.0.0.1")
	gt.V(t, report.Hosts[0].Target.DNSName).Equal("fw01.acme.local")
	gt.True(t, report.Hosts[1].Target == nil)
	gt.V(t, report.SeverityCounts[types.SeverityHigh]).Equal(1)
	gt.V(t, report.GeneratedAt).Equal(now)
}
