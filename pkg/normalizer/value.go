package normalizer

import (
	"strconv"
	"strings"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

// parsePort returns 0 for empty or non numeric ports such as "general". "443/tcp" yields 443 and "tcp".
func parsePort(v string) (int, string) {
	v = strings.TrimSpace(v)
	var proto string
	if i := strings.IndexByte(v, '/'); i >= 0 {
		v, proto = v[:i], strings.TrimSpace(v[i+1:])
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 65535 {
		return 0, proto
	}
	return n, proto
}

// parseScore returns nil when the cell is empty, not a number or outside the CVSS range
func parseScore(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 10 {
		return nil
	}
	return &f
}

func parseSeverity(v string, scale SeverityScale) (types.Severity, bool) {
	switch scale {
	case SeverityScaleLabel:
		return types.SeverityFromLabel(v)
	case SeverityScaleOrdinal:
		return types.SeverityFromOrdinal(v)
	default:
		return types.ParseSeverity(v)
	}
}

func isListSeparator(r rune) bool {
	switch r {
	case ',', ';', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// splitList splits a multi value cell and drops empty and repeated items, keeping order
func splitList(v string) []string {
	fields := strings.FieldsFunc(v, isListSeparator)
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
