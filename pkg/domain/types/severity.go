package types

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Severity is the canonical ordinal severity scale. Both textual labels and
// the 0-4 numeric scale of scanner exports map onto it.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// Severities lists every level from most to least severe.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

var severityLabels = map[Severity]string{
	SeverityInfo:     "Info",
	SeverityLow:      "Low",
	SeverityMedium:   "Medium",
	SeverityHigh:     "High",
	SeverityCritical: "Critical",
}

// labelAliases also covers the vocabulary of Nessus ("None") and OpenVAS ("Log", "Alarm").
var labelAliases = map[string]Severity{
	"info":           SeverityInfo,
	"informational":  SeverityInfo,
	"none":           SeverityInfo,
	"log":            SeverityInfo,
	"debug":          SeverityInfo,
	"false positive": SeverityInfo,
	"low":            SeverityLow,
	"medium":         SeverityMedium,
	"moderate":       SeverityMedium,
	"high":           SeverityHigh,
	"critical":       SeverityCritical,
	"alarm":          SeverityCritical,
}

func (x Severity) String() string {
	if s, ok := severityLabels[x]; ok {
		return s
	}
	return severityLabels[SeverityInfo]
}

// Valid reports whether x is one of the five canonical levels.
func (x Severity) Valid() bool {
	return x >= SeverityInfo && x <= SeverityCritical
}

// SeverityFromLabel maps a textual label. The second value is false for unknown labels, which map to Info.
func SeverityFromLabel(label string) (Severity, bool) {
	sev, ok := labelAliases[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return SeverityInfo, false
	}
	return sev, true
}

// SeverityFromOrdinal maps the numeric 0-4 scale. Out of range or non numeric values map to Info.
func SeverityFromOrdinal(v string) (Severity, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		// "3.0" is seen in some spreadsheet round trips
		f, ferr := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if ferr != nil || f != float64(int(f)) {
			return SeverityInfo, false
		}
		n = int(f)
	}

	sev := Severity(n)
	if !sev.Valid() {
		return SeverityInfo, false
	}
	return sev, true
}

// ParseSeverity accepts either a label or an ordinal.
func ParseSeverity(v string) (Severity, bool) {
	if sev, ok := SeverityFromLabel(v); ok {
		return sev, true
	}
	return SeverityFromOrdinal(v)
}

func (x Severity) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Severity) UnmarshalText(b []byte) error {
	sev, ok := ParseSeverity(string(b))
	if !ok {
		return goerr.Wrap(ErrInvalidOption, "unknown severity", goerr.V("value", string(b)))
	}
	*x = sev
	return nil
}
