package types_test

import (
	"encoding/json"
	"testing"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestSeverityFromLabel(t *testing.T) {
	testCases := []struct {
		input  string
		expect types.Severity
		known  bool
	}{
		{"Critical", types.SeverityCritical, true},
		{"HIGH", types.SeverityHigh, true},
		{" medium ", types.SeverityMedium, true},
		{"Low", types.SeverityLow, true},
		{"None", types.SeverityInfo, true},
		{"Log", types.SeverityInfo, true},
		{"", types.SeverityInfo, false},
		{"urgent", types.SeverityInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			sev, ok := types.SeverityFromLabel(tc.input)
			gt.V(t, sev).Equal(tc.expect)
			gt.V(t, ok).Equal(tc.known)
		})
	}
}

func TestSeverityFromOrdinal(t *testing.T) {
	testCases := []struct {
		input  string
		expect types.Severity
		known  bool
	}{
		{"0", types.SeverityInfo, true},
		{"1", types.SeverityLow, true},
		{"2", types.SeverityMedium, true},
		{"3", types.SeverityHigh, true},
		{"4", types.SeverityCritical, true},
		{"4.0", types.SeverityCritical, true},
		{"5", types.SeverityInfo, false},
		{"-1", types.SeverityInfo, false},
		{"2.5", types.SeverityInfo, false},
		{"N/A", types.SeverityInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			sev, ok := types.SeverityFromOrdinal(tc.input)
			gt.V(t, sev).Equal(tc.expect)
			gt.V(t, ok).Equal(tc.known)
		})
	}
}

func TestSeverityScalesAgree(t *testing.T) {
	for _, sev := range types.Severities {
		byLabel, ok := types.SeverityFromLabel(sev.String())
		gt.True(t, ok)
		byOrdinal, ok := types.SeverityFromOrdinal(string(rune('0' + int(sev))))
		gt.True(t, ok)
		gt.V(t, byLabel).Equal(byOrdinal)
	}
}

func TestSeverityJSON(t *testing.T) {
	counts := map[types.Severity]int{
		types.SeverityHigh: 2,
		types.SeverityInfo: 1,
	}
	raw := gt.R1(json.Marshal(counts)).NoError(t)
	gt.V(t, string(raw)).Equal(`{"High":2,"Info":1}`)

	var decoded map[types.Severity]int
	gt.NoError(t, json.Unmarshal(raw, &decoded))
	gt.V(t, decoded[types.SeverityHigh]).Equal(2)

	var sev types.Severity
	gt.Error(t, json.Unmarshal([]byte(`"urgent"`), &sev))
}
