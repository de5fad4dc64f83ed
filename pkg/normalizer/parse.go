package normalizer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/C-S-I-FIIT/egis/pkg/domain/model"
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
)

// InputFormat is the container format of a raw export
type InputFormat string

const (
	InputFormatCSV  InputFormat = "csv"
	InputFormatJSON InputFormat = "json"
)

type Options struct {
	ScanName       string
	OrganizationID types.OrganizationID
	// Format is detected from the content when empty
	Format InputFormat
}

type Result struct {
	Findings  []model.Finding
	Malformed []model.MalformedRow
	// Rows is the number of data records read, malformed ones included
	Rows int
}

// Err returns ErrMalformedRow with the skipped line numbers, or nil when every record was usable.
func (x *Result) Err() error {
	if len(x.Malformed) == 0 {
		return nil
	}

	lines := make([]int, len(x.Malformed))
	for i, m := range x.Malformed {
		lines[i] = m.Line
	}
	return goerr.Wrap(types.ErrMalformedRow, "export contains malformed rows",
		goerr.V("rows", x.Rows),
		goerr.V("malformed", len(x.Malformed)),
		goerr.V("lines", lines),
	)
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Parse converts a raw export into findings in source order. A bad record is reported in
// Result.Malformed and never aborts the rest; only an unreadable container or a header that
// does not match the schema fails the whole call.
func Parse(ctx context.Context, raw []byte, schema *Schema, opt Options) (*Result, error) {
	if schema == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "schema is required")
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	format := opt.Format
	if format == "" {
		format = DetectFormat(raw)
	}

	var (
		result *Result
		err    error
	)
	switch format {
	case InputFormatCSV:
		result, err = parseCSV(raw, schema, opt)
	case InputFormatJSON:
		result, err = parseJSON(raw, schema, opt)
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported input format", goerr.V("format", format))
	}
	if err != nil {
		return nil, err
	}

	if err := result.Err(); err != nil {
		logging.From(ctx).Warn("skipped malformed rows",
			slog.String("schema", schema.Name),
			slog.Any("error", err),
		)
	}

	return result, nil
}

// DetectFormat treats a payload starting with '[' as JSON and anything else as CSV
func DetectFormat(raw []byte) InputFormat {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return InputFormatJSON
	}
	return InputFormatCSV
}

// row gives access to one record by header name
type row func(candidates []string) string

// parseCSV reads records without lazy quoting. A record that fails to parse, or that spans several
// physical lines without matching the header width, is reported as malformed and reading restarts on
// the line after it, so a stray quote cannot swallow the rows that follow.
func parseCSV(raw []byte, schema *Schema, opt Options) (*Result, error) {
	lineStarts := []int{0}
	for i, b := range raw {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	// lineOf returns the 1-based physical line holding the byte at offset
	lineOf := func(offset int) int {
		return sort.SearchInts(lineStarts, offset+1)
	}

	r := newCSVReader(raw)
	header, err := r.Read()
	if err == io.EOF {
		return &Result{}, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read CSV header")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}
	if err := checkRequiredColumns(schema, func(name string) bool {
		_, ok := index[normalizeHeader(name)]
		return ok
	}); err != nil {
		return nil, err
	}

	result := &Result{}
	// chunkOffset and chunkLine locate the input of r inside raw
	chunkOffset, chunkLine := 0, 1
	resync := func(line int) bool {
		if line >= len(lineStarts) {
			return false
		}
		chunkOffset, chunkLine = lineStarts[line], line+1
		r = newCSVReader(raw[chunkOffset:])
		return true
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, goerr.Wrap(err, "failed to read CSV record")
			}
			line := chunkLine + pe.StartLine - 1
			result.Rows++
			result.Malformed = append(result.Malformed, model.MalformedRow{Line: line, Reason: pe.Err.Error()})
			if !resync(line) {
				break
			}
			continue
		}

		result.Rows++
		rel, _ := r.FieldPos(0)
		line := chunkLine + rel - 1
		lastLine := lineOf(chunkOffset + int(r.InputOffset()) - 1)
		if lastLine > line && len(record) != len(header) {
			result.Malformed = append(result.Malformed, model.MalformedRow{
				Line:   line,
				Reason: fmt.Sprintf("record spans lines %d-%d with %d fields, header has %d", line, lastLine, len(record), len(header)),
			})
			if !resync(line) {
				break
			}
			continue
		}

		get := func(candidates []string) string {
			for _, c := range candidates {
				if i, ok := index[normalizeHeader(c)]; ok && i < len(record) {
					return record[i]
				}
			}
			return ""
		}

		finding, reason := buildFinding(get, schema, opt)
		if reason != "" {
			result.Malformed = append(result.Malformed, model.MalformedRow{Line: line, Reason: reason})
			continue
		}
		result.Findings = append(result.Findings, finding)
	}

	return result, nil
}

func newCSVReader(raw []byte) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	return r
}

func parseJSON(raw []byte, schema *Schema, opt Options) (*Result, error) {
	if !gjson.ValidBytes(raw) {
		return nil, goerr.Wrap(types.ErrInvalidOption, "export is not valid JSON")
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "JSON export must be an array of records")
	}

	result := &Result{}
	line := 0
	doc.ForEach(func(_, item gjson.Result) bool {
		line++
		result.Rows++

		if !item.IsObject() {
			result.Malformed = append(result.Malformed, model.MalformedRow{Line: line, Reason: "record is not an object"})
			return true
		}

		fields := map[string]string{}
		item.ForEach(func(key, value gjson.Result) bool {
			fields[normalizeHeader(key.String())] = jsonCell(value)
			return true
		})
		get := func(candidates []string) string {
			for _, c := range candidates {
				if v, ok := fields[normalizeHeader(c)]; ok {
					return v
				}
			}
			return ""
		}

		finding, reason := buildFinding(get, schema, opt)
		if reason != "" {
			result.Malformed = append(result.Malformed, model.MalformedRow{Line: line, Reason: reason})
			return true
		}
		result.Findings = append(result.Findings, finding)
		return true
	})

	return result, nil
}

// jsonCell flattens arrays into a newline separated cell so list columns split the same way as CSV
func jsonCell(v gjson.Result) string {
	if !v.IsArray() {
		return v.String()
	}
	var items []string
	v.ForEach(func(_, item gjson.Result) bool {
		items = append(items, item.String())
		return true
	})
	return strings.Join(items, "\n")
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func checkRequiredColumns(schema *Schema, has func(string) bool) error {
	required := map[string][]string{
		"host":      schema.Columns.Host,
		"plugin_id": schema.Columns.PluginID,
	}
	for field, candidates := range required {
		found := false
		for _, c := range candidates {
			if has(c) {
				found = true
				break
			}
		}
		if !found {
			return goerr.Wrap(types.ErrInvalidOption, "export does not contain a required column",
				goerr.V("schema", schema.Name),
				goerr.V("field", field),
				goerr.V("candidates", candidates),
			)
		}
	}
	return nil
}

// buildFinding returns a non empty reason when the record cannot be used
func buildFinding(get row, schema *Schema, opt Options) (model.Finding, string) {
	c := schema.Columns

	host := strings.TrimSpace(get(c.Host))
	if host == "" {
		return model.Finding{}, "missing host"
	}
	pluginID := strings.TrimSpace(get(c.PluginID))
	if pluginID == "" {
		return model.Finding{}, "missing plugin ID"
	}

	port, portProto := parsePort(get(c.Port))
	protocol := strings.ToLower(strings.TrimSpace(get(c.Protocol)))
	if protocol == "" {
		protocol = strings.ToLower(portProto)
	}

	// unknown values fall back to Info so the row is still ingested
	severity, _ := parseSeverity(get(c.Severity), schema.SeverityScale)

	return model.Finding{
		HostIP:         host,
		Port:           port,
		Protocol:       protocol,
		PluginID:       pluginID,
		PluginName:     strings.TrimSpace(get(c.PluginName)),
		Severity:       severity,
		CVSSv2:         parseScore(get(c.CVSSv2)),
		CVSSv3:         parseScore(get(c.CVSSv3)),
		CVEs:           splitList(get(c.CVE)),
		Synopsis:       strings.TrimSpace(get(c.Synopsis)),
		Description:    strings.TrimSpace(get(c.Description)),
		Solution:       strings.TrimSpace(get(c.Solution)),
		References:     splitList(get(c.References)),
		PluginOutput:   strings.TrimSpace(get(c.PluginOutput)),
		ScanName:       opt.ScanName,
		OrganizationID: opt.OrganizationID,
	}, ""
}
