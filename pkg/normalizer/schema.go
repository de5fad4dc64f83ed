package normalizer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// SeverityScale tells how the severity column of an export is encoded
type SeverityScale string

const (
	SeverityScaleLabel   SeverityScale = "label"
	SeverityScaleOrdinal SeverityScale = "ordinal"
	// SeverityScaleAuto tries a label first, then the 0-4 ordinal table
	SeverityScaleAuto SeverityScale = "auto"
)

// Columns maps each Finding field to candidate header names. The first header present in the export wins.
type Columns struct {
	Host         []string `yaml:"host"`
	Port         []string `yaml:"port"`
	Protocol     []string `yaml:"protocol"`
	PluginID     []string `yaml:"plugin_id"`
	PluginName   []string `yaml:"plugin_name"`
	Severity     []string `yaml:"severity"`
	CVSSv2       []string `yaml:"cvss_v2"`
	CVSSv3       []string `yaml:"cvss_v3"`
	CVE          []string `yaml:"cve"`
	Synopsis     []string `yaml:"synopsis"`
	Description  []string `yaml:"description"`
	Solution     []string `yaml:"solution"`
	References   []string `yaml:"references"`
	PluginOutput []string `yaml:"plugin_output"`
}

// Schema describes the column layout of one export flavor
type Schema struct {
	Name          string        `yaml:"name"`
	SeverityScale SeverityScale `yaml:"severity_scale"`
	Columns       Columns       `yaml:"columns"`
}

const (
	SchemaNessus        = "nessus"
	SchemaNessusNumeric = "nessus-numeric"
	SchemaOpenVAS       = "openvas"
)

// NessusSchema is the CSV export of Nessus with a textual "Risk" column
func NessusSchema() *Schema {
	return &Schema{
		Name:          SchemaNessus,
		SeverityScale: SeverityScaleAuto,
		Columns: Columns{
			Host:         []string{"Host", "IP Address"},
			Port:         []string{"Port"},
			Protocol:     []string{"Protocol"},
			PluginID:     []string{"Plugin ID"},
			PluginName:   []string{"Name", "Plugin Name"},
			Severity:     []string{"Risk", "Risk Factor"},
			CVSSv2:       []string{"CVSS v2.0 Base Score", "CVSS"},
			CVSSv3:       []string{"CVSS v3.0 Base Score"},
			CVE:          []string{"CVE"},
			Synopsis:     []string{"Synopsis"},
			Description:  []string{"Description"},
			Solution:     []string{"Solution"},
			References:   []string{"See Also"},
			PluginOutput: []string{"Plugin Output"},
		},
	}
}

// NessusNumericSchema is a Nessus export carrying the 0-4 "Severity" column
func NessusNumericSchema() *Schema {
	s := NessusSchema()
	s.Name = SchemaNessusNumeric
	s.SeverityScale = SeverityScaleOrdinal
	s.Columns.Severity = []string{"Severity"}
	return s
}

// OpenVASSchema is the CSV results export of OpenVAS / Greenbone
func OpenVASSchema() *Schema {
	return &Schema{
		Name:          SchemaOpenVAS,
		SeverityScale: SeverityScaleLabel,
		Columns: Columns{
			Host:         []string{"IP"},
			Port:         []string{"Port"},
			Protocol:     []string{"Port Protocol"},
			PluginID:     []string{"NVT OID"},
			PluginName:   []string{"NVT Name"},
			Severity:     []string{"Severity"},
			CVSSv2:       []string{"CVSS"},
			CVE:          []string{"CVEs"},
			Synopsis:     []string{"Summary"},
			Description:  []string{"Specific Result"},
			Solution:     []string{"Solution"},
			References:   []string{"Other References"},
			PluginOutput: []string{"Vulnerability Insight"},
		},
	}
}

func (x *Schema) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidOption, "schema name is required")
	}
	switch x.SeverityScale {
	case SeverityScaleLabel, SeverityScaleOrdinal, SeverityScaleAuto:
	default:
		return goerr.Wrap(types.ErrInvalidOption, "invalid severity scale",
			goerr.V("schema", x.Name),
			goerr.V("scale", x.SeverityScale),
		)
	}
	if len(x.Columns.Host) == 0 || len(x.Columns.PluginID) == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "host and plugin_id columns are required", goerr.V("schema", x.Name))
	}
	return nil
}

// LoadSchema decodes a YAML schema. An omitted severity_scale means auto.
func LoadSchema(r io.Reader) (*Schema, error) {
	var schema Schema
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&schema); err != nil {
		return nil, goerr.Wrap(err, "failed to decode schema")
	}
	if schema.SeverityScale == "" {
		schema.SeverityScale = SeverityScaleAuto
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &schema, nil
}

func LoadSchemaFile(path string) (*Schema, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read schema file", goerr.V("path", path))
	}
	schema, err := LoadSchema(bytes.NewReader(raw))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid schema file", goerr.V("path", path))
	}
	return schema, nil
}

// Registry holds the schemas selectable by name
type Registry struct {
	schemas map[string]*Schema
}

// NewRegistry returns the built-in schemas plus the given ones. A custom schema replaces a built-in of the same name.
func NewRegistry(custom ...*Schema) *Registry {
	r := &Registry{schemas: map[string]*Schema{}}
	for _, s := range []*Schema{NessusSchema(), NessusNumericSchema(), OpenVASSchema()} {
		r.schemas[s.Name] = s
	}
	for _, s := range custom {
		r.schemas[strings.ToLower(s.Name)] = s
	}
	return r
}

// Lookup returns the named schema. An empty name selects the Nessus schema.
func (x *Registry) Lookup(name string) (*Schema, error) {
	if name == "" {
		name = SchemaNessus
	}
	s, ok := x.schemas[strings.ToLower(name)]
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown schema",
			goerr.V("name", name),
			goerr.V("available", x.Names()),
		)
	}
	return s, nil
}

func (x *Registry) Names() []string {
	names := make([]string, 0, len(x.schemas))
	for name := range x.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
