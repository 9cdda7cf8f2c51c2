package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/ddlgen"
)

// File is the content of a YAML schema file.
//
//	tables:
//	  - name: users
//	    primary_key: id
//	    fields:
//	      - name: id
//	        type: int
//	      - name: name
//	        type: text
//	        nillable: true
//	        schema_type: {sqlserver: "nvarchar(100)"}
type File struct {
	Tables []*Schema `yaml:"tables"`
}

// Load decodes a YAML schema file from r and validates its tables.
// Unknown keys are rejected.
func Load(r io.Reader) ([]*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("load: empty schema file")
		}
		return nil, fmt.Errorf("load: decoding schema file: %w", err)
	}
	return checkTables(f.Tables)
}

// LoadJSON decodes a JSON array of marshaled schemas, as written by
// WriteJSON, and validates its tables.
func LoadJSON(r io.Reader) ([]*Schema, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("load: empty schema file")
		}
		return nil, fmt.Errorf("load: decoding schema file: %w", err)
	}
	tables := make([]*Schema, 0, len(raw))
	for i, buf := range raw {
		s, err := UnmarshalSchema(buf)
		if err != nil {
			return nil, fmt.Errorf("load: table %d: %w", i, err)
		}
		tables = append(tables, s)
	}
	return checkTables(tables)
}

// WriteJSON marshals the given records and writes them to w as a JSON
// array that LoadJSON accepts.
func WriteJSON(w io.Writer, records ...ddlgen.Interface) error {
	raw := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		buf, err := MarshalSchema(r)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		raw = append(raw, buf)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

func checkTables(tables []*Schema) ([]*Schema, error) {
	if len(tables) == 0 {
		return nil, errors.New("load: no tables defined")
	}
	seen := make(map[string]bool, len(tables))
	for i, s := range tables {
		if s == nil {
			return nil, fmt.Errorf("load: table %d is empty", i)
		}
		if err := s.check(); err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		if seen[s.TableName()] {
			return nil, fmt.Errorf("load: duplicate table %q", s.TableName())
		}
		seen[s.TableName()] = true
	}
	return tables, nil
}

// LoadFile loads the schema file at path. Files with a .json extension
// are decoded with LoadJSON, everything else as YAML.
func LoadFile(path string) ([]*Schema, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(bytes.NewReader(buf))
	}
	return Load(bytes.NewReader(buf))
}

// Lookup returns the loaded schema with the given schema or table name.
func Lookup(schemas []*Schema, name string) (*Schema, bool) {
	for _, s := range schemas {
		if s.Name == name || s.TableName() == name {
			return s, true
		}
	}
	return nil, false
}
