package schema

import (
	"fmt"
	"strings"

	"github.com/syssam/ddlgen"
)

// ValidationError represents a table validation error.
type ValidationError struct {
	Table   string
	Column  string
	Message string
	// Breaking indicates if this is a breaking change.
	Breaking bool
}

func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s.%s: %s", e.Table, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Table, e.Message)
}

// ValidationResult holds the results of table validation.
type ValidationResult struct {
	Errors   []*ValidationError
	Warnings []*ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// HasBreakingChanges returns true if there are any breaking changes.
func (r *ValidationResult) HasBreakingChanges() bool {
	for _, e := range r.Errors {
		if e.Breaking {
			return true
		}
	}
	for _, w := range r.Warnings {
		if w.Breaking {
			return true
		}
	}
	return false
}

// String returns a human-readable summary of the validation result.
func (r *ValidationResult) String() string {
	var sb strings.Builder
	if len(r.Errors) > 0 {
		sb.WriteString("Errors:\n")
		for _, e := range r.Errors {
			sb.WriteString("  - ")
			sb.WriteString(e.Error())
			if e.Breaking {
				sb.WriteString(" [BREAKING]")
			}
			sb.WriteString("\n")
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range r.Warnings {
			sb.WriteString("  - ")
			sb.WriteString(w.Error())
			if w.Breaking {
				sb.WriteString(" [BREAKING]")
			}
			sb.WriteString("\n")
		}
	}
	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}
	return sb.String()
}

func (r *ValidationResult) merge(other *ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// ValidateTable validates a single table definition for the given dialect.
//
// Errors are conditions that make the create table statement fail:
// unreadable records, duplicate columns, unmappable column types or too
// few nullability flags. Warnings report silent adjustments: primary key
// fallback and nullable flags ignored for the primary key.
func ValidateTable(t *Table, d string) *ValidationResult {
	result := &ValidationResult{}
	if t.Name == "" {
		result.Errors = append(result.Errors, &ValidationError{
			Table:   "<unnamed>",
			Message: "missing table name",
		})
	}
	members, err := ddlgen.FieldsOf(t.Schema)
	if err != nil {
		result.Errors = append(result.Errors, &ValidationError{
			Table:   t.Name,
			Message: err.Error(),
		})
		return result
	}

	// Check column types. Duplicate names are rejected by FieldsOf.
	for _, m := range members {
		if len(m.SchemaType) > 0 && m.SchemaType[d] != "" {
			continue
		}
		if _, err := ddlgen.MapType(m.Type, d); err != nil {
			result.Errors = append(result.Errors, &ValidationError{
				Table:   t.Name,
				Column:  m.Name,
				Message: err.Error(),
			})
		}
	}

	// Check for primary key.
	colNames := make(map[string]bool, len(members))
	for _, m := range members {
		colNames[m.Name] = true
	}
	pk := members[0].Name
	switch {
	case t.PrimaryKey == "":
		result.Warnings = append(result.Warnings, &ValidationError{
			Table:   t.Name,
			Message: fmt.Sprintf("no primary key requested, using first column %q", pk),
		})
	case !colNames[t.PrimaryKey]:
		result.Warnings = append(result.Warnings, &ValidationError{
			Table:   t.Name,
			Message: fmt.Sprintf("primary key %q not found, using first column %q", t.PrimaryKey, pk),
		})
	default:
		pk = t.PrimaryKey
	}

	// Check nullability flags.
	flags := t.Nullable
	if flags == nil {
		flags = ddlgen.Nullable(members)
	}
	if len(flags) < len(members) {
		result.Errors = append(result.Errors, &ValidationError{
			Table:   t.Name,
			Message: ddlgen.NewCountMismatchError(len(members), len(flags)).Error(),
		})
		return result
	}
	for i, m := range members {
		if m.Name == pk && flags[i] {
			result.Warnings = append(result.Warnings, &ValidationError{
				Table:   t.Name,
				Column:  m.Name,
				Message: "primary key column is always NOT NULL",
			})
			break
		}
	}
	return result
}

// ValidateSchema validates all tables for the given dialect.
func ValidateSchema(tables []*Table, d string) *ValidationResult {
	result := &ValidationResult{}
	tableNames := make(map[string]bool, len(tables))
	for _, t := range tables {
		if tableNames[t.Name] {
			result.Errors = append(result.Errors, &ValidationError{
				Table:   t.Name,
				Message: "duplicate table name",
			})
		}
		tableNames[t.Name] = true
		result.merge(ValidateTable(t, d))
	}
	return result
}

// ValidateDrop reports the tables that will be dropped. Dropping is a
// breaking change: it is an error unless allowed.
func ValidateDrop(tables []*Table, allow bool) *ValidationResult {
	result := &ValidationResult{}
	for _, t := range tables {
		err := &ValidationError{
			Table:    t.Name,
			Message:  "table will be dropped",
			Breaking: true,
		}
		if allow {
			result.Warnings = append(result.Warnings, err)
		} else {
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}
