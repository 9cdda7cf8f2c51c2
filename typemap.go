package ddlgen

import (
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema/field"
)

// MapType converts a canonical type name (e.g. "int", "text", "boolean")
// into the column type expected by the given dialect. It fails with an
// UnsupportedTypeError if the type has no mapping in the dialect.
func MapType(typeName, d string) (string, error) {
	t, err := field.ParseType(typeName)
	if err != nil {
		if _, ok := dialect.Lookup(d); !ok {
			return "", unsupportedDialect(d)
		}
		return "", NewUnsupportedTypeError(typeName, d)
	}
	return ColumnType(t, d)
}

// ColumnType returns the column type of t in the given dialect.
func ColumnType(t field.Type, d string) (string, error) {
	caps, ok := dialect.Lookup(d)
	if !ok {
		return "", unsupportedDialect(d)
	}
	ct, ok := caps.ColumnType(t)
	if !ok {
		return "", NewUnsupportedTypeError(t.String(), d)
	}
	return ct, nil
}

// columnType resolves the column type of a member, honoring its
// per-dialect override.
func columnType(m Member, d string) (string, error) {
	if ct := m.SchemaType[d]; ct != "" {
		if _, ok := dialect.Lookup(d); !ok {
			return "", unsupportedDialect(d)
		}
		return ct, nil
	}
	return MapType(m.Type, d)
}
