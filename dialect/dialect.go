package dialect

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/syssam/ddlgen/schema/field"
)

// Dialect names for supported database systems.
const (
	SQLServer = "sqlserver"
	SQLite    = "sqlite"
	Access    = "access"
)

// Capabilities describes what a dialect supports and how canonical
// field types are spelled in its column definitions.
type Capabilities struct {
	// Name is the dialect name, e.g. "sqlserver".
	Name string
	// Description is a human readable name of the database system.
	Description string
	// CreateDatabase reports if databases can be created with SQL text.
	CreateDatabase bool
	// Driver is the database/sql driver name. Empty when no driver exists.
	Driver string
	// Aliases are alternate names accepted by Parse.
	Aliases []string
	// ColumnTypes maps canonical field types to column types. A missing
	// entry means the type cannot be stored in this dialect.
	ColumnTypes map[field.Type]string
}

// ColumnType returns the column type for the given canonical type.
func (c *Capabilities) ColumnType(t field.Type) (string, bool) {
	ct, ok := c.ColumnTypes[t]
	return ct, ok
}

var dialects = map[string]*Capabilities{
	SQLServer: {
		Name:           SQLServer,
		Description:    "Microsoft SQL Server",
		CreateDatabase: true,
		Driver:         "sqlserver",
		Aliases:        []string{"mssql", "sql-server", "server"},
		ColumnTypes: map[field.Type]string{
			field.TypeBool:    "bit",
			field.TypeInt8:    "smallint",
			field.TypeInt16:   "smallint",
			field.TypeInt32:   "int",
			field.TypeInt:     "int",
			field.TypeInt64:   "bigint",
			field.TypeUint8:   "tinyint",
			field.TypeUint16:  "int",
			field.TypeUint32:  "bigint",
			field.TypeUint:    "bigint",
			field.TypeUint64:  "decimal(20,0)",
			field.TypeFloat32: "real",
			field.TypeFloat64: "float",
			field.TypeDecimal: "decimal(18,4)",
			field.TypeString:  "nvarchar(max)",
			field.TypeEnum:    "nvarchar(255)",
			field.TypeBytes:   "varbinary(max)",
			field.TypeTime:    "datetime2",
			field.TypeUUID:    "uniqueidentifier",
			field.TypeJSON:    "nvarchar(max)",
		},
	},
	SQLite: {
		Name:        SQLite,
		Description: "SQLite",
		Driver:      "sqlite",
		Aliases:     []string{"sqlite3"},
		ColumnTypes: map[field.Type]string{
			field.TypeBool:    "boolean",
			field.TypeInt8:    "integer",
			field.TypeInt16:   "integer",
			field.TypeInt32:   "integer",
			field.TypeInt:     "integer",
			field.TypeInt64:   "integer",
			field.TypeUint8:   "integer",
			field.TypeUint16:  "integer",
			field.TypeUint32:  "integer",
			field.TypeUint:    "integer",
			field.TypeFloat32: "real",
			field.TypeFloat64: "real",
			field.TypeDecimal: "numeric",
			field.TypeString:  "text",
			field.TypeEnum:    "text",
			field.TypeBytes:   "blob",
			field.TypeTime:    "datetime",
			field.TypeUUID:    "text",
			field.TypeJSON:    "json",
		},
	},
	Access: {
		Name:        Access,
		Description: "Microsoft Access 2003",
		Aliases:     []string{"msaccess", "msaccess2003", "jet"},
		ColumnTypes: map[field.Type]string{
			field.TypeBool:    "bit",
			field.TypeInt8:    "short",
			field.TypeInt16:   "short",
			field.TypeInt32:   "int",
			field.TypeInt:     "int",
			field.TypeUint8:   "byte",
			field.TypeUint16:  "int",
			field.TypeFloat32: "real",
			field.TypeFloat64: "float",
			field.TypeDecimal: "currency",
			field.TypeString:  "text",
			field.TypeEnum:    "text",
			field.TypeBytes:   "longbinary",
			field.TypeTime:    "datetime",
			field.TypeUUID:    "guid",
		},
	},
}

// Lookup returns the capabilities of the named dialect.
func Lookup(name string) (*Capabilities, bool) {
	c, ok := dialects[name]
	return c, ok
}

// Parse resolves a user supplied dialect name or alias. Matching is case-insensitive.
func Parse(name string) (string, bool) {
	s := cases.Fold().String(strings.TrimSpace(name))
	if _, ok := dialects[s]; ok {
		return s, true
	}
	for _, c := range dialects {
		if slices.Contains(c.Aliases, s) {
			return c.Name, true
		}
	}
	return "", false
}

// Names returns the supported dialect names (sorted).
func Names() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
