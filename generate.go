package ddlgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/ddlgen/dialect"
)

// File allocation used by CreateDatabase. The values are fixed.
const (
	dataFileSize    = "5MB"
	dataFileMaxSize = "20MB"
	dataFileGrowth  = "20MB"
	logFileSize     = "2MB"
	logFileMaxSize  = "10MB"
	logFileGrowth   = "1MB"
)

// Column is a record field mapped to a dialect column type.
type Column struct {
	Type string // column type, e.g. "nvarchar(max)".
	Name string // column name.
}

// PropertiesInfo returns the columns of the record under the given dialect,
// in the order returned by FieldsOf. It is recomputed on every call.
func PropertiesInfo(s Interface, d string) ([]Column, error) {
	members, err := FieldsOf(s)
	if err != nil {
		return nil, err
	}
	columns := make([]Column, 0, len(members))
	for _, m := range members {
		ct, err := columnType(m, d)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", m.Name, err)
		}
		columns = append(columns, Column{Type: ct, Name: m.Name})
	}
	return columns, nil
}

// Op is a statement generation operation. The set of operations is
// closed: CreateDatabase, CreateTable and DropTable.
type Op interface {
	fmt.Stringer
	build(s Interface, d string) (string, error)
}

// Generate builds the statement of the given operation for a record and
// dialect. The record is only consulted by operations that need it, and
// may be nil for CreateDatabase and DropTable.
//
//	stmt, err := ddlgen.Generate(User{}, dialect.SQLite, ddlgen.CreateTable{
//		Table:      "users",
//		PrimaryKey: "id",
//		Nullable:   []bool{false, true},
//	})
func Generate(s Interface, d string, op Op) (string, error) {
	if op == nil {
		return "", errors.New("ddlgen: nil operation")
	}
	return op.build(s, d)
}

// CreateDatabase creates a database with one data file and one log file,
// both named after the database. Only dialects with the CreateDatabase
// capability (sqlserver) support it.
type CreateDatabase struct {
	Name     string // database name.
	DataFile string // location of the primary data file.
	LogFile  string // location of the log file.
}

// String implements the fmt.Stringer interface.
func (CreateDatabase) String() string { return "create database" }

func (op CreateDatabase) build(_ Interface, d string) (string, error) {
	caps, ok := dialect.Lookup(d)
	if !ok {
		return "", unsupportedDialect(d)
	}
	if !caps.CreateDatabase {
		return "", NewUnsupportedOperationError(op.String(), d)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "create database %s ", op.Name)
	fmt.Fprintf(&b, "on(name=%s,filename=%s,size=%s,maxsize=%s,filegrowth=%s) ",
		op.Name, op.DataFile, dataFileSize, dataFileMaxSize, dataFileGrowth)
	fmt.Fprintf(&b, "log on(name=%s,filename=%s,size=%s,maxsize=%s,filegrowth=%s)",
		op.Name, op.LogFile, logFileSize, logFileMaxSize, logFileGrowth)
	return b.String(), nil
}

// CreateTable creates a table for the record.
//
// PrimaryKey names the primary key field. If no field has that name, the
// first field is used. Nullable holds one flag per field, in field order;
// true allows NULL values. The primary key column is always NOT NULL.
// Flags beyond the field count are ignored.
type CreateTable struct {
	Table      string
	PrimaryKey string
	Nullable   []bool
}

// String implements the fmt.Stringer interface.
func (CreateTable) String() string { return "create table" }

func (op CreateTable) build(s Interface, d string) (string, error) {
	columns, err := PropertiesInfo(s, d)
	if err != nil {
		return "", err
	}
	if len(op.Nullable) < len(columns) {
		return "", NewCountMismatchError(len(columns), len(op.Nullable))
	}
	pk := primaryKey(columns, op.PrimaryKey)
	var b strings.Builder
	b.WriteString("create table ")
	b.WriteString(op.Table)
	b.WriteString(" (")
	for i, c := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.Name)
		b.WriteByte(' ')
		b.WriteString(c.Type)
		switch {
		case i == pk:
			b.WriteString(" primary key not null")
		case !op.Nullable[i]:
			b.WriteString(" not null")
		}
	}
	b.WriteString(");")
	return b.String(), nil
}

// primaryKey returns the index of the first column named name, or 0.
func primaryKey(columns []Column, name string) int {
	for i, c := range columns {
		if c.Name == name {
			return i
		}
	}
	return 0
}

// DropTable drops a table. It never fails.
type DropTable struct {
	Table string
}

// String implements the fmt.Stringer interface.
func (DropTable) String() string { return "drop table" }

func (op DropTable) build(Interface, string) (string, error) {
	return "drop table " + op.Table, nil
}
