package schema

import (
	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/compiler/load"
)

// Table describes a table created from a record.
type Table struct {
	// Name of the table.
	Name string
	// Schema is the record describing the table columns.
	Schema ddlgen.Interface
	// PrimaryKey is the requested primary key column. The first column is
	// used if no column has this name.
	PrimaryKey string
	// Nullable holds one flag per column. Nil means the flags are taken
	// from the field descriptors.
	Nullable []bool
}

// NewTable returns a new table for the given record. An empty name
// defaults to ddlgen.TableName.
func NewTable(name string, s ddlgen.Interface) *Table {
	if name == "" && s != nil {
		name = ddlgen.TableName(s)
	}
	return &Table{Name: name, Schema: s}
}

// SetPrimaryKey sets the requested primary key column.
func (t *Table) SetPrimaryKey(name string) *Table {
	t.PrimaryKey = name
	return t
}

// SetNullable sets the nullability flags of the table columns.
func (t *Table) SetNullable(flags ...bool) *Table {
	t.Nullable = flags
	return t
}

// FromLoaded returns the tables of the given loaded schemas.
func FromLoaded(schemas ...*load.Schema) []*Table {
	tables := make([]*Table, 0, len(schemas))
	for _, s := range schemas {
		tables = append(tables, &Table{
			Name:       s.TableName(),
			Schema:     s.Record(),
			PrimaryKey: s.PrimaryKey,
			Nullable:   s.Nullable(),
		})
	}
	return tables
}

// nullable returns the nullability flags of the table.
func (t *Table) nullable() ([]bool, error) {
	if t.Nullable != nil {
		return t.Nullable, nil
	}
	members, err := ddlgen.FieldsOf(t.Schema)
	if err != nil {
		return nil, err
	}
	return ddlgen.Nullable(members), nil
}

// createOp returns the create table operation of the table.
func (t *Table) createOp() (ddlgen.CreateTable, error) {
	flags, err := t.nullable()
	if err != nil {
		return ddlgen.CreateTable{}, err
	}
	return ddlgen.CreateTable{Table: t.Name, PrimaryKey: t.PrimaryKey, Nullable: flags}, nil
}
