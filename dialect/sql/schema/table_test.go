package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/compiler/load"
)

func TestNewTable(t *testing.T) {
	t.Parallel()
	tbl := NewTable("", user{})
	assert.Equal(t, "users", tbl.Name)
	tbl = NewTable("people", user{}).SetPrimaryKey("id").SetNullable(false, false)
	assert.Equal(t, "people", tbl.Name)
	assert.Equal(t, "id", tbl.PrimaryKey)
	assert.Equal(t, []bool{false, false}, tbl.Nullable)
}

func TestTable_createOp(t *testing.T) {
	t.Parallel()
	op, err := NewTable("users", user{}).SetPrimaryKey("id").createOp()
	require.NoError(t, err)
	assert.Equal(t, ddlgen.CreateTable{Table: "users", PrimaryKey: "id", Nullable: []bool{false, true}}, op)

	op, err = NewTable("users", user{}).SetNullable(true, false).createOp()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, op.Nullable)

	_, err = NewTable("empty", nil).createOp()
	require.Error(t, err)
	assert.True(t, ddlgen.IsIntrospectionError(err))
}

func TestFromLoaded(t *testing.T) {
	t.Parallel()
	schemas := []*load.Schema{
		{
			Name:       "Order",
			Table:      "orders",
			PrimaryKey: "id",
			Fields: []*load.Field{
				{Name: "id", Type: "int64"},
				{Name: "note", Type: "string", Nillable: true},
			},
		},
	}
	tables := FromLoaded(schemas...)
	require.Len(t, tables, 1)
	assert.Equal(t, "orders", tables[0].Name)
	assert.Equal(t, "id", tables[0].PrimaryKey)
	assert.Equal(t, []bool{false, true}, tables[0].Nullable)

	stmt, err := ddlgen.Generate(tables[0].Schema, "sqlite", ddlgen.CreateTable{
		Table:      tables[0].Name,
		PrimaryKey: tables[0].PrimaryKey,
		Nullable:   tables[0].Nullable,
	})
	require.NoError(t, err)
	assert.Equal(t, "create table orders (id integer primary key not null,note text);", stmt)
}
