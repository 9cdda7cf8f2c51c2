package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema/field"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	caps, ok := dialect.Lookup(dialect.SQLServer)
	require.True(t, ok)
	assert.True(t, caps.CreateDatabase)
	assert.Equal(t, "sqlserver", caps.Driver)

	caps, ok = dialect.Lookup(dialect.SQLite)
	require.True(t, ok)
	assert.False(t, caps.CreateDatabase)
	assert.Equal(t, "sqlite", caps.Driver)

	caps, ok = dialect.Lookup(dialect.Access)
	require.True(t, ok)
	assert.False(t, caps.CreateDatabase)
	assert.Empty(t, caps.Driver)

	_, ok = dialect.Lookup("postgres")
	assert.False(t, ok)
}

func TestCapabilities_ColumnType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dialect string
		typ     field.Type
		want    string
		ok      bool
	}{
		{dialect.SQLServer, field.TypeInt, "int", true},
		{dialect.SQLServer, field.TypeString, "nvarchar(max)", true},
		{dialect.SQLServer, field.TypeUUID, "uniqueidentifier", true},
		{dialect.SQLite, field.TypeInt64, "integer", true},
		{dialect.SQLite, field.TypeString, "text", true},
		{dialect.SQLite, field.TypeUint64, "", false},
		{dialect.Access, field.TypeInt, "int", true},
		{dialect.Access, field.TypeString, "text", true},
		{dialect.Access, field.TypeInt64, "", false},
		{dialect.Access, field.TypeJSON, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.dialect+"/"+tt.typ.String(), func(t *testing.T) {
			t.Parallel()
			caps, ok := dialect.Lookup(tt.dialect)
			require.True(t, ok)
			got, ok := caps.ColumnType(tt.typ)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"sqlserver", dialect.SQLServer, true},
		{"MSSQL", dialect.SQLServer, true},
		{" SQLite ", dialect.SQLite, true},
		{"sqlite3", dialect.SQLite, true},
		{"Access", dialect.Access, true},
		{"msaccess2003", dialect.Access, true},
		{"postgres", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := dialect.Parse(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"access", "sqlite", "sqlserver"}, dialect.Names())
}

// Every dialect maps the types needed by the common record shapes.
func TestCommonTypesMapped(t *testing.T) {
	t.Parallel()
	common := []field.Type{field.TypeBool, field.TypeInt, field.TypeString, field.TypeFloat64, field.TypeTime}
	for _, name := range dialect.Names() {
		caps, _ := dialect.Lookup(name)
		for _, typ := range common {
			_, ok := caps.ColumnType(typ)
			assert.True(t, ok, "%s: %s", name, typ)
		}
	}
}
