package ddlgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/dialect"
)

func TestPropertiesInfo(t *testing.T) {
	t.Parallel()
	columns, err := ddlgen.PropertiesInfo(Account{}, dialect.SQLServer)
	require.NoError(t, err)
	assert.Equal(t, []ddlgen.Column{
		{Type: "datetime2", Name: "created_at"},
		{Type: "datetime2", Name: "updated_at"},
		{Type: "uniqueidentifier", Name: "id"},
		{Type: "nvarchar(max)", Name: "email"},
		{Type: "money", Name: "balance"},
		{Type: "bit", Name: "active"},
	}, columns)

	columns, err = ddlgen.PropertiesInfo(Account{}, dialect.SQLite)
	require.NoError(t, err)
	assert.Equal(t, "numeric", columns[4].Type, "override applies to sqlserver only")
}

func TestPropertiesInfo_OrderPreservation(t *testing.T) {
	t.Parallel()
	for _, s := range []ddlgen.Interface{Pair{}, Account{}} {
		members, err := ddlgen.FieldsOf(s)
		require.NoError(t, err)
		for _, d := range dialect.Names() {
			columns, err := ddlgen.PropertiesInfo(s, d)
			require.NoError(t, err)
			require.Len(t, columns, len(members))
			for i := range members {
				assert.Equal(t, members[i].Name, columns[i].Name)
			}
		}
	}
}

func TestPropertiesInfo_Errors(t *testing.T) {
	t.Parallel()
	_, err := ddlgen.PropertiesInfo(Event{}, dialect.Access)
	require.Error(t, err)
	assert.True(t, ddlgen.IsUnsupportedType(err))
	assert.Contains(t, err.Error(), `field "id"`)

	_, err = ddlgen.PropertiesInfo(Empty{}, dialect.SQLite)
	assert.True(t, ddlgen.IsIntrospectionError(err))

	_, err = ddlgen.PropertiesInfo(Pair{}, "oracle")
	assert.ErrorIs(t, err, ddlgen.ErrUnsupportedDialect)
}

func TestGenerate_CreateTable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		dialect string
		op      ddlgen.CreateTable
		want    string
	}{
		{
			name:    "primary key fallback",
			dialect: dialect.Access,
			op:      ddlgen.CreateTable{Table: "T", PrimaryKey: "nonexistent_field", Nullable: []bool{false, false}},
			want:    "create table T (id int primary key not null,name text not null);",
		},
		{
			name:    "explicit primary key",
			dialect: dialect.Access,
			op:      ddlgen.CreateTable{Table: "T", PrimaryKey: "name", Nullable: []bool{true, false}},
			want:    "create table T (id int,name text primary key not null);",
		},
		{
			name:    "primary key ignores nullable flag",
			dialect: dialect.Access,
			op:      ddlgen.CreateTable{Table: "T", PrimaryKey: "id", Nullable: []bool{true, true}},
			want:    "create table T (id int primary key not null,name text);",
		},
		{
			name:    "extra flags ignored",
			dialect: dialect.SQLite,
			op:      ddlgen.CreateTable{Table: "pairs", PrimaryKey: "id", Nullable: []bool{false, false, true}},
			want:    "create table pairs (id integer primary key not null,name text not null);",
		},
		{
			name:    "sqlserver",
			dialect: dialect.SQLServer,
			op:      ddlgen.CreateTable{Table: "pairs", PrimaryKey: "id", Nullable: []bool{false, true}},
			want:    "create table pairs (id int primary key not null,name nvarchar(max));",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ddlgen.Generate(Pair{}, tt.dialect, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_CreateTable_CountMismatch(t *testing.T) {
	t.Parallel()
	_, err := ddlgen.Generate(Pair{}, dialect.Access, ddlgen.CreateTable{Table: "T", PrimaryKey: "id", Nullable: []bool{true}})
	require.Error(t, err)
	assert.True(t, ddlgen.IsCountMismatch(err))
	assert.EqualError(t, err, "ddlgen: 1 nullability flags given for 2 fields")

	_, err = ddlgen.Generate(Pair{}, dialect.Access, ddlgen.CreateTable{Table: "T"})
	assert.True(t, ddlgen.IsCountMismatch(err))
}

func TestGenerate_CreateTable_Errors(t *testing.T) {
	t.Parallel()
	_, err := ddlgen.Generate(Event{}, dialect.Access, ddlgen.CreateTable{Table: "events", Nullable: []bool{false, false}})
	assert.True(t, ddlgen.IsUnsupportedType(err))

	_, err = ddlgen.Generate(nil, dialect.Access, ddlgen.CreateTable{Table: "T"})
	assert.True(t, ddlgen.IsIntrospectionError(err))

	stmt, err := ddlgen.Generate(duplicated{}, dialect.SQLite, ddlgen.CreateTable{Table: "d", PrimaryKey: "name", Nullable: []bool{true, false, true}})
	require.Error(t, err)
	assert.True(t, ddlgen.IsIntrospectionError(err))
	assert.Empty(t, stmt)
}

func TestGenerate_CreateDatabase(t *testing.T) {
	t.Parallel()
	op := ddlgen.CreateDatabase{Name: "shop", DataFile: `C:\data\shop.mdf`, LogFile: `C:\data\shop.ldf`}
	got, err := ddlgen.Generate(nil, dialect.SQLServer, op)
	require.NoError(t, err)
	assert.Equal(t,
		`create database shop on(name=shop,filename=C:\data\shop.mdf,size=5MB,maxsize=20MB,filegrowth=20MB) `+
			`log on(name=shop,filename=C:\data\shop.ldf,size=2MB,maxsize=10MB,filegrowth=1MB)`,
		got,
	)

	for _, d := range []string{dialect.SQLite, dialect.Access} {
		_, err := ddlgen.Generate(Pair{}, d, op)
		require.Error(t, err, d)
		assert.True(t, ddlgen.IsUnsupportedOperation(err), d)
	}

	_, err = ddlgen.Generate(nil, "oracle", op)
	assert.ErrorIs(t, err, ddlgen.ErrUnsupportedDialect)
}

func TestGenerate_DropTable(t *testing.T) {
	t.Parallel()
	for _, d := range []string{dialect.SQLServer, dialect.SQLite, dialect.Access, "unknown"} {
		for _, s := range []ddlgen.Interface{nil, Pair{}, Empty{}} {
			got, err := ddlgen.Generate(s, d, ddlgen.DropTable{Table: "T"})
			require.NoError(t, err)
			assert.Equal(t, "drop table T", got)
		}
	}
}

func TestGenerate_NilOp(t *testing.T) {
	t.Parallel()
	_, err := ddlgen.Generate(Pair{}, dialect.SQLite, nil)
	assert.Error(t, err)
}

func TestGenerate_Idempotent(t *testing.T) {
	t.Parallel()
	ops := []ddlgen.Op{
		ddlgen.CreateDatabase{Name: "db", DataFile: "db.mdf", LogFile: "db.ldf"},
		ddlgen.CreateTable{Table: "accounts", PrimaryKey: "id", Nullable: []bool{false, true, false, false, false, true}},
		ddlgen.DropTable{Table: "accounts"},
	}
	for _, op := range ops {
		first, err := ddlgen.Generate(Account{}, dialect.SQLServer, op)
		require.NoError(t, err, op.String())
		second, err := ddlgen.Generate(Account{}, dialect.SQLServer, op)
		require.NoError(t, err, op.String())
		assert.Equal(t, first, second, op.String())
	}
}
