package field_test

import (
	"testing"

	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	fd := field.Int("age").
		Comment("comment").
		Descriptor()
	assert.Equal(t, "age", fd.Name)
	assert.Equal(t, field.TypeInt, fd.Info.Type)
	assert.Equal(t, "comment", fd.Comment)
	assert.False(t, fd.Nillable)
	assert.NoError(t, fd.Err)

	fd = field.Int("age").
		Nillable().
		SchemaType(map[string]string{
			dialect.SQLite:    "numeric",
			dialect.SQLServer: "int_type",
		}).
		Descriptor()
	assert.True(t, fd.Nillable)
	assert.Equal(t, "numeric", fd.SchemaType[dialect.SQLite])
	assert.Equal(t, "int_type", fd.SchemaType[dialect.SQLServer])

	assert.Equal(t, field.TypeInt8, field.Int8("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeInt16, field.Int16("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeInt32, field.Int32("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeInt64, field.Int64("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeUint, field.Uint("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeUint8, field.Uint8("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeUint16, field.Uint16("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeUint32, field.Uint32("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeUint64, field.Uint64("age").Descriptor().Info.Type)
}

func TestFloat(t *testing.T) {
	fd := field.Float("age").Comment("comment").Descriptor()
	assert.Equal(t, "age", fd.Name)
	assert.Equal(t, field.TypeFloat64, fd.Info.Type)
	assert.Equal(t, field.TypeFloat32, field.Float32("age").Descriptor().Info.Type)
	assert.Equal(t, field.TypeDecimal, field.Decimal("amount").Descriptor().Info.Type)
}

func TestString(t *testing.T) {
	fd := field.String("name").Descriptor()
	assert.Equal(t, field.TypeString, fd.Info.Type)
	assert.Equal(t, "string", fd.Info.String())

	fd = field.Text("bio").Nillable().Descriptor()
	assert.Equal(t, field.TypeString, fd.Info.Type)
	assert.True(t, fd.Nillable)
}

func TestEnum(t *testing.T) {
	fd := field.Enum("status").Values("active", "inactive").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, field.TypeEnum, fd.Info.Type)
	assert.Equal(t, []string{"active", "inactive"}, fd.Enums)

	fd = field.Enum("status").Values("active", "").Descriptor()
	assert.Error(t, fd.Err)

	fd = field.String("name").Values("a").Descriptor()
	assert.EqualError(t, fd.Err, `field: Values is only allowed on enum field "name"`)
}

func TestOtherTypes(t *testing.T) {
	assert.Equal(t, field.TypeBool, field.Bool("active").Descriptor().Info.Type)
	assert.Equal(t, field.TypeTime, field.Time("created_at").Descriptor().Info.Type)
	assert.Equal(t, field.TypeJSON, field.JSON("meta").Descriptor().Info.Type)
	assert.Equal(t, field.TypeUUID, field.UUID("id").Descriptor().Info.Type)
	assert.Equal(t, field.TypeBytes, field.Bytes("data").Descriptor().Info.Type)
}

func TestNew(t *testing.T) {
	fd := field.New("", field.TypeInt).Descriptor()
	assert.EqualError(t, fd.Err, "field: missing field name")

	fd = field.New("id", field.TypeInvalid).Descriptor()
	assert.EqualError(t, fd.Err, `field: invalid type for field "id"`)

	fd = field.New("id", field.TypeInt64).Descriptor()
	assert.NoError(t, fd.Err)
	assert.True(t, fd.Info.Valid())
}

func TestSchemaType_Copy(t *testing.T) {
	types := map[string]string{dialect.SQLite: "varchar(10)"}
	fd := field.String("code").SchemaType(types).Descriptor()
	types[dialect.SQLite] = "changed"
	assert.Equal(t, "varchar(10)", fd.SchemaType[dialect.SQLite])
}

func TestParseType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want field.Type
	}{
		{"int", field.TypeInt},
		{"INT64", field.TypeInt64},
		{" string ", field.TypeString},
		{"text", field.TypeString},
		{"integer", field.TypeInt},
		{"boolean", field.TypeBool},
		{"datetime", field.TypeTime},
		{"date-time", field.TypeTime},
		{"floating-point", field.TypeFloat64},
		{"FLOATING", field.TypeFloat64},
		{"double", field.TypeFloat64},
		{"float32", field.TypeFloat32},
		{"uuid", field.TypeUUID},
		{"guid", field.TypeUUID},
		{"decimal", field.TypeDecimal},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := field.ParseType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := field.ParseType("invalid")
	assert.EqualError(t, err, `field: unknown type "invalid"`)
	_, err = field.ParseType("complex128")
	assert.Error(t, err)
}

func TestType(t *testing.T) {
	assert.Equal(t, "invalid", field.TypeInvalid.String())
	assert.Equal(t, "invalid", field.Type(200).String())
	assert.False(t, field.TypeInvalid.Valid())
	assert.True(t, field.TypeUint8.Integer())
	assert.False(t, field.TypeFloat64.Integer())
	assert.True(t, field.TypeFloat64.Numeric())
	assert.False(t, field.TypeString.Numeric())
	for typ := field.TypeBool; typ <= field.TypeFloat64; typ++ {
		parsed, err := field.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
}
