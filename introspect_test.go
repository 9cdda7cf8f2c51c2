package ddlgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/schema/field"
)

func TestFieldsOf(t *testing.T) {
	t.Parallel()
	members, err := ddlgen.FieldsOf(Pair{})
	require.NoError(t, err)
	assert.Equal(t, []ddlgen.Member{
		{Name: "id", Type: "int"},
		{Name: "name", Type: "string"},
	}, members)

	again, err := ddlgen.FieldsOf(&Pair{})
	require.NoError(t, err)
	assert.Equal(t, members, again, "ordering must be stable across calls")
}

func TestFieldsOf_Mixin(t *testing.T) {
	t.Parallel()
	members, err := ddlgen.FieldsOf(Account{})
	require.NoError(t, err)
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"created_at", "updated_at", "id", "email", "balance", "active"}, names)
	assert.Equal(t, []bool{false, true, false, false, false, true}, ddlgen.Nullable(members))
	assert.Equal(t, map[string]string{"sqlserver": "money"}, members[4].SchemaType)
}

type panicFields struct{ ddlgen.Schema }

func (panicFields) Fields() []ddlgen.Field { panic("boom") }

type panicMixin struct{ ddlgen.Schema }

func (panicMixin) Mixin() []ddlgen.Mixin { panic("boom") }

type nilField struct{ ddlgen.Schema }

func (nilField) Fields() []ddlgen.Field { return []ddlgen.Field{nil} }

type nilMixin struct{ ddlgen.Schema }

func (nilMixin) Mixin() []ddlgen.Mixin { return []ddlgen.Mixin{nil} }

type badField struct{ ddlgen.Schema }

func (badField) Fields() []ddlgen.Field {
	return []ddlgen.Field{field.Int("status").Values("a")}
}

type unnamed struct{ ddlgen.Schema }

func (unnamed) Fields() []ddlgen.Field {
	return []ddlgen.Field{field.Int("")}
}

type nilDescriptor struct{}

func (nilDescriptor) Descriptor() *field.Descriptor { return nil }

type typedNil struct{ ddlgen.Schema }

func (typedNil) Fields() []ddlgen.Field {
	var b *field.Builder
	return []ddlgen.Field{nilDescriptor{}, b}
}

type duplicated struct{ ddlgen.Schema }

func (duplicated) Fields() []ddlgen.Field {
	return []ddlgen.Field{field.Int("id"), field.String("name"), field.Text("name")}
}

type shadowsMixin struct{ ddlgen.Schema }

func (shadowsMixin) Mixin() []ddlgen.Mixin { return []ddlgen.Mixin{audit{}} }

func (shadowsMixin) Fields() []ddlgen.Field {
	return []ddlgen.Field{field.Int("id"), field.Time("updated_at")}
}

type missingInfo struct{ ddlgen.Schema }

type infoless struct{}

func (infoless) Descriptor() *field.Descriptor { return &field.Descriptor{Name: "x"} }

func (missingInfo) Fields() []ddlgen.Field { return []ddlgen.Field{infoless{}} }

func TestFieldsOf_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		schema   ddlgen.Interface
		contains string
	}{
		{"nil", nil, "nil record"},
		{"empty", Empty{}, "no fields"},
		{"fields panic", panicFields{}, "Fields panics"},
		{"mixin panic", panicMixin{}, "Mixin panics"},
		{"nil field", nilField{}, "field 0 is nil"},
		{"nil mixin", nilMixin{}, "mixin 0 is nil"},
		{"descriptor error", badField{}, "Values is only allowed"},
		{"missing name", unnamed{}, "missing field name"},
		{"nil descriptor", typedNil{}, "missing descriptor"},
		{"missing type info", missingInfo{}, "missing type info"},
		{"duplicate field", duplicated{}, `duplicate field "name"`},
		{"field shadows mixin", shadowsMixin{}, `duplicate field "updated_at"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			members, err := ddlgen.FieldsOf(tt.schema)
			require.Error(t, err)
			assert.Nil(t, members)
			assert.True(t, ddlgen.IsIntrospectionError(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNullable(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ddlgen.Nullable(nil))
	assert.Equal(t, []bool{true, false}, ddlgen.Nullable([]ddlgen.Member{
		{Name: "a", Nillable: true},
		{Name: "b"},
	}))
}
