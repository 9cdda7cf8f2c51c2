package ddlgen_test

import (
	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/schema/field"
)

// Pair has the two fields used by most statement tests.
type Pair struct{ ddlgen.Schema }

func (Pair) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Int("id"),
		field.Text("name"),
	}
}

// Account mixes in audit fields before its own fields.
type Account struct{ ddlgen.Schema }

type audit struct{}

func (audit) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Time("created_at"),
		field.Time("updated_at").Nillable(),
	}
}

func (Account) Mixin() []ddlgen.Mixin {
	return []ddlgen.Mixin{audit{}}
}

func (Account) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.UUID("id"),
		field.String("email"),
		field.Decimal("balance").
			SchemaType(map[string]string{"sqlserver": "money"}),
		field.Bool("active").Nillable(),
	}
}

// Empty has no fields.
type Empty struct{ ddlgen.Schema }

// Event uses a type not mapped by every dialect.
type Event struct{ ddlgen.Schema }

func (Event) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Int64("id"),
		field.JSON("payload"),
	}
}
