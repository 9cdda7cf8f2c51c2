package schema

import (
	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/schema/field"
)

type user struct{ ddlgen.Schema }

func (user) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Int("id"),
		field.Text("name").Nillable(),
	}
}

type post struct{ ddlgen.Schema }

func (post) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Int64("id"),
		field.Int("user_id"),
		field.String("title"),
		field.Time("published_at").Nillable(),
	}
}

// event has a json column, not mapped by access.
type event struct{ ddlgen.Schema }

func (event) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Int64("id"),
		field.JSON("payload"),
	}
}

// dup declares the same column twice.
type dup struct{ ddlgen.Schema }

func (dup) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Int("id"),
		field.Int("id"),
	}
}
