package ddlgen

import (
	"reflect"

	"github.com/go-openapi/inflect"

	"github.com/syssam/ddlgen/schema/field"
)

type (
	// Interface is the capability consumed by the generator: a record type
	// that describes its fields. Embed Schema to get default implementations.
	//
	//	type User struct {
	//		ddlgen.Schema
	//	}
	//
	//	func (User) Fields() []ddlgen.Field {
	//		return []ddlgen.Field{
	//			field.Int("id"),
	//			field.String("name"),
	//		}
	//	}
	Interface interface {
		// Fields returns the fields of the record in declaration order.
		Fields() []Field
		// Mixin returns reusable field groups placed before the record's own fields.
		Mixin() []Mixin
	}

	// A Field describes a single record field. It is implemented by the
	// builders in the schema/field package.
	Field interface {
		Descriptor() *field.Descriptor
	}

	// A Mixin is a reusable group of fields shared by multiple records.
	Mixin interface {
		Fields() []Field
	}

	// Schema is the default implementation for the schema Interface.
	// It can be embedded in record definitions.
	Schema struct{}
)

// Fields of the schema.
func (Schema) Fields() []Field { return nil }

// Mixin of the schema.
func (Schema) Mixin() []Mixin { return nil }

var _ Interface = (*Schema)(nil)

// TableName returns the table name for a record. Records implementing
// Table() string choose their own name, otherwise the type name is
// pluralized and converted to snake case (User -> users, OrderItem -> order_items).
func TableName(s Interface) string {
	if t, ok := s.(interface{ Table() string }); ok {
		if name := t.Table(); name != "" {
			return name
		}
	}
	name := typeName(s)
	if name == "" {
		return ""
	}
	return inflect.Underscore(inflect.Pluralize(name))
}

// typeName returns the name of the record type, without pointers.
func typeName(s Interface) string {
	if s == nil {
		return ""
	}
	return indirect(reflect.TypeOf(s)).Name()
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
