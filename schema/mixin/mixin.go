package mixin

import (
	"maps"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/schema/field"
)

// Schema is the default implementation for the ddlgen.Mixin interface.
// It should be embedded in all custom mixin definitions.
//
// Example:
//
//	type MyMixin struct {
//	    mixin.Schema
//	}
//
//	func (MyMixin) Fields() []ddlgen.Field {
//	    return []ddlgen.Field{
//	        field.String("custom_field"),
//	    }
//	}
type Schema struct{}

// Fields returns the fields of the mixin.
// Override this method to add custom fields.
func (Schema) Fields() []ddlgen.Field { return nil }

// schema mixin must implement `Mixin` interface.
var _ ddlgen.Mixin = (*Schema)(nil)

// =============================================================================
// Built-in Mixins
// =============================================================================

// ID adds an integer id field, meant to be used as the primary key.
type ID struct {
	Schema
}

// Fields returns the id field.
func (ID) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Int("id").
			Comment("Primary key"),
	}
}

// Time adds created_at and updated_at timestamp fields to a schema.
//
// Example:
//
//	func (User) Mixin() []ddlgen.Mixin {
//	    return []ddlgen.Mixin{
//	        mixin.Time{},
//	    }
//	}
type Time struct {
	Schema
}

// Fields returns the time tracking fields.
func (Time) Fields() []ddlgen.Field {
	return append(CreateTime{}.Fields(), UpdateTime{}.Fields()...)
}

// CreateTime adds only created_at timestamp field to a schema.
type CreateTime struct {
	Schema
}

// Fields returns the created_at field.
func (CreateTime) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Time("created_at").
			Comment("Timestamp when the row was created"),
	}
}

// UpdateTime adds only updated_at timestamp field to a schema.
type UpdateTime struct {
	Schema
}

// Fields returns the updated_at field.
func (UpdateTime) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Time("updated_at").
			Comment("Timestamp when the row was last updated"),
	}
}

// SoftDelete adds a nullable deleted_at field for soft deletion support.
type SoftDelete struct {
	Schema
}

// Fields returns the soft delete field.
func (SoftDelete) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.Time("deleted_at").
			Nillable().
			Comment("Timestamp when the row was soft deleted (NULL means not deleted)"),
	}
}

// TenantID adds a tenant_id field for multi-tenant tables.
type TenantID struct {
	Schema
}

// Fields returns the tenant_id field.
func (TenantID) Fields() []ddlgen.Field {
	return []ddlgen.Field{
		field.String("tenant_id").
			SchemaType(map[string]string{dialect.SQLServer: "nvarchar(64)"}).
			Comment("Tenant owning the row"),
	}
}

// TimeSoftDelete combines Time and SoftDelete mixins.
// Adds created_at, updated_at, and deleted_at fields.
type TimeSoftDelete struct {
	Schema
}

// Fields returns all timestamp and soft delete fields.
func (TimeSoftDelete) Fields() []ddlgen.Field {
	return append(Time{}.Fields(), SoftDelete{}.Fields()...)
}

// WithSchemaType wraps a mixin and applies the given per-dialect column
// types to all its fields.
//
// Example:
//
//	mixin.WithSchemaType(
//	    mixin.Time{},
//	    map[string]string{dialect.SQLServer: "datetimeoffset"},
//	)
func WithSchemaType(m ddlgen.Mixin, types map[string]string) ddlgen.Mixin {
	return schemaTyper{Mixin: m, types: types}
}

type schemaTyper struct {
	ddlgen.Mixin
	types map[string]string
}

func (a schemaTyper) Fields() []ddlgen.Field {
	fields := a.Mixin.Fields()
	for i := range fields {
		desc := fields[i].Descriptor()
		if desc == nil {
			continue
		}
		if desc.SchemaType == nil {
			desc.SchemaType = make(map[string]string, len(a.types))
		}
		maps.Copy(desc.SchemaType, a.types)
	}
	return fields
}
