// Package mixin provides reusable field groups for ddlgen records.
//
// Mixins allow sharing common fields across multiple records. Mixed-in
// fields are placed before the record's own fields, in the order the
// mixins are listed.
//
// # Built-in Mixins
//
//	mixin.ID{}             // id
//	mixin.Time{}           // created_at, updated_at
//	mixin.SoftDelete{}     // deleted_at (nullable)
//	mixin.TenantID{}       // tenant_id
//	mixin.TimeSoftDelete{} // created_at, updated_at, deleted_at
//
// # Using Mixins
//
//	type User struct{ ddlgen.Schema }
//
//	func (User) Mixin() []ddlgen.Mixin {
//	    return []ddlgen.Mixin{
//	        mixin.ID{},
//	        mixin.Time{},
//	    }
//	}
//
// The resulting users table starts with the id, created_at and updated_at
// columns, followed by the fields declared by User.
//
// # Creating Custom Mixins
//
// Embed Schema and override Fields:
//
//	type AuditMixin struct{ mixin.Schema }
//
//	func (AuditMixin) Fields() []ddlgen.Field {
//	    return []ddlgen.Field{
//	        field.String("created_by"),
//	        field.String("updated_by").Nillable(),
//	    }
//	}
package mixin
