// Package field provides fluent builders for describing record fields.
//
// A field has a name and a canonical type. The canonical type is
// dialect-neutral; the dialect-specific column type is resolved when a
// statement is generated:
//
//	field.Int("id")           // int      -> int (sqlserver), integer (sqlite)
//	field.String("name")      // string   -> nvarchar(max), text
//	field.Time("created_at")  // time     -> datetime2, datetime
//
// # Field Types
//
//	field.Bool("active")
//	field.Int("count")
//	field.Int64("big_number")
//	field.Float("price")
//	field.Decimal("amount")
//	field.String("name")
//	field.Text("description")
//	field.Time("created_at")
//	field.UUID("id")
//	field.Enum("status").Values("pending", "active")
//	field.JSON("metadata")
//	field.Bytes("data")
//
// Loaders that only know the type at runtime use New together with ParseType:
//
//	t, err := field.ParseType("text")
//	f := field.New("bio", t)
//
// # Nullability
//
// Nillable marks the column as nullable. The flag feeds ddlgen.Nullable,
// which derives the nullability list consumed by CreateTable.
//
//	field.String("nickname").Nillable()
//
// # Custom Column Types
//
// SchemaType overrides the mapped column type for specific dialects:
//
//	field.String("code").
//	    SchemaType(map[string]string{
//	        dialect.SQLServer: "char(8)",
//	    })
package field
