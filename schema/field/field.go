package field

import (
	"errors"
	"fmt"
	"maps"
)

// A Descriptor for field configuration.
type Descriptor struct {
	Name       string            // field name.
	Info       *TypeInfo         // field type info.
	Nillable   bool              // nullable field in the database.
	Comment    string            // field comment.
	Enums      []string          // enum values.
	SchemaType map[string]string // override the default database type per dialect.
	Err        error
}

// Builder is the builder for all field types.
type Builder struct {
	desc *Descriptor
}

// New returns a new field builder of the given type. It is the dynamic
// counterpart of the typed constructors below, used by schema loaders.
func New(name string, t Type) *Builder {
	b := &Builder{desc: &Descriptor{
		Name: name,
		Info: &TypeInfo{Type: t},
	}}
	switch {
	case name == "":
		b.desc.Err = errors.New("field: missing field name")
	case !t.Valid():
		b.desc.Err = fmt.Errorf("field: invalid type for field %q", name)
	}
	return b
}

// Bool returns a new Field with type bool.
func Bool(name string) *Builder { return New(name, TypeBool) }

// Time returns a new Field with type timestamp.
func Time(name string) *Builder { return New(name, TypeTime) }

// JSON returns a new Field with type json.
func JSON(name string) *Builder { return New(name, TypeJSON) }

// UUID returns a new Field with type uuid.
func UUID(name string) *Builder { return New(name, TypeUUID) }

// Bytes returns a new Field with type bytes/buffer.
func Bytes(name string) *Builder { return New(name, TypeBytes) }

// String returns a new Field with type string.
func String(name string) *Builder { return New(name, TypeString) }

// Text returns a new string field. Text and String share the same
// canonical type; the distinction only exists for readability.
func Text(name string) *Builder { return New(name, TypeString) }

// Decimal returns a new Field with type decimal.
func Decimal(name string) *Builder { return New(name, TypeDecimal) }

// Enum returns a new Field with type enum. Use Values to set the
// allowed values.
func Enum(name string) *Builder { return New(name, TypeEnum) }

// Int returns a new Field with type int.
func Int(name string) *Builder { return New(name, TypeInt) }

// Int8 returns a new Field with type int8.
func Int8(name string) *Builder { return New(name, TypeInt8) }

// Int16 returns a new Field with type int16.
func Int16(name string) *Builder { return New(name, TypeInt16) }

// Int32 returns a new Field with type int32.
func Int32(name string) *Builder { return New(name, TypeInt32) }

// Int64 returns a new Field with type int64.
func Int64(name string) *Builder { return New(name, TypeInt64) }

// Uint returns a new Field with type uint.
func Uint(name string) *Builder { return New(name, TypeUint) }

// Uint8 returns a new Field with type uint8.
func Uint8(name string) *Builder { return New(name, TypeUint8) }

// Uint16 returns a new Field with type uint16.
func Uint16(name string) *Builder { return New(name, TypeUint16) }

// Uint32 returns a new Field with type uint32.
func Uint32(name string) *Builder { return New(name, TypeUint32) }

// Uint64 returns a new Field with type uint64.
func Uint64(name string) *Builder { return New(name, TypeUint64) }

// Float returns a new Field with type float64.
func Float(name string) *Builder { return New(name, TypeFloat64) }

// Float32 returns a new Field with type float32.
func Float32(name string) *Builder { return New(name, TypeFloat32) }

// Nillable indicates that this field is a nullable column in the database.
// CreateTable callers may use it to derive the nullability flags.
func (b *Builder) Nillable() *Builder {
	b.desc.Nillable = true
	return b
}

// Comment sets the comment of the field.
func (b *Builder) Comment(c string) *Builder {
	b.desc.Comment = c
	return b
}

// Values adds given values to the enum values.
func (b *Builder) Values(values ...string) *Builder {
	if b.desc.Info.Type != TypeEnum {
		b.desc.Err = fmt.Errorf("field: Values is only allowed on enum field %q", b.desc.Name)
		return b
	}
	for _, v := range values {
		if v == "" {
			b.desc.Err = fmt.Errorf("field: %q: empty enum value", b.desc.Name)
			return b
		}
	}
	b.desc.Enums = append(b.desc.Enums, values...)
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect) for the field.
//
//	field.String("name").
//		SchemaType(map[string]string{
//			dialect.SQLServer: "nvarchar(100)",
//		})
func (b *Builder) SchemaType(types map[string]string) *Builder {
	if b.desc.SchemaType == nil {
		b.desc.SchemaType = make(map[string]string, len(types))
	}
	maps.Copy(b.desc.SchemaType, types)
	return b
}

// Descriptor implements the ddlgen.Field interface by returning its descriptor.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
