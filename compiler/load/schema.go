package load

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/schema/field"
)

// Schema represents a record description that was loaded from a schema
// file or marshaled from a ddlgen.Interface.
type Schema struct {
	Name       string   `json:"name,omitempty" yaml:"name"`
	Table      string   `json:"table,omitempty" yaml:"table,omitempty"`
	PrimaryKey string   `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	Fields     []*Field `json:"fields,omitempty" yaml:"fields"`
}

// Position describes a position in the schema.
type Position struct {
	Index      int  `json:"index"`                 // Index in the field list.
	MixedIn    bool `json:"mixed_in,omitempty"`    // Indicates if the field was mixed-in.
	MixinIndex int  `json:"mixin_index,omitempty"` // Mixin index in the mixin list.
}

// Field represents a ddlgen.Field that was loaded.
type Field struct {
	Name       string            `json:"name,omitempty" yaml:"name"`
	Type       string            `json:"type,omitempty" yaml:"type"`
	Nillable   bool              `json:"nillable,omitempty" yaml:"nillable,omitempty"`
	SchemaType map[string]string `json:"schema_type,omitempty" yaml:"schema_type,omitempty"`
	Comment    string            `json:"comment,omitempty" yaml:"comment,omitempty"`
	Position   *Position         `json:"position,omitempty" yaml:"-"`
}

// NewField creates a loaded field from field descriptor.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd == nil {
		return nil, errors.New("missing field descriptor")
	}
	if fd.Err != nil {
		return nil, fmt.Errorf("field %q: %v", fd.Name, fd.Err)
	}
	if !fd.Info.Valid() {
		return nil, fmt.Errorf("missing type info for field %q", fd.Name)
	}
	return &Field{
		Name:       fd.Name,
		Type:       fd.Info.Type.String(),
		Nillable:   fd.Nillable,
		SchemaType: fd.SchemaType,
		Comment:    fd.Comment,
	}, nil
}

// builder converts the loaded field back to a field builder.
func (f *Field) builder() (*field.Builder, error) {
	t, err := field.ParseType(f.Type)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}
	b := field.New(f.Name, t)
	if f.Nillable {
		b.Nillable()
	}
	if len(f.SchemaType) > 0 {
		b.SchemaType(f.SchemaType)
	}
	if f.Comment != "" {
		b.Comment(f.Comment)
	}
	return b, b.Descriptor().Err
}

// MarshalSchema encodes the ddlgen.Interface into a JSON that can be
// decoded into the Schema object declared above.
func MarshalSchema(schema ddlgen.Interface) (b []byte, err error) {
	if schema == nil {
		return nil, errors.New("nil schema")
	}
	s := &Schema{
		Name:  indirect(reflect.TypeOf(schema)).Name(),
		Table: ddlgen.TableName(schema),
	}
	if err = s.loadMixin(schema); err != nil {
		return nil, fmt.Errorf("schema %q: %w", s.Name, err)
	}
	if err = s.loadFields(schema); err != nil {
		return nil, fmt.Errorf("schema %q: %w", s.Name, err)
	}
	return json.Marshal(s)
}

// UnmarshalSchema decodes the given buffer to a loaded schema.
func UnmarshalSchema(buf []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// Record returns the loaded schema as a ddlgen.Interface.
func (s *Schema) Record() ddlgen.Interface {
	return &record{s: s}
}

// TableName returns the table name of the loaded schema. It defaults to
// the schema name.
func (s *Schema) TableName() string {
	if s.Table != "" {
		return s.Table
	}
	return s.Name
}

// Nullable returns the nullability flags of the loaded fields, in order.
func (s *Schema) Nullable() []bool {
	flags := make([]bool, len(s.Fields))
	for i, f := range s.Fields {
		flags[i] = f != nil && f.Nillable
	}
	return flags
}

// check validates the loaded schema.
func (s *Schema) check() error {
	if s.Name == "" {
		return errors.New("schema: missing name")
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema %q: no fields", s.Name)
	}
	for i, f := range s.Fields {
		if f == nil {
			return fmt.Errorf("schema %q: field %d is empty", s.Name, i)
		}
		if f.Name == "" {
			return fmt.Errorf("schema %q: field %d: missing name", s.Name, i)
		}
		if _, err := f.builder(); err != nil {
			return fmt.Errorf("schema %q: %w", s.Name, err)
		}
	}
	return nil
}

// loadMixin loads mixed-in fields to schema from ddlgen.Interface.
func (s *Schema) loadMixin(schema ddlgen.Interface) error {
	mixin, err := safeMixin(schema)
	if err != nil {
		return err
	}
	for i, mx := range mixin {
		if mx == nil {
			return fmt.Errorf("mixin %d is nil", i)
		}
		name := indirect(reflect.TypeOf(mx)).Name()
		fields, ferr := safeFields(mx)
		if ferr != nil {
			return fmt.Errorf("mixin %q: %w", name, ferr)
		}
		for j, f := range fields {
			if f == nil {
				return fmt.Errorf("mixin %q: field %d is nil", name, j)
			}
			sf, ferr := NewField(f.Descriptor())
			if ferr != nil {
				return fmt.Errorf("mixin %q: %w", name, ferr)
			}
			sf.Position = &Position{
				Index:      j,
				MixedIn:    true,
				MixinIndex: i,
			}
			s.Fields = append(s.Fields, sf)
		}
	}
	return nil
}

// loadFields loads field to schema from ddlgen.Interface.
func (s *Schema) loadFields(schema ddlgen.Interface) error {
	fields, err := safeFields(schema)
	if err != nil {
		return err
	}
	for i, f := range fields {
		if f == nil {
			return fmt.Errorf("field %d is nil", i)
		}
		sf, err := NewField(f.Descriptor())
		if err != nil {
			return err
		}
		sf.Position = &Position{Index: i}
		s.Fields = append(s.Fields, sf)
	}
	return nil
}

// record adapts a loaded schema to ddlgen.Interface.
type record struct {
	ddlgen.Schema
	s *Schema
}

// Fields returns the loaded fields in order. Invalid fields carry their
// error in the descriptor.
func (r *record) Fields() []ddlgen.Field {
	fields := make([]ddlgen.Field, 0, len(r.s.Fields))
	for _, f := range r.s.Fields {
		if f == nil {
			fields = append(fields, nil)
			continue
		}
		b, _ := f.builder()
		if b == nil {
			b = field.New(f.Name, field.TypeInvalid)
		}
		fields = append(fields, b)
	}
	return fields
}

// Table returns the table name of the loaded schema.
func (r *record) Table() string { return r.s.TableName() }

// safeFields wraps the schema.Fields and mixin.Fields method with recover to ensure no panics in marshaling.
func safeFields(fd interface{ Fields() []ddlgen.Field }) (fields []ddlgen.Field, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Fields panics: %v", fd, v)
			fields = nil
		}
	}()
	return fd.Fields(), nil
}

// safeMixin wraps the schema.Mixin method with recover to ensure no panics in marshaling.
func safeMixin(schema ddlgen.Interface) (mixin []ddlgen.Mixin, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("schema.Mixin panics: %v", v)
			mixin = nil
		}
	}()
	return schema.Mixin(), nil
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
