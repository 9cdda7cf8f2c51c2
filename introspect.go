package ddlgen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/syssam/ddlgen/schema/field"
)

// Member is a single field of a record, as seen by the generator.
type Member struct {
	Name       string            // field name, used as the column name.
	Type       string            // canonical type name, e.g. "int".
	Nillable   bool              // the field is declared as nullable.
	SchemaType map[string]string // per-dialect column type overrides.
}

// FieldsOf returns the members of the given record in declaration order.
// Mixed-in fields come first, in mixin order, followed by the record's
// own fields. It fails with an IntrospectionError if the record is nil,
// does not expose any usable field or declares a field name twice.
func FieldsOf(s Interface) ([]Member, error) {
	if s == nil {
		return nil, NewIntrospectionError("", errors.New("nil record"))
	}
	name := typeName(s)
	mixin, err := safeMixin(s)
	if err != nil {
		return nil, NewIntrospectionError(name, err)
	}
	var members []Member
	for i, mx := range mixin {
		if mx == nil {
			return nil, NewIntrospectionError(name, fmt.Errorf("mixin %d is nil", i))
		}
		fields, err := safeFields(mx)
		if err != nil {
			return nil, NewIntrospectionError(name, err)
		}
		if members, err = appendMembers(members, fields); err != nil {
			return nil, NewIntrospectionError(name, fmt.Errorf("mixin %T: %w", mx, err))
		}
	}
	fields, err := safeFields(s)
	if err != nil {
		return nil, NewIntrospectionError(name, err)
	}
	if members, err = appendMembers(members, fields); err != nil {
		return nil, NewIntrospectionError(name, err)
	}
	if len(members) == 0 {
		return nil, NewIntrospectionError(name, errors.New("no fields"))
	}
	return members, nil
}

func appendMembers(members []Member, fields []Field) ([]Member, error) {
	for i, f := range fields {
		if f == nil {
			return nil, fmt.Errorf("field %d is nil", i)
		}
		fd, err := safeDescriptor(f)
		switch {
		case err != nil:
			return nil, fmt.Errorf("field %d: %w", i, err)
		case fd == nil:
			return nil, fmt.Errorf("field %d: missing descriptor", i)
		case fd.Err != nil:
			return nil, fmt.Errorf("field %q: %w", fd.Name, fd.Err)
		case fd.Name == "":
			return nil, fmt.Errorf("field %d: missing name", i)
		case !fd.Info.Valid():
			return nil, fmt.Errorf("field %q: missing type info", fd.Name)
		case slices.ContainsFunc(members, func(m Member) bool { return m.Name == fd.Name }):
			return nil, fmt.Errorf("duplicate field %q", fd.Name)
		}
		members = append(members, Member{
			Name:       fd.Name,
			Type:       fd.Info.Type.String(),
			Nillable:   fd.Nillable,
			SchemaType: fd.SchemaType,
		})
	}
	return members, nil
}

// Nullable returns the nullability flags of the given members, in order.
// The result can be passed directly to CreateTable.
func Nullable(members []Member) []bool {
	flags := make([]bool, len(members))
	for i, m := range members {
		flags[i] = m.Nillable
	}
	return flags
}

// safeFields wraps the Fields method with recover to ensure no panics in introspection.
func safeFields(fd interface{ Fields() []Field }) (fields []Field, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Fields panics: %v", fd, v)
			fields = nil
		}
	}()
	return fd.Fields(), nil
}

// safeDescriptor wraps the Descriptor method with recover to ensure no panics in introspection.
func safeDescriptor(f Field) (fd *field.Descriptor, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Descriptor panics: %v", f, v)
			fd = nil
		}
	}()
	return f.Descriptor(), nil
}

// safeMixin wraps the Mixin method with recover to ensure no panics in introspection.
func safeMixin(s Interface) (mixin []Mixin, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%T.Mixin panics: %v", s, v)
			mixin = nil
		}
	}()
	return s.Mixin(), nil
}
