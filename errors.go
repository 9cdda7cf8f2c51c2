package ddlgen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for statement generation.
var (
	// ErrNotSupportedType is returned when the operated record is the
	// generator itself (or embeds it).
	ErrNotSupportedType = errors.New("ddlgen: operated record cannot be a generator")

	// ErrUnsupportedType is returned when a canonical type has no column
	// type in the selected dialect.
	ErrUnsupportedType = errors.New("ddlgen: unsupported type")

	// ErrUnsupportedOperation is returned when the selected dialect does not
	// support the requested operation.
	ErrUnsupportedOperation = errors.New("ddlgen: unsupported operation")

	// ErrCountMismatch is returned when fewer nullability flags than fields
	// are passed to CreateTable.
	ErrCountMismatch = errors.New("ddlgen: nullability count mismatch")

	// ErrIntrospection is returned when a record exposes no usable fields.
	ErrIntrospection = errors.New("ddlgen: introspection failed")

	// ErrUnsupportedDialect is returned for dialect names outside the supported set.
	ErrUnsupportedDialect = errors.New("ddlgen: unsupported dialect")
)

// UnsupportedTypeError is returned when a canonical type cannot be mapped
// to a column type of a dialect.
type UnsupportedTypeError struct {
	Type    string // canonical type name
	Dialect string
}

// Error returns the error string.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("ddlgen: type %q is not supported by dialect %q", e.Type, e.Dialect)
}

// Is reports whether the target error matches UnsupportedTypeError.
// This allows errors.Is(err, ErrUnsupportedType) to return true.
func (e *UnsupportedTypeError) Is(err error) bool {
	return err == ErrUnsupportedType
}

// NewUnsupportedTypeError returns a new UnsupportedTypeError.
func NewUnsupportedTypeError(typ, dialect string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Type: typ, Dialect: dialect}
}

// IsUnsupportedType returns true if the error is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedType)
}

// UnsupportedOperationError is returned when a dialect cannot perform an operation.
type UnsupportedOperationError struct {
	Op      string // e.g. "create database"
	Dialect string
}

// Error returns the error string.
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("ddlgen: %s is not supported by dialect %q", e.Op, e.Dialect)
}

// Is reports whether the target error matches UnsupportedOperationError.
func (e *UnsupportedOperationError) Is(err error) bool {
	return err == ErrUnsupportedOperation
}

// NewUnsupportedOperationError returns a new UnsupportedOperationError.
func NewUnsupportedOperationError(op, dialect string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Op: op, Dialect: dialect}
}

// IsUnsupportedOperation returns true if the error is an UnsupportedOperationError.
func IsUnsupportedOperation(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedOperationError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedOperation)
}

// CountMismatchError is returned when the nullability list is shorter
// than the field list.
type CountMismatchError struct {
	Fields int // number of fields
	Flags  int // number of nullability flags
}

// Error returns the error string.
func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("ddlgen: %d nullability flags given for %d fields", e.Flags, e.Fields)
}

// Is reports whether the target error matches CountMismatchError.
func (e *CountMismatchError) Is(err error) bool {
	return err == ErrCountMismatch
}

// NewCountMismatchError returns a new CountMismatchError.
func NewCountMismatchError(fields, flags int) *CountMismatchError {
	return &CountMismatchError{Fields: fields, Flags: flags}
}

// IsCountMismatch returns true if the error is a CountMismatchError.
func IsCountMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *CountMismatchError
	return errors.As(err, &e) || errors.Is(err, ErrCountMismatch)
}

// IntrospectionError is returned when the fields of a record cannot be read.
type IntrospectionError struct {
	Schema string // record type name, if known
	Err    error  // underlying cause
}

// Error returns the error string.
func (e *IntrospectionError) Error() string {
	if e.Schema != "" {
		return fmt.Sprintf("ddlgen: introspecting %s: %v", e.Schema, e.Err)
	}
	return fmt.Sprintf("ddlgen: introspecting record: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *IntrospectionError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches IntrospectionError.
func (e *IntrospectionError) Is(err error) bool {
	return err == ErrIntrospection
}

// NewIntrospectionError returns a new IntrospectionError.
func NewIntrospectionError(schema string, err error) *IntrospectionError {
	return &IntrospectionError{Schema: schema, Err: err}
}

// IsIntrospectionError returns true if the error is an IntrospectionError.
func IsIntrospectionError(err error) bool {
	if err == nil {
		return false
	}
	var e *IntrospectionError
	return errors.As(err, &e) || errors.Is(err, ErrIntrospection)
}

// IsNotSupportedType returns true if the error reports a self-referencing
// operated record.
func IsNotSupportedType(err error) bool {
	return err != nil && errors.Is(err, ErrNotSupportedType)
}

// unsupportedDialect wraps ErrUnsupportedDialect with the offending name.
func unsupportedDialect(name string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedDialect, name)
}
