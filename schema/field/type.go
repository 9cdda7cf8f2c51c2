package field

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// A Type represents a canonical field type, independent of any SQL dialect.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeJSON
	TypeUUID
	TypeBytes
	TypeEnum
	TypeString
	TypeDecimal
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint
	TypeUint64
	TypeFloat32
	TypeFloat64
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeTime:    "time",
	TypeJSON:    "json",
	TypeUUID:    "uuid",
	TypeBytes:   "bytes",
	TypeEnum:    "enum",
	TypeString:  "string",
	TypeDecimal: "decimal",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint:    "uint",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
}

// aliases are accepted by ParseType in addition to the canonical names.
var aliases = map[string]Type{
	"boolean":        TypeBool,
	"datetime":       TypeTime,
	"timestamp":      TypeTime,
	"date-time":      TypeTime,
	"floating-point": TypeFloat64,
	"floating":       TypeFloat64,
	"time.time":      TypeTime,
	"blob":           TypeBytes,
	"[]byte":         TypeBytes,
	"text":           TypeString,
	"varchar":        TypeString,
	"integer":        TypeInt,
	"byte":           TypeUint8,
	"float":          TypeFloat64,
	"double":         TypeFloat64,
	"real":           TypeFloat32,
	"numeric":        TypeDecimal,
	"guid":           TypeUUID,
}

// String returns the canonical name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is known.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt8 && t < endTypes
}

// Integer reports if the given type is an integer type.
func (t Type) Integer() bool {
	return t >= TypeInt8 && t <= TypeUint64
}

// ParseType returns the Type for the given canonical name or alias.
// Names are matched case-insensitively.
func ParseType(name string) (Type, error) {
	s := cases.Fold().String(strings.TrimSpace(name))
	for t := TypeBool; t < endTypes; t++ {
		if typeNames[t] == s {
			return t, nil
		}
	}
	if t, ok := aliases[s]; ok {
		return t, nil
	}
	return TypeInvalid, fmt.Errorf("field: unknown type %q", name)
}

// TypeInfo holds the information regarding field type.
type TypeInfo struct {
	Type Type
}

// String returns the canonical type name.
func (t TypeInfo) String() string {
	return t.Type.String()
}

// Valid reports if the type info holds a known type.
func (t *TypeInfo) Valid() bool {
	return t != nil && t.Type.Valid()
}
