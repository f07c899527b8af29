package frame

import (
	"fmt"
	"reflect"
	"strings"

	arc "github.com/hashicorp/golang-lru/arc/v2"
	"github.com/x448/float16"
)

// UnsupportedTypeError is returned by ResolveType when a type descriptor
// has no corresponding Type.
type UnsupportedTypeError struct {
	Descriptor any
	Reason     string
}

func (u *UnsupportedTypeError) Error() string {
	s := fmt.Sprintf("unsupported type %s", describe(u.Descriptor))
	if u.Reason != "" {
		s += ": " + u.Reason
	}
	return s
}

func describe(desc any) string {
	switch desc := desc.(type) {
	case string:
		return fmt.Sprintf("%q", desc)
	case reflect.Type:
		return desc.String()
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", desc)
}

var float16Type = reflect.TypeFor[float16.Float16]()

// goTypes holds the types of recently resolved Go types.
var goTypes, _ = arc.NewARC[reflect.Type, Type](1024)

// ResolveType maps a user-facing type descriptor to a Type.  The descriptor
// may be a Type, which is returned as is, a reflect.Type describing a Go
// type, or a type name like "int64" or "[string]".
func ResolveType(desc any) (Type, error) {
	switch desc := desc.(type) {
	case Type:
		return desc, nil
	case reflect.Type:
		if typ, ok := goTypes.Get(desc); ok {
			return typ, nil
		}
		typ, err := lookupType(desc, desc, map[reflect.Type]bool{})
		if err != nil {
			return nil, err
		}
		goTypes.Add(desc, typ)
		return typ, nil
	case string:
		return parseType(desc, desc)
	}
	return nil, &UnsupportedTypeError{Descriptor: desc}
}

// TypeOf resolves the Go type T.
func TypeOf[T any]() (Type, error) {
	return ResolveType(reflect.TypeFor[T]())
}

// lookupType maps t to a Type.  active holds the types being resolved
// by the callers of lookupType so a type that refers to itself is caught.
func lookupType(desc any, t reflect.Type, active map[reflect.Type]bool) (Type, error) {
	if t == nil {
		return nil, &UnsupportedTypeError{Descriptor: desc}
	}
	if t == float16Type {
		return TypeFloat16, nil
	}
	if active[t] {
		return nil, &UnsupportedTypeError{Descriptor: desc, Reason: "recursive type " + t.String()}
	}
	active[t] = true
	defer delete(active, t)
	switch t.Kind() {
	case reflect.Array, reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return TypeBytes, nil
		}
		inner, err := lookupType(desc, t.Elem(), active)
		if err != nil {
			return nil, err
		}
		return NewTypeArray(inner), nil
	case reflect.Struct:
		return lookupTypeRecord(desc, t, active)
	case reflect.Ptr:
		return lookupType(desc, t.Elem(), active)
	case reflect.String:
		return TypeString, nil
	case reflect.Bool:
		return TypeBool, nil
	case reflect.Int, reflect.Int64:
		return TypeInt64, nil
	case reflect.Int32:
		return TypeInt32, nil
	case reflect.Int16:
		return TypeInt16, nil
	case reflect.Int8:
		return TypeInt8, nil
	case reflect.Uint, reflect.Uint64:
		return TypeUint64, nil
	case reflect.Uint32:
		return TypeUint32, nil
	case reflect.Uint16:
		return TypeUint16, nil
	case reflect.Uint8:
		return TypeUint8, nil
	case reflect.Float32:
		return TypeFloat32, nil
	case reflect.Float64:
		return TypeFloat64, nil
	}
	return nil, &UnsupportedTypeError{Descriptor: desc, Reason: "no mapping for Go kind " + t.Kind().String()}
}

func lookupTypeRecord(desc any, t reflect.Type, active map[reflect.Type]bool) (Type, error) {
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("frame"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		typ, err := lookupType(desc, f.Type, active)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Type: typ})
	}
	if len(fields) == 0 {
		return nil, &UnsupportedTypeError{Descriptor: desc, Reason: "struct has no exported fields"}
	}
	return NewTypeRecord(fields), nil
}

func parseType(desc any, s string) (Type, error) {
	s = strings.TrimSpace(s)
	// Accept Go spellings for the common aliases.
	switch s {
	case "int":
		s = "int64"
	case "uint":
		s = "uint64"
	case "float":
		s = "float64"
	case "[]byte":
		s = "bytes"
	}
	if inner, ok := strings.CutPrefix(s, "["); ok {
		inner, ok = strings.CutSuffix(inner, "]")
		if !ok {
			return nil, &UnsupportedTypeError{Descriptor: desc, Reason: "unterminated array type"}
		}
		typ, err := parseType(desc, inner)
		if err != nil {
			return nil, err
		}
		return NewTypeArray(typ), nil
	}
	if typ := LookupPrimitive(s); typ != nil {
		return typ, nil
	}
	return nil, &UnsupportedTypeError{Descriptor: desc}
}
