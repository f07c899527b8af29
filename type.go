package frame

import (
	"fmt"
	"strings"
)

const (
	IDUint8   = 0
	IDUint16  = 1
	IDUint32  = 2
	IDUint64  = 3
	IDInt8    = 4
	IDInt16   = 5
	IDInt32   = 6
	IDInt64   = 7
	IDFloat16 = 8
	IDFloat32 = 9
	IDFloat64 = 10
	IDBool    = 11
	IDBytes   = 12
	IDString  = 13
	IDNull    = 14

	IDTypeComplex = 23

	IDArray  = IDTypeComplex
	IDRecord = IDTypeComplex + 1
)

type Kind int

const (
	PrimitiveKind Kind = iota
	ArrayKind
	RecordKind
)

func (k Kind) String() string {
	switch k {
	case PrimitiveKind:
		return "primitive"
	case ArrayKind:
		return "array"
	case RecordKind:
		return "record"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Type is the structural tag attached to the output of an expression.
// Primitive types are singletons so two primitive types are equal if and
// only if their pointers are equal.  Use TypeEqual for complex types.
type Type interface {
	ID() int
	Kind() Kind
}

var (
	TypeUint8   = &TypeOfUint8{}
	TypeUint16  = &TypeOfUint16{}
	TypeUint32  = &TypeOfUint32{}
	TypeUint64  = &TypeOfUint64{}
	TypeInt8    = &TypeOfInt8{}
	TypeInt16   = &TypeOfInt16{}
	TypeInt32   = &TypeOfInt32{}
	TypeInt64   = &TypeOfInt64{}
	TypeFloat16 = &TypeOfFloat16{}
	TypeFloat32 = &TypeOfFloat32{}
	TypeFloat64 = &TypeOfFloat64{}
	TypeBool    = &TypeOfBool{}
	TypeBytes   = &TypeOfBytes{}
	TypeString  = &TypeOfString{}
	TypeNull    = &TypeOfNull{}
)

var primitiveNames = map[string]Type{
	"uint8":   TypeUint8,
	"uint16":  TypeUint16,
	"uint32":  TypeUint32,
	"uint64":  TypeUint64,
	"int8":    TypeInt8,
	"int16":   TypeInt16,
	"int32":   TypeInt32,
	"int64":   TypeInt64,
	"float16": TypeFloat16,
	"float32": TypeFloat32,
	"float64": TypeFloat64,
	"bool":    TypeBool,
	"bytes":   TypeBytes,
	"string":  TypeString,
	"null":    TypeNull,
}

// LookupPrimitive returns the primitive type with the given name or nil
// if there is no such type.
func LookupPrimitive(name string) Type {
	return primitiveNames[name]
}

func PrimitiveName(typ Type) string {
	for name, t := range primitiveNames {
		if t == typ {
			return name
		}
	}
	return ""
}

func IsInteger(id int) bool {
	return id <= IDInt64
}

func IsSigned(id int) bool {
	return id >= IDInt8 && id <= IDInt64
}

func IsFloat(id int) bool {
	return id >= IDFloat16 && id <= IDFloat64
}

type TypeArray struct {
	Type Type
}

func NewTypeArray(typ Type) *TypeArray {
	return &TypeArray{Type: typ}
}

func (*TypeArray) ID() int {
	return IDArray
}

func (*TypeArray) Kind() Kind {
	return ArrayKind
}

type Field struct {
	Name string
	Type Type
}

type TypeRecord struct {
	Fields []Field
}

func NewTypeRecord(fields []Field) *TypeRecord {
	return &TypeRecord{Fields: fields}
}

func (*TypeRecord) ID() int {
	return IDRecord
}

func (*TypeRecord) Kind() Kind {
	return RecordKind
}

func (t *TypeRecord) IndexOfField(name string) (int, bool) {
	for k, f := range t.Fields {
		if f.Name == name {
			return k, true
		}
	}
	return -1, false
}

// TypeEqual reports whether a and b describe the same structure.
func TypeEqual(a, b Type) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *TypeArray:
		b, ok := b.(*TypeArray)
		return ok && TypeEqual(a.Type, b.Type)
	case *TypeRecord:
		b, ok := b.(*TypeRecord)
		if !ok || len(a.Fields) != len(b.Fields) {
			return false
		}
		for k := range a.Fields {
			if a.Fields[k].Name != b.Fields[k].Name || !TypeEqual(a.Fields[k].Type, b.Fields[k].Type) {
				return false
			}
		}
		return true
	}
	return false
}

// FormatType returns the type's name, e.g., "int64", "[string]", or
// "{a:int64,b:string}".  ResolveType accepts the names of primitive and
// array types but not the record syntax.
func FormatType(typ Type) string {
	switch typ := typ.(type) {
	case nil:
		return "<nil>"
	case *TypeArray:
		return "[" + FormatType(typ.Type) + "]"
	case *TypeRecord:
		var b strings.Builder
		b.WriteByte('{')
		for k, f := range typ.Fields {
			if k > 0 {
				b.WriteByte(',')
			}
			b.WriteString(f.Name)
			b.WriteByte(':')
			b.WriteString(FormatType(f.Type))
		}
		b.WriteByte('}')
		return b.String()
	}
	if name := PrimitiveName(typ); name != "" {
		return name
	}
	return fmt.Sprintf("%T", typ)
}
