package vector

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
	"github.com/x448/float16"
)

// ConversionError is returned by FromResult when a value cannot be
// represented as a vector.
type ConversionError struct {
	Value  any
	Reason string
}

func (c *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %T to a vector: %s", c.Value, c.Reason)
}

var float16Type = reflect.TypeFor[float16.Float16]()

// FromResult converts the result of a user function into a vector.  The
// result may be a vector, which is returned as is, an Arrow array, a Go
// slice or array (whose elements may be nil to indicate null), or a scalar,
// which becomes a Const of length one.  A []byte is treated as a bytes
// scalar rather than a sequence.
func FromResult(v any) (Any, error) {
	switch v := v.(type) {
	case nil:
		return nil, &ConversionError{Value: v, Reason: "nil result"}
	case Any:
		if isNilPointer(v) {
			return nil, &ConversionError{Value: v, Reason: "nil result"}
		}
		return v, nil
	case arrow.Array:
		if isNilPointer(v) {
			return nil, &ConversionError{Value: v, Reason: "nil result"}
		}
		return FromArrow(v)
	case []int64:
		return NewInt(frame.TypeInt64, slices.Clone(v), bitvec.Zero), nil
	case []uint64:
		return NewUint(frame.TypeUint64, slices.Clone(v), bitvec.Zero), nil
	case []float64:
		return NewFloat(frame.TypeFloat64, slices.Clone(v), bitvec.Zero), nil
	case []string:
		return NewString(slices.Clone(v), bitvec.Zero), nil
	case []bool:
		return NewBoolFromSlice(v, bitvec.Zero), nil
	case []byte:
		return NewConst(frame.TypeBytes, slices.Clone(v), 1, bitvec.Zero), nil
	}
	rv := deref(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, &ConversionError{Value: v, Reason: "nil result"}
	}
	if isList(rv) {
		return fromSequence(v, rv)
	}
	typ, val, err := scalar(rv)
	if err != nil {
		return nil, &ConversionError{Value: v, Reason: err.Error()}
	}
	return NewConst(typ, val, 1, bitvec.Zero), nil
}

// scalar returns the type of the Go value rv and its value in the
// representation used by Const.
func scalar(rv reflect.Value) (frame.Type, any, error) {
	if rv.Type() == float16Type {
		return frame.TypeFloat16, float64(rv.Interface().(float16.Float16).Float32()), nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int64:
		return frame.TypeInt64, rv.Int(), nil
	case reflect.Int32:
		return frame.TypeInt32, rv.Int(), nil
	case reflect.Int16:
		return frame.TypeInt16, rv.Int(), nil
	case reflect.Int8:
		return frame.TypeInt8, rv.Int(), nil
	case reflect.Uint, reflect.Uint64:
		return frame.TypeUint64, rv.Uint(), nil
	case reflect.Uint32:
		return frame.TypeUint32, rv.Uint(), nil
	case reflect.Uint16:
		return frame.TypeUint16, rv.Uint(), nil
	case reflect.Uint8:
		return frame.TypeUint8, rv.Uint(), nil
	case reflect.Float32:
		return frame.TypeFloat32, rv.Float(), nil
	case reflect.Float64:
		return frame.TypeFloat64, rv.Float(), nil
	case reflect.String:
		return frame.TypeString, rv.String(), nil
	case reflect.Bool:
		return frame.TypeBool, rv.Bool(), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return frame.TypeBytes, slices.Clone(rv.Bytes()), nil
		}
	}
	return nil, nil, fmt.Errorf("unsupported value of type %s", rv.Type())
}

func fromSequence(orig any, rv reflect.Value) (Any, error) {
	elems := make([]reflect.Value, rv.Len())
	for k := range elems {
		elems[k] = rv.Index(k)
	}
	vec, err := fromElems(elems)
	if err != nil {
		return nil, &ConversionError{Value: orig, Reason: err.Error()}
	}
	return vec, nil
}

// fromElems builds a vector from a sequence of Go values.  A nil element
// is a null and every other element must have the same type as the first
// non-null element.
func fromElems(elems []reflect.Value) (Any, error) {
	n := uint32(len(elems))
	var typ frame.Type
	var nulls bitvec.Bits
	vals := make([]any, n)
	var lists []reflect.Value
	for k, elem := range elems {
		elem = deref(elem)
		if !elem.IsValid() || (elem.Kind() == reflect.Slice && elem.IsNil()) {
			if nulls.IsZero() {
				nulls = bitvec.NewFalse(n)
			}
			nulls.Set(uint32(k))
			lists = append(lists, reflect.Value{})
			continue
		}
		if isList(elem) {
			if typ != nil && typ.Kind() != frame.ArrayKind {
				return nil, fmt.Errorf("element %d is a sequence but element types are %s", k, frame.FormatType(typ))
			}
			typ = &frame.TypeArray{}
			lists = append(lists, elem)
			continue
		}
		t, v, err := scalar(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		if typ == nil {
			typ = t
		} else if typ != t {
			return nil, fmt.Errorf("element %d has type %s but element types are %s", k, frame.FormatType(t), frame.FormatType(typ))
		}
		vals[k] = v
		lists = append(lists, reflect.Value{})
	}
	if typ == nil {
		return NewNull(n), nil
	}
	if typ.Kind() == frame.ArrayKind {
		return fromLists(lists, nulls)
	}
	return fromScalars(typ, vals, nulls), nil
}

// isNilPointer reports whether v holds a nil pointer, e.g., a nil *Int
// returned as an Any.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isList(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice:
		return v.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

func fromLists(lists []reflect.Value, nulls bitvec.Bits) (Any, error) {
	offsets := make([]uint32, 1, len(lists)+1)
	var inner []reflect.Value
	for _, list := range lists {
		if list.IsValid() {
			for k := range list.Len() {
				inner = append(inner, list.Index(k))
			}
		}
		offsets = append(offsets, uint32(len(inner)))
	}
	values, err := fromElems(inner)
	if err != nil {
		return nil, err
	}
	return NewArray(frame.NewTypeArray(values.Type()), offsets, values, nulls), nil
}

func fromScalars(typ frame.Type, vals []any, nulls bitvec.Bits) Any {
	switch {
	case frame.IsSigned(typ.ID()):
		return NewInt(typ, collect[int64](vals), nulls)
	case frame.IsInteger(typ.ID()):
		return NewUint(typ, collect[uint64](vals), nulls)
	case frame.IsFloat(typ.ID()):
		return NewFloat(typ, collect[float64](vals), nulls)
	}
	switch typ {
	case frame.TypeString:
		return NewString(collect[string](vals), nulls)
	case frame.TypeBytes:
		return NewBytes(collect[[]byte](vals), nulls)
	case frame.TypeBool:
		return NewBoolFromSlice(collect[bool](vals), nulls)
	}
	panic(typ)
}

// collect converts vals to a []T, leaving the zero value in null slots.
func collect[T any](vals []any) []T {
	out := make([]T, len(vals))
	for k, v := range vals {
		if v != nil {
			out[k] = v.(T)
		}
	}
	return out
}
