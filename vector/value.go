package vector

import (
	"fmt"

	"github.com/brimdata/frame"
)

// Value returns the Go value in slot of vec or nil if the slot is null.
// Integers are returned as int64 or uint64 and floats as float64.
// Array slots are returned as []any and record slots as map[string]any.
func Value(vec Any, slot uint32) any {
	if NullsOf(vec).IsSet(slot) {
		return nil
	}
	switch vec := vec.(type) {
	case *Int:
		return vec.Value(slot)
	case *Uint:
		return vec.Value(slot)
	case *Float:
		return vec.Value(slot)
	case *String:
		return vec.Value(slot)
	case *Bytes:
		return vec.Value(slot)
	case *Bool:
		return vec.Value(slot)
	case *Const:
		return vec.Value()
	case *Null:
		return nil
	case *Array:
		var out []any
		for k := vec.Offsets[slot]; k < vec.Offsets[slot+1]; k++ {
			out = append(out, Value(vec.Values, k))
		}
		return out
	case *Record:
		out := make(map[string]any, len(vec.Fields))
		for k, f := range vec.Typ.Fields {
			out[f.Name] = Value(vec.Fields[k], slot)
		}
		return out
	}
	panic(fmt.Sprintf("vector.Value: unknown vector type %T", vec))
}

// Values returns the Go values of every slot of vec.
func Values(vec Any) []any {
	out := make([]any, 0, vec.Len())
	for slot := range vec.Len() {
		out = append(out, Value(vec, slot))
	}
	return out
}

// Flatten returns the flat vector equivalent of a Const.  Vectors that are
// not a Const are returned unchanged.
func Flatten(vec Any) Any {
	c, ok := vec.(*Const)
	if !ok {
		return vec
	}
	n := c.Len()
	nulls := c.Nulls
	switch val := c.Value().(type) {
	case int64:
		return NewInt(c.Type(), repeat(val, n), nulls)
	case uint64:
		return NewUint(c.Type(), repeat(val, n), nulls)
	case float64:
		return NewFloat(c.Type(), repeat(val, n), nulls)
	case string:
		return NewString(repeat(val, n), nulls)
	case []byte:
		return NewBytes(repeat(val, n), nulls)
	case bool:
		return NewBoolFromSlice(repeat(val, n), nulls)
	case nil:
		return NewNull(n)
	}
	panic(fmt.Sprintf("vector.Flatten: bad const value %T for type %s", c.Value(), frame.FormatType(c.Type())))
}

func repeat[T any](v T, n uint32) []T {
	out := make([]T, n)
	for k := range out {
		out[k] = v
	}
	return out
}
