package vector

import (
	"fmt"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/bitutil"
	"github.com/apache/arrow-go/v18/arrow/float16"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
	"golang.org/x/exp/constraints"
)

// ToArrow returns the Arrow array form of vec allocated from mem.  The
// caller must Release the returned array.
func ToArrow(mem memory.Allocator, vec Any) (arrow.Array, error) {
	switch vec := vec.(type) {
	case *Int:
		switch vec.Typ.ID() {
		case frame.IDInt8:
			return build(array.NewInt8Builder(mem), vec.Nulls, vec.Values, func(v int64) int8 { return int8(v) }), nil
		case frame.IDInt16:
			return build(array.NewInt16Builder(mem), vec.Nulls, vec.Values, func(v int64) int16 { return int16(v) }), nil
		case frame.IDInt32:
			return build(array.NewInt32Builder(mem), vec.Nulls, vec.Values, func(v int64) int32 { return int32(v) }), nil
		default:
			return build(array.NewInt64Builder(mem), vec.Nulls, vec.Values, same[int64]), nil
		}
	case *Uint:
		switch vec.Typ.ID() {
		case frame.IDUint8:
			return build(array.NewUint8Builder(mem), vec.Nulls, vec.Values, func(v uint64) uint8 { return uint8(v) }), nil
		case frame.IDUint16:
			return build(array.NewUint16Builder(mem), vec.Nulls, vec.Values, func(v uint64) uint16 { return uint16(v) }), nil
		case frame.IDUint32:
			return build(array.NewUint32Builder(mem), vec.Nulls, vec.Values, func(v uint64) uint32 { return uint32(v) }), nil
		default:
			return build(array.NewUint64Builder(mem), vec.Nulls, vec.Values, same[uint64]), nil
		}
	case *Float:
		switch vec.Typ.ID() {
		case frame.IDFloat16:
			return build(array.NewFloat16Builder(mem), vec.Nulls, vec.Values, func(v float64) float16.Num { return float16.New(float32(v)) }), nil
		case frame.IDFloat32:
			return build(array.NewFloat32Builder(mem), vec.Nulls, vec.Values, func(v float64) float32 { return float32(v) }), nil
		default:
			return build(array.NewFloat64Builder(mem), vec.Nulls, vec.Values, same[float64]), nil
		}
	case *String:
		return build(array.NewStringBuilder(mem), vec.Nulls, vec.Values, same[string]), nil
	case *Bytes:
		return build(array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary), vec.Nulls, vec.Values, same[[]byte]), nil
	case *Bool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		b.Reserve(int(vec.Len()))
		for slot := range vec.Len() {
			if vec.Nulls.IsSet(slot) {
				b.AppendNull()
			} else {
				b.Append(vec.Value(slot))
			}
		}
		return b.NewArray(), nil
	case *Null:
		return array.NewNull(int(vec.Len())), nil
	case *Const:
		return ToArrow(mem, Flatten(vec))
	case *Array:
		return listToArrow(mem, vec)
	case *Record:
		return recordToArrow(mem, vec)
	}
	return nil, fmt.Errorf("no Arrow form for vector %T", vec)
}

type appender[T any] interface {
	array.Builder
	Append(T)
}

func build[T, V any, B appender[T]](b B, nulls bitvec.Bits, values []V, conv func(V) T) arrow.Array {
	defer b.Release()
	b.Reserve(len(values))
	for slot, v := range values {
		if nulls.IsSet(uint32(slot)) {
			b.AppendNull()
		} else {
			b.Append(conv(v))
		}
	}
	return b.NewArray()
}

func same[T any](v T) T {
	return v
}

func listToArrow(mem memory.Allocator, vec *Array) (arrow.Array, error) {
	values, err := ToArrow(mem, vec.Values)
	if err != nil {
		return nil, err
	}
	defer values.Release()
	n := int(vec.Len())
	offsets := make([]int32, 0, n+1)
	for _, off := range vec.Offsets {
		offsets = append(offsets, int32(off))
	}
	if len(offsets) == 0 {
		offsets = append(offsets, 0)
	}
	var bitmap *memory.Buffer
	nullCount := int(vec.Nulls.TrueCount())
	if nullCount > 0 {
		bits := make([]byte, bitutil.BytesForBits(int64(n)))
		for slot := range n {
			if !vec.Nulls.IsSet(uint32(slot)) {
				bitutil.SetBit(bits, slot)
			}
		}
		bitmap = memory.NewBufferBytes(bits)
	}
	buffers := []*memory.Buffer{bitmap, memory.NewBufferBytes(arrow.Int32Traits.CastToBytes(offsets))}
	data := array.NewData(arrow.ListOf(values.DataType()), n, buffers, []arrow.ArrayData{values.Data()}, nullCount, 0)
	defer data.Release()
	return array.NewListData(data), nil
}

func recordToArrow(mem memory.Allocator, vec *Record) (arrow.Array, error) {
	cols := make([]arrow.Array, 0, len(vec.Fields))
	names := make([]string, 0, len(vec.Fields))
	defer func() {
		for _, col := range cols {
			col.Release()
		}
	}()
	for k, f := range vec.Fields {
		col, err := ToArrow(mem, f)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
		names = append(names, vec.Typ.Fields[k].Name)
	}
	arr, err := array.NewStructArray(cols, names)
	if err != nil {
		return nil, err
	}
	return arr, nil
}

// FromArrow returns the vector form of arr.  Values are copied so the
// result does not reference arr's buffers.
func FromArrow(arr arrow.Array) (Any, error) {
	switch arr := arr.(type) {
	case *array.Int8:
		return fromSigned[int8](frame.TypeInt8, arr), nil
	case *array.Int16:
		return fromSigned[int16](frame.TypeInt16, arr), nil
	case *array.Int32:
		return fromSigned[int32](frame.TypeInt32, arr), nil
	case *array.Int64:
		return fromSigned[int64](frame.TypeInt64, arr), nil
	case *array.Uint8:
		return fromUnsigned[uint8](frame.TypeUint8, arr), nil
	case *array.Uint16:
		return fromUnsigned[uint16](frame.TypeUint16, arr), nil
	case *array.Uint32:
		return fromUnsigned[uint32](frame.TypeUint32, arr), nil
	case *array.Uint64:
		return fromUnsigned[uint64](frame.TypeUint64, arr), nil
	case *array.Float16:
		vec := NewFloatEmpty(frame.TypeFloat16, uint32(arr.Len()), nullsOf(arr))
		for k := range arr.Len() {
			vec.Append(float64(arr.Value(k).Float32()))
		}
		return vec, nil
	case *array.Float32:
		return fromFloat[float32](frame.TypeFloat32, arr), nil
	case *array.Float64:
		return fromFloat[float64](frame.TypeFloat64, arr), nil
	case *array.String:
		return NewString(arrowValues[string](arr), nullsOf(arr)), nil
	case *array.LargeString:
		return NewString(arrowValues[string](arr), nullsOf(arr)), nil
	case *array.Binary:
		values := arrowValues[[]byte](arr)
		for k := range values {
			values[k] = slices.Clone(values[k])
		}
		return NewBytes(values, nullsOf(arr)), nil
	case *array.Boolean:
		return NewBoolFromSlice(arrowValues[bool](arr), nullsOf(arr)), nil
	case *array.Null:
		return NewNull(uint32(arr.Len())), nil
	case *array.List:
		return listFromArrow(arr)
	case *array.Struct:
		return recordFromArrow(arr)
	}
	return nil, &ConversionError{Value: arr, Reason: "unsupported Arrow type " + arr.DataType().String()}
}

type valuer[T any] interface {
	arrow.Array
	Value(int) T
}

func arrowValues[T any](arr valuer[T]) []T {
	values := make([]T, arr.Len())
	for k := range values {
		values[k] = arr.Value(k)
	}
	return values
}

func fromSigned[T constraints.Signed](typ frame.Type, arr valuer[T]) *Int {
	vec := NewIntEmpty(typ, uint32(arr.Len()), nullsOf(arr))
	for k := range arr.Len() {
		vec.Append(int64(arr.Value(k)))
	}
	return vec
}

func fromUnsigned[T constraints.Unsigned](typ frame.Type, arr valuer[T]) *Uint {
	vec := NewUintEmpty(typ, uint32(arr.Len()), nullsOf(arr))
	for k := range arr.Len() {
		vec.Append(uint64(arr.Value(k)))
	}
	return vec
}

func fromFloat[T constraints.Float](typ frame.Type, arr valuer[T]) *Float {
	vec := NewFloatEmpty(typ, uint32(arr.Len()), nullsOf(arr))
	for k := range arr.Len() {
		vec.Append(float64(arr.Value(k)))
	}
	return vec
}

func nullsOf(arr arrow.Array) bitvec.Bits {
	if arr.NullN() == 0 {
		return bitvec.Zero
	}
	nulls := bitvec.NewFalse(uint32(arr.Len()))
	for k := range arr.Len() {
		if arr.IsNull(k) {
			nulls.Set(uint32(k))
		}
	}
	return nulls
}

func listFromArrow(arr *array.List) (Any, error) {
	n := arr.Len()
	offsets := make([]uint32, n+1)
	var first, last int64
	if n > 0 {
		first, _ = arr.ValueOffsets(0)
		_, last = arr.ValueOffsets(n - 1)
	}
	for k := range n {
		start, _ := arr.ValueOffsets(k)
		offsets[k] = uint32(start - first)
	}
	offsets[n] = uint32(last - first)
	slice := array.NewSlice(arr.ListValues(), first, last)
	defer slice.Release()
	values, err := FromArrow(slice)
	if err != nil {
		return nil, err
	}
	return NewArray(frame.NewTypeArray(values.Type()), offsets, values, nullsOf(arr)), nil
}

func recordFromArrow(arr *array.Struct) (Any, error) {
	typ := arr.DataType().(*arrow.StructType)
	names := make([]string, 0, arr.NumField())
	cols := make([]Any, 0, arr.NumField())
	for k := range arr.NumField() {
		col, err := FromArrow(arr.Field(k))
		if err != nil {
			return nil, err
		}
		names = append(names, typ.Field(k).Name)
		cols = append(cols, col)
	}
	rec, err := NewBatch(names, cols)
	if err != nil {
		return nil, &ConversionError{Value: arr, Reason: err.Error()}
	}
	rec.len = uint32(arr.Len())
	rec.Nulls = nullsOf(arr)
	return rec, nil
}
