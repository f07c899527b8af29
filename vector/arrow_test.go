package vector_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector"
	"github.com/brimdata/frame/vector/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitvecZero() bitvec.Bits {
	return bitvec.Zero
}

func nullsAt(n uint32, slots ...uint32) bitvec.Bits {
	b := bitvec.NewFalse(n)
	for _, s := range slots {
		b.Set(s)
	}
	return b
}

func TestToArrowInt(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)
	vec := vector.NewInt(frame.TypeInt32, []int64{1, 0, 3}, nullsAt(3, 1))
	arr, err := vector.ToArrow(mem, vec)
	require.NoError(t, err)
	defer arr.Release()
	ints, ok := arr.(*array.Int32)
	require.True(t, ok)
	assert.Equal(t, int32(1), ints.Value(0))
	assert.True(t, ints.IsNull(1))
	assert.Equal(t, int32(3), ints.Value(2))
}

func TestToArrowConst(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)
	arr, err := vector.ToArrow(mem, vector.NewConst(frame.TypeString, "x", 3, bitvec.Zero))
	require.NoError(t, err)
	defer arr.Release()
	assert.Equal(t, arrow.BinaryTypes.String, arr.DataType())
	assert.Equal(t, 3, arr.Len())
	assert.Equal(t, "x", arr.(*array.String).Value(2))
}

func TestArrowRoundTripTypes(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)
	vecs := []vector.Any{
		vector.NewInt(frame.TypeInt8, []int64{-1, 2}, bitvec.Zero),
		vector.NewUint(frame.TypeUint32, []uint64{1, 2}, nullsAt(2, 0)),
		vector.NewFloat(frame.TypeFloat16, []float64{0.5, 2}, bitvec.Zero),
		vector.NewFloat(frame.TypeFloat64, []float64{0.25}, bitvec.Zero),
		vector.NewString([]string{"a", ""}, nullsAt(2, 1)),
		vector.NewBytes([][]byte{[]byte("ab")}, bitvec.Zero),
		vector.NewBoolFromSlice([]bool{true, false, true}, bitvec.Zero),
		vector.NewNull(2),
	}
	for _, in := range vecs {
		arr, err := vector.ToArrow(mem, in)
		require.NoError(t, err)
		out, err := vector.FromArrow(arr)
		arr.Release()
		require.NoError(t, err)
		assert.Same(t, in.Type(), out.Type())
		assert.Equal(t, vector.Values(in), vector.Values(out))
	}
}

func TestArrowList(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)
	in, err := vector.FromResult([]any{[]int64{1, 2}, nil, []int64{}, []int64{3}})
	require.NoError(t, err)
	arr, err := vector.ToArrow(mem, in)
	require.NoError(t, err)
	list, ok := arr.(*array.List)
	require.True(t, ok)
	assert.True(t, list.IsNull(1))
	assert.Equal(t, 1, list.NullN())
	slice := array.NewSlice(list, 2, 4)
	out, err := vector.FromArrow(slice)
	slice.Release()
	arr.Release()
	require.NoError(t, err)
	assert.Equal(t, []any{[]any(nil), []any{int64(3)}}, vector.Values(out))
}

func TestArrowRecord(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)
	batch, err := vector.NewBatch([]string{"a", "b"}, []vector.Any{
		vector.NewInt(frame.TypeInt64, []int64{1, 2}, bitvec.Zero),
		vector.NewString([]string{"x", "y"}, bitvec.Zero),
	})
	require.NoError(t, err)
	arr, err := vector.ToArrow(mem, batch)
	require.NoError(t, err)
	out, err := vector.FromArrow(arr)
	arr.Release()
	require.NoError(t, err)
	assert.Equal(t, "{a:int64,b:string}", frame.FormatType(out.Type()))
	assert.Equal(t, vector.Values(batch), vector.Values(out))
}

func TestNewBatchLengthMismatch(t *testing.T) {
	_, err := vector.NewBatch([]string{"a", "b"}, []vector.Any{
		vector.NewInt(frame.TypeInt64, []int64{1, 2}, bitvec.Zero),
		vector.NewString([]string{"x"}, bitvec.Zero),
	})
	assert.EqualError(t, err, `column "b" has length 1 (expected 2)`)
}
