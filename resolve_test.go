package frame_test

import (
	"reflect"
	"testing"

	"github.com/brimdata/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestResolveTypeGo(t *testing.T) {
	cases := []struct {
		in       reflect.Type
		expected string
	}{
		{reflect.TypeFor[int](), "int64"},
		{reflect.TypeFor[int64](), "int64"},
		{reflect.TypeFor[int32](), "int32"},
		{reflect.TypeFor[uint16](), "uint16"},
		{reflect.TypeFor[float32](), "float32"},
		{reflect.TypeFor[float64](), "float64"},
		{reflect.TypeFor[float16.Float16](), "float16"},
		{reflect.TypeFor[string](), "string"},
		{reflect.TypeFor[bool](), "bool"},
		{reflect.TypeFor[[]byte](), "bytes"},
		{reflect.TypeFor[[]string](), "[string]"},
		{reflect.TypeFor[*int8](), "int8"},
		{reflect.TypeFor[struct {
			A int
			B string `frame:"b"`
			c bool
		}](), "{A:int64,b:string}"},
	}
	for _, c := range cases {
		typ, err := frame.ResolveType(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.expected, frame.FormatType(typ), c.in)
	}
}

func TestResolveTypeName(t *testing.T) {
	cases := []struct {
		in       string
		expected frame.Type
	}{
		{"int64", frame.TypeInt64},
		{"int", frame.TypeInt64},
		{"uint", frame.TypeUint64},
		{"float", frame.TypeFloat64},
		{"[]byte", frame.TypeBytes},
		{" string ", frame.TypeString},
	}
	for _, c := range cases {
		typ, err := frame.ResolveType(c.in)
		require.NoError(t, err, c.in)
		assert.Same(t, c.expected, typ, c.in)
	}

	typ, err := frame.ResolveType("[int]")
	require.NoError(t, err)
	assert.Equal(t, "[int64]", frame.FormatType(typ))

	typ, err = frame.ResolveType("[[float64]]")
	require.NoError(t, err)
	assert.True(t, frame.TypeEqual(frame.NewTypeArray(frame.NewTypeArray(frame.TypeFloat64)), typ))
}

func TestResolveTypePassesTypeThrough(t *testing.T) {
	arr := frame.NewTypeArray(frame.TypeString)
	typ, err := frame.ResolveType(arr)
	require.NoError(t, err)
	assert.Same(t, arr, typ)
}

func TestResolveTypeUnsupported(t *testing.T) {
	for _, desc := range []any{
		"decimal",
		"[int64",
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[chan int](),
		reflect.TypeFor[any](),
		reflect.TypeFor[struct{ x int }](),
		42,
		nil,
	} {
		_, err := frame.ResolveType(desc)
		var typeErr *frame.UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr, "%v", desc)
	}
	_, err := frame.ResolveType("decimal")
	assert.EqualError(t, err, `unsupported type "decimal"`)
}

type node struct {
	Value int
	Next  *node
}

type tree struct {
	Children []tree
}

type pair struct {
	Left, Right struct{ N int }
}

func TestResolveTypeRecursive(t *testing.T) {
	for _, typ := range []reflect.Type{
		reflect.TypeFor[node](),
		reflect.TypeFor[*node](),
		reflect.TypeFor[tree](),
		reflect.TypeFor[[]node](),
	} {
		_, err := frame.ResolveType(typ)
		var typeErr *frame.UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr, typ)
		assert.Contains(t, typeErr.Reason, "recursive type", typ)
	}
	// A type used twice without recursion resolves.
	typ, err := frame.ResolveType(reflect.TypeFor[pair]())
	require.NoError(t, err)
	assert.Equal(t, "{Left:{N:int64},Right:{N:int64}}", frame.FormatType(typ))
}

func TestResolveTypeCached(t *testing.T) {
	a, err := frame.TypeOf[[]float32]()
	require.NoError(t, err)
	b, err := frame.TypeOf[[]float32]()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestTypeOf(t *testing.T) {
	typ, err := frame.TypeOf[[]uint8]()
	require.NoError(t, err)
	assert.Same(t, frame.TypeBytes, typ)
}
