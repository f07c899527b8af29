package expr_test

import (
	"errors"
	"testing"

	"github.com/brimdata/frame"
	"github.com/brimdata/frame/pkg/resource"
	"github.com/brimdata/frame/runtime/vam/expr"
	"github.com/brimdata/frame/vector"
	"github.com/brimdata/frame/vector/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batch(t *testing.T, names []string, cols ...vector.Any) *vector.Record {
	rec, err := vector.NewBatch(names, cols)
	require.NoError(t, err)
	return rec
}

func ints(vals ...int64) *vector.Int {
	return vector.NewInt(frame.TypeInt64, vals, bitvec.Zero)
}

// record returns an ApplyFunc that saves its arguments and returns out.
func record(out vector.Any, args *[]any, kwargs *map[string]any) expr.ApplyFunc {
	return func(a []any, kw map[string]any) (vector.Any, error) {
		*args, *kwargs = a, kw
		return out, nil
	}
}

func TestUDFArgumentOrder(t *testing.T) {
	var gotArgs []any
	var gotKwargs map[string]any
	in := batch(t, []string{"a", "b"}, ints(1, 2), ints(3, 4))
	u := expr.NewUDF("f", record(ints(0, 0), &gotArgs, &gotKwargs), frame.TypeInt64,
		[]any{expr.NewDottedExpr("b"), "lit", expr.NewDottedExpr("a")},
		map[string]any{"scale": 2, "col": expr.NewDottedExpr("a")},
		resource.Unset)
	_, err := u.Eval(in)
	require.NoError(t, err)
	require.Len(t, gotArgs, 3)
	assert.Equal(t, []any{int64(3), int64(4)}, vector.Values(gotArgs[0].(vector.Any)))
	assert.Equal(t, "lit", gotArgs[1])
	assert.Equal(t, []any{int64(1), int64(2)}, vector.Values(gotArgs[2].(vector.Any)))
	require.Len(t, gotKwargs, 2)
	assert.Equal(t, 2, gotKwargs["scale"])
	assert.Equal(t, []any{int64(1), int64(2)}, vector.Values(gotKwargs["col"].(vector.Any)))
}

func TestUDFNoArguments(t *testing.T) {
	var gotArgs []any
	var gotKwargs map[string]any
	u := expr.NewUDF("f", record(ints(7), &gotArgs, &gotKwargs), frame.TypeInt64, nil, nil, resource.Unset)
	_, err := u.Eval(batch(t, []string{"a"}, ints(1)))
	require.NoError(t, err)
	assert.Empty(t, gotArgs)
	assert.Nil(t, gotKwargs)
	assert.Empty(t, u.Args())
	assert.Empty(t, u.Kwargs())
}

func TestUDFBindingsAreCopied(t *testing.T) {
	args := []any{"x", "y"}
	kwargs := map[string]any{"k": 1}
	req, err := resource.Unset.WithCPUs(2)
	require.NoError(t, err)
	u := expr.NewUDF("f", nil, frame.TypeString, args, kwargs, req)
	args[0] = "changed"
	kwargs["k"] = 2
	assert.Equal(t, []any{"x", "y"}, u.Args())
	assert.Equal(t, map[string]any{"k": 1}, u.Kwargs())

	got := u.Args()
	got[1] = "changed"
	got2 := u.Kwargs()
	got2["new"] = true
	assert.Equal(t, []any{"x", "y"}, u.Args())
	assert.Equal(t, map[string]any{"k": 1}, u.Kwargs())

	assert.Equal(t, "f", u.Name())
	assert.Same(t, frame.TypeString, u.Type())
	assert.Equal(t, req, u.Resources())
}

func TestUDFBroadcastsScalar(t *testing.T) {
	apply := func([]any, map[string]any) (vector.Any, error) {
		return vector.NewConst(frame.TypeString, "x", 1, bitvec.Zero), nil
	}
	u := expr.NewUDF("f", apply, frame.TypeString, nil, nil, resource.Unset)
	out, err := u.Eval(batch(t, []string{"a"}, ints(1, 2, 3)))
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "x", "x"}, vector.Values(out))
}

func TestUDFLengthMismatch(t *testing.T) {
	apply := func([]any, map[string]any) (vector.Any, error) {
		return ints(1, 2), nil
	}
	u := expr.NewUDF("f", apply, frame.TypeInt64, nil, nil, resource.Unset)
	_, err := u.Eval(batch(t, []string{"a"}, ints(1, 2, 3)))
	require.ErrorIs(t, err, expr.ErrLengthMismatch)
	assert.EqualError(t, err, `result length does not match batch length: function "f" returned 2 values for 3 rows`)
}

func TestUDFErrorIsUnchanged(t *testing.T) {
	boom := errors.New("boom")
	apply := func([]any, map[string]any) (vector.Any, error) {
		return nil, boom
	}
	u := expr.NewUDF("f", apply, frame.TypeInt64, nil, nil, resource.Unset)
	_, err := u.Eval(batch(t, []string{"a"}, ints(1)))
	assert.Same(t, boom, err)
}

func TestUDFArgumentError(t *testing.T) {
	called := false
	apply := func([]any, map[string]any) (vector.Any, error) {
		called = true
		return ints(1), nil
	}
	u := expr.NewUDF("f", apply, frame.TypeInt64, []any{expr.NewDottedExpr("missing")}, nil, resource.Unset)
	_, err := u.Eval(batch(t, []string{"a"}, ints(1)))
	require.ErrorIs(t, err, expr.ErrMissingField)
	assert.False(t, called)
}

func TestNestedUDF(t *testing.T) {
	double := func(args []any, _ map[string]any) (vector.Any, error) {
		in := args[0].(*vector.Int)
		out := vector.NewIntEmpty(frame.TypeInt64, 0, bitvec.Zero)
		for _, v := range in.Values {
			out.Append(2 * v)
		}
		return out, nil
	}
	inner := expr.NewUDF("double", double, frame.TypeInt64, []any{expr.NewDottedExpr("a")}, nil, resource.Unset)
	outer := expr.NewUDF("double", double, frame.TypeInt64, []any{inner}, nil, resource.Unset)
	out, err := outer.Eval(batch(t, []string{"a"}, ints(1, 2, 3)))
	require.NoError(t, err)
	assert.Equal(t, []any{int64(4), int64(8), int64(12)}, vector.Values(out))
}

func TestWalk(t *testing.T) {
	a := expr.NewDottedExpr("a")
	b := expr.NewDottedExpr("b")
	inner := expr.NewUDF("inner", nil, frame.TypeInt64, []any{a, 1}, nil, resource.Unset)
	outer := expr.NewUDF("outer", nil, frame.TypeInt64, []any{inner}, map[string]any{"z": b, "y": "lit"}, resource.Unset)
	assert.Equal(t, []expr.Evaluator{inner, b}, outer.Children())

	var names []string
	expr.Walk(outer, func(e expr.Evaluator) bool {
		if u, ok := e.(*expr.UDF); ok {
			names = append(names, u.Name())
		}
		return true
	})
	assert.Equal(t, []string{"outer", "inner"}, names)

	var n int
	expr.Walk(outer, func(expr.Evaluator) bool {
		n++
		return false
	})
	assert.Equal(t, 1, n)
}

func TestLiteral(t *testing.T) {
	lit, err := expr.NewLiteral(2)
	require.NoError(t, err)
	assert.Same(t, frame.TypeInt64, lit.Type())
	out, err := lit.Eval(batch(t, []string{"a"}, ints(5, 6, 7)))
	require.NoError(t, err)
	assert.Equal(t, []any{int64(2), int64(2), int64(2)}, vector.Values(out))

	_, err = expr.NewLiteral([]int64{1, 2})
	assert.EqualError(t, err, "literal must be a scalar: []int64")
}

func TestDotExpr(t *testing.T) {
	inner := batch(t, []string{"b"}, ints(1, 2))
	in := batch(t, []string{"a"}, inner)
	out, err := expr.NewDottedExpr("a", "b").Eval(in)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2)}, vector.Values(out))

	_, err = expr.NewDottedExpr("a", "b", "c").Eval(in)
	assert.ErrorIs(t, err, expr.ErrNotRecord)

	_, err = expr.NewDottedExpr("x").Eval(in)
	assert.ErrorIs(t, err, expr.ErrMissingField)
}
