package udf

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/brimdata/frame/vector"
)

// Materialize converts every vector in args and kwargs to its Arrow array
// form and leaves every other value as is.  Positions and keys are
// preserved.  The returned function releases the arrays and must be called
// once the caller is done with them.  An allocator that cannot satisfy a
// request may panic with an error, which Materialize returns.
func Materialize(mem memory.Allocator, args []any, kwargs map[string]any) ([]any, map[string]any, func(), error) {
	var arrays []arrow.Array
	release := func() {
		for _, arr := range arrays {
			arr.Release()
		}
	}
	convert := func(v any) (out any, err error) {
		vec, ok := v.(vector.Any)
		if !ok {
			return v, nil
		}
		defer func() {
			if r := recover(); r != nil {
				e, ok := r.(error)
				if !ok {
					panic(r)
				}
				err = e
			}
		}()
		arr, err := vector.ToArrow(mem, vec)
		if err != nil {
			return nil, err
		}
		arrays = append(arrays, arr)
		return arr, nil
	}
	outArgs := make([]any, len(args))
	for k, arg := range args {
		v, err := convert(arg)
		if err != nil {
			release()
			return nil, nil, nil, err
		}
		outArgs[k] = v
	}
	var outKwargs map[string]any
	if kwargs != nil {
		outKwargs = make(map[string]any, len(kwargs))
		for key, arg := range kwargs {
			v, err := convert(arg)
			if err != nil {
				release()
				return nil, nil, nil, err
			}
			outKwargs[key] = v
		}
	}
	return outArgs, outKwargs, release, nil
}
