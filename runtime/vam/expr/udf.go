package expr

import (
	"fmt"
	"maps"
	"slices"

	"github.com/brimdata/frame"
	"github.com/brimdata/frame/pkg/resource"
	"github.com/brimdata/frame/vector"
)

// ApplyFunc invokes a user-defined function.  Each argument is either the
// vector computed by an Evaluator argument or a value bound when the node
// was built.
type ApplyFunc func(args []any, kwargs map[string]any) (vector.Any, error)

// UDF is an expression node that calls a user-defined function.  A UDF is
// immutable once built.
type UDF struct {
	name      string
	apply     ApplyFunc
	typ       frame.Type
	args      []any
	kwargs    map[string]any
	resources resource.Request
}

var (
	_ Evaluator = (*UDF)(nil)
	_ Parent    = (*UDF)(nil)
)

// NewUDF returns a UDF node.  An element of args or a value of kwargs that
// implements Evaluator is evaluated against each batch; any other value is
// passed to apply unchanged.  NewUDF copies args and kwargs.
func NewUDF(name string, apply ApplyFunc, typ frame.Type, args []any, kwargs map[string]any, resources resource.Request) *UDF {
	return &UDF{
		name:      name,
		apply:     apply,
		typ:       typ,
		args:      slices.Clone(args),
		kwargs:    maps.Clone(kwargs),
		resources: resources,
	}
}

func (u *UDF) Name() string {
	return u.name
}

// Type returns the declared type of the function's output.
func (u *UDF) Type() frame.Type {
	return u.typ
}

func (u *UDF) Args() []any {
	return slices.Clone(u.args)
}

func (u *UDF) Kwargs() map[string]any {
	return maps.Clone(u.kwargs)
}

func (u *UDF) Resources() resource.Request {
	return u.resources
}

// Children returns the Evaluator arguments in positional order followed by
// keyword arguments in key order.
func (u *UDF) Children() []Evaluator {
	var out []Evaluator
	for _, arg := range u.args {
		if e, ok := arg.(Evaluator); ok {
			out = append(out, e)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(u.kwargs)) {
		if e, ok := u.kwargs[key].(Evaluator); ok {
			out = append(out, e)
		}
	}
	return out
}

func (u *UDF) Eval(this vector.Any) (vector.Any, error) {
	args := make([]any, len(u.args))
	for k, arg := range u.args {
		val, err := evalArg(arg, this)
		if err != nil {
			return nil, err
		}
		args[k] = val
	}
	var kwargs map[string]any
	if u.kwargs != nil {
		kwargs = make(map[string]any, len(u.kwargs))
		for key, arg := range u.kwargs {
			val, err := evalArg(arg, this)
			if err != nil {
				return nil, err
			}
			kwargs[key] = val
		}
	}
	out, err := u.apply(args, kwargs)
	if err != nil {
		return nil, err
	}
	if c, ok := out.(*vector.Const); ok && c.Len() == 1 {
		return c.Resize(this.Len()), nil
	}
	if out.Len() != this.Len() {
		return nil, fmt.Errorf("%w: function %q returned %d values for %d rows", ErrLengthMismatch, u.name, out.Len(), this.Len())
	}
	return out, nil
}

func evalArg(arg any, this vector.Any) (any, error) {
	if e, ok := arg.(Evaluator); ok {
		return e.Eval(this)
	}
	return arg, nil
}
