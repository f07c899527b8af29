package udf

import (
	"fmt"

	"github.com/brimdata/frame"
	"github.com/brimdata/frame/runtime/vam/expr"
)

// Keyword is a keyword argument to a Constructor.
type Keyword struct {
	Name  string
	Value any
}

func Kw(name string, value any) Keyword {
	return Keyword{Name: name, Value: value}
}

// Constructor builds a UDF node.  Arguments that implement expr.Evaluator
// are evaluated against each batch and the rest are bound as is.  Keyword
// arguments are given with Kw and may appear anywhere among args.
type Constructor func(args ...any) (*expr.UDF, error)

// Decorator turns a Descriptor into a Constructor.
type Decorator func(Descriptor) Constructor

// Register binds desc to a return type and options.  returnType is anything
// accepted by frame.ResolveType.  Every node built by the returned
// Constructor shares a single Wrapper.
func Register(desc Descriptor, returnType any, opts ...Option) (Constructor, error) {
	decorate, err := Deferred(returnType, opts...)
	if err != nil {
		return nil, err
	}
	return decorate(desc), nil
}

// Deferred resolves returnType and opts and returns a Decorator that binds
// them to a Descriptor supplied later.
func Deferred(returnType any, opts ...Option) (Decorator, error) {
	typ, err := frame.ResolveType(returnType)
	if err != nil {
		return nil, err
	}
	c := newConfig(opts)
	resources, err := c.resources()
	if err != nil {
		return nil, err
	}
	return func(desc Descriptor) Constructor {
		w := newWrapper(desc, c)
		return func(args ...any) (*expr.UDF, error) {
			if err := desc.validate(); err != nil {
				return nil, err
			}
			var positional []any
			var kwargs map[string]any
			for _, arg := range args {
				kw, ok := arg.(Keyword)
				if !ok {
					positional = append(positional, arg)
					continue
				}
				if kwargs == nil {
					kwargs = make(map[string]any)
				}
				if _, ok := kwargs[kw.Name]; ok {
					return nil, fmt.Errorf("udf %q: %w: %s", desc.name, ErrDuplicateKeyword, kw.Name)
				}
				kwargs[kw.Name] = kw.Value
			}
			if err := checkArgCount(len(positional), c.argmin, c.argmax); err != nil {
				return nil, fmt.Errorf("udf %q: %w: got %d", desc.name, err, len(positional))
			}
			return expr.NewUDF(desc.name, w.Apply, typ, positional, kwargs, resources), nil
		}
	}, nil
}
