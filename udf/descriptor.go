// Package udf turns user functions into expression nodes.
//
// A function is described by a Descriptor, which is either Stateless (a
// plain function called directly) or Stateful (a type constructed once per
// Wrapper before its first call).  Register and Deferred bind a Descriptor
// to a return type and resource hints and yield a Constructor that builds
// an expr.UDF node on each call.
package udf

//go:generate go tool mockgen -destination=mock/mock_callable.go -package=mock . Callable

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Callable is the contract for user code.  Positional arguments are passed
// in the order given to the Constructor and each argument that came from
// a column is an arrow.Array.  The result may be anything accepted by
// vector.FromResult.
type Callable interface {
	Call(args []any, kwargs map[string]any) (any, error)
}

type CallableFunc func(args []any, kwargs map[string]any) (any, error)

func (f CallableFunc) Call(args []any, kwargs map[string]any) (any, error) {
	return f(args, kwargs)
}

// Initializer may be implemented by the types given to ClassOf to do
// expensive setup, e.g., loading a model, when the instance is built.
type Initializer interface {
	Init() error
}

type Kind int

const (
	Stateless Kind = iota
	Stateful
)

func (k Kind) String() string {
	switch k {
	case Stateless:
		return "stateless"
	case Stateful:
		return "stateful"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var ErrInvalidDescriptor = errors.New("invalid descriptor")

// Descriptor describes user code.  The zero Descriptor is invalid.
type Descriptor struct {
	name string
	kind Kind
	fn   Callable
	new  func() (Callable, error)
}

// Func describes a stateless function.  If name is empty, the Go name
// of fn is used.
func Func(name string, fn func(args []any, kwargs map[string]any) (any, error)) Descriptor {
	if name == "" && fn != nil {
		name = funcName(fn)
	}
	var c Callable
	if fn != nil {
		c = CallableFunc(fn)
	}
	return Descriptor{name: name, kind: Stateless, fn: c}
}

// Object describes a stateless Callable value.
func Object(name string, c Callable) Descriptor {
	return Descriptor{name: name, kind: Stateless, fn: c}
}

// Class describes a stateful function.  newFn is called with no arguments
// to build the instance before its first call.
func Class(name string, newFn func() (Callable, error)) Descriptor {
	return Descriptor{name: name, kind: Stateful, new: newFn}
}

// ClassOf describes a stateful function built from the zero value of T.
// If *T implements Initializer, Init is called after allocation.  If name
// is empty, the name of T is used.
func ClassOf[T any, PT interface {
	*T
	Callable
}](name string) Descriptor {
	if name == "" {
		name = reflect.TypeFor[T]().Name()
	}
	return Class(name, func() (Callable, error) {
		c := PT(new(T))
		if i, ok := any(c).(Initializer); ok {
			if err := i.Init(); err != nil {
				return nil, err
			}
		}
		return c, nil
	})
}

func (d Descriptor) Name() string {
	return d.name
}

func (d Descriptor) Kind() Kind {
	return d.kind
}

func (d Descriptor) validate() error {
	if d.name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDescriptor)
	}
	switch d.kind {
	case Stateless:
		if d.fn == nil {
			return fmt.Errorf("%w: %q has no function", ErrInvalidDescriptor, d.name)
		}
	case Stateful:
		if d.new == nil {
			return fmt.Errorf("%w: %q has no constructor", ErrInvalidDescriptor, d.name)
		}
	default:
		return fmt.Errorf("%w: %q has unknown kind %s", ErrInvalidDescriptor, d.name, d.kind)
	}
	return nil
}

func funcName(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
