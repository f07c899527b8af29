package udf

import (
	"reflect"
	"runtime/debug"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/brimdata/frame/vector"
	"go.uber.org/zap"
)

// Wrapper invokes the user code of a Descriptor.  A Stateful descriptor is
// constructed on the first call to Apply and the instance, or the error
// from constructing it, is kept for every later call.  A Wrapper is not
// safe for concurrent use.  Use Fork to get a Wrapper for another
// goroutine.
type Wrapper struct {
	desc    Descriptor
	logger  *zap.Logger
	mem     memory.Allocator
	metrics *Metrics

	ready    bool
	instance Callable
	err      error
}

// NewWrapper returns a Wrapper for desc.  Only the logging, allocator and
// metrics options apply to a Wrapper.
func NewWrapper(desc Descriptor, opts ...Option) *Wrapper {
	c := newConfig(opts)
	return newWrapper(desc, c)
}

func newWrapper(desc Descriptor, c config) *Wrapper {
	return &Wrapper{
		desc:    desc,
		logger:  c.logger.With(zap.String("udf", desc.name)),
		mem:     c.mem,
		metrics: c.metrics,
	}
}

func (w *Wrapper) Name() string {
	return w.desc.name
}

func (w *Wrapper) Kind() Kind {
	return w.desc.kind
}

// Fork returns an uninitialized Wrapper for the same descriptor.
func (w *Wrapper) Fork() *Wrapper {
	return &Wrapper{
		desc:    w.desc,
		logger:  w.logger,
		mem:     w.mem,
		metrics: w.metrics,
	}
}

// Apply calls the user code with args and kwargs.  Vectors among the
// arguments are passed as Arrow arrays and the result is converted back
// to a vector.  The arrays passed in are released when Apply returns.  An
// arrow.Array returned by the user code that is not one of them is owned
// by Apply and released after conversion.
func (w *Wrapper) Apply(args []any, kwargs map[string]any) (vector.Any, error) {
	fn, err := w.callable()
	if err != nil {
		return nil, err
	}
	args, kwargs, release, err := Materialize(w.mem, args, kwargs)
	if err != nil {
		return nil, err
	}
	defer release()
	start := time.Now()
	result, err := call(fn, args, kwargs)
	w.metrics.observeCall(w.desc.name, time.Since(start), err)
	if err != nil {
		w.logger.Error("call failed", zap.Error(err))
		return nil, &Error{Name: w.desc.name, Op: OpInvoke, Err: err}
	}
	if arr, ok := result.(arrow.Array); ok && !isNil(arr) && !isInput(arr, args, kwargs) {
		defer arr.Release()
	}
	return vector.FromResult(result)
}

func isInput(arr arrow.Array, args []any, kwargs map[string]any) bool {
	for _, arg := range args {
		if a, ok := arg.(arrow.Array); ok && a == arr {
			return true
		}
	}
	for _, arg := range kwargs {
		if a, ok := arg.(arrow.Array); ok && a == arr {
			return true
		}
	}
	return false
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (w *Wrapper) callable() (Callable, error) {
	if w.ready {
		return w.instance, w.err
	}
	w.ready = true
	if err := w.desc.validate(); err != nil {
		w.err = err
		return nil, err
	}
	if w.desc.kind == Stateless {
		w.instance = w.desc.fn
		return w.instance, nil
	}
	instance, err := construct(w.desc.new)
	w.metrics.observeInit(w.desc.name, err)
	if err != nil {
		w.logger.Error("initialization failed", zap.Error(err))
		w.err = &Error{Name: w.desc.name, Op: OpInitialize, Err: err}
		return nil, w.err
	}
	w.logger.Debug("initialized")
	w.instance = instance
	return instance, nil
}

func construct(newFn func() (Callable, error)) (c Callable, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	c, err = newFn()
	if err == nil && c == nil {
		err = errNilInstance
	}
	return c, err
}

func call(fn Callable, args []any, kwargs map[string]any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn.Call(args, kwargs)
}
