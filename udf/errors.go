package udf

import (
	"errors"
	"fmt"
)

var (
	ErrInitialization   = errors.New("user-defined function initialization failed")
	ErrInvocation       = errors.New("user-defined function invocation failed")
	ErrDuplicateKeyword = errors.New("duplicate keyword argument")
	ErrTooFewArgs       = errors.New("too few arguments")
	ErrTooManyArgs      = errors.New("too many arguments")
)

type Op string

const (
	OpInitialize Op = "initialize"
	OpInvoke     Op = "invoke"
)

// Error attaches the name of a user-defined function to an error returned
// by its constructor or its Call method.  Err is the original error and
// Error returns its message unchanged so that errors.Is, errors.As and
// the message all match what the user code returned.
type Error struct {
	Name string
	Op   Op
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Op, so that
// errors.Is(err, ErrInvocation) matches any failed call.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInitialization:
		return e.Op == OpInitialize
	case ErrInvocation:
		return e.Op == OpInvoke
	}
	return false
}

// PanicError is returned in place of a panic raised by user code.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

func checkArgCount(narg, argmin, argmax int) error {
	if argmin != -1 && narg < argmin {
		return ErrTooFewArgs
	}
	if argmax != -1 && narg > argmax {
		return ErrTooManyArgs
	}
	return nil
}

var errNilInstance = errors.New("constructor returned a nil instance")
