package expr

import (
	"fmt"

	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector"
)

type Literal struct {
	val *vector.Const
}

var _ Evaluator = (*Literal)(nil)

// NewLiteral returns a Literal for the Go scalar val.
func NewLiteral(val any) (*Literal, error) {
	vec, err := vector.FromResult(val)
	if err != nil {
		return nil, err
	}
	c, ok := vec.(*vector.Const)
	if !ok {
		return nil, fmt.Errorf("literal must be a scalar: %T", val)
	}
	return &Literal{c}, nil
}

func (l *Literal) Type() frame.Type {
	return l.val.Type()
}

func (l *Literal) Eval(this vector.Any) (vector.Any, error) {
	return l.val.Resize(this.Len()), nil
}
