package expr

import (
	"errors"

	"github.com/brimdata/frame/vector"
)

var (
	ErrLengthMismatch = errors.New("result length does not match batch length")
	ErrMissingField   = errors.New("missing field")
	ErrNotRecord      = errors.New("not a record")
)

// Evaluator is a node of an expression tree.  Eval computes the node's
// value for each slot of the batch this.
type Evaluator interface {
	Eval(this vector.Any) (vector.Any, error)
}

// Parent is implemented by nodes that have Evaluator operands.
type Parent interface {
	Children() []Evaluator
}

// Walk calls visit for e and then, if visit returns true, for each of e's
// descendants in depth-first order.
func Walk(e Evaluator, visit func(Evaluator) bool) {
	if !visit(e) {
		return
	}
	if p, ok := e.(Parent); ok {
		for _, child := range p.Children() {
			Walk(child, visit)
		}
	}
}
