package expr

import (
	"fmt"

	"github.com/brimdata/frame/vector"
)

type This struct{}

func (*This) Eval(this vector.Any) (vector.Any, error) {
	return this, nil
}

type DotExpr struct {
	record Evaluator
	field  string
}

var _ Parent = (*DotExpr)(nil)

func NewDotExpr(record Evaluator, field string) *DotExpr {
	return &DotExpr{
		record: record,
		field:  field,
	}
}

// NewDottedExpr returns an Evaluator for the column reached by following
// path from the batch, e.g., NewDottedExpr("a", "b") for this.a.b.
func NewDottedExpr(path ...string) Evaluator {
	ret := Evaluator(&This{})
	for _, name := range path {
		ret = NewDotExpr(ret, name)
	}
	return ret
}

func (d *DotExpr) Eval(this vector.Any) (vector.Any, error) {
	vec, err := d.record.Eval(this)
	if err != nil {
		return nil, err
	}
	rec, ok := vec.(*vector.Record)
	if !ok {
		return nil, fmt.Errorf("%w: cannot access field %q of %T", ErrNotRecord, d.field, vec)
	}
	field, ok := rec.Field(d.field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, d.field)
	}
	return field, nil
}

func (d *DotExpr) Children() []Evaluator {
	return []Evaluator{d.record}
}
