package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

// Const is a vector whose every slot holds the same value.  The value is
// a Go value of the representation used by the flat vector of its type,
// i.e., int64 for signed integers, uint64 for unsigned integers, float64
// for floats, string, []byte, or bool.
type Const struct {
	typ    frame.Type
	val    any
	length uint32
	Nulls  bitvec.Bits
}

var _ Any = (*Const)(nil)

func NewConst(typ frame.Type, val any, length uint32, nulls bitvec.Bits) *Const {
	return &Const{typ: typ, val: val, length: length, Nulls: nulls}
}

func (c *Const) Type() frame.Type {
	return c.typ
}

func (c *Const) Len() uint32 {
	return c.length
}

func (c *Const) Value() any {
	return c.val
}

// Resize returns a Const with the same value and n slots.
func (c *Const) Resize(n uint32) *Const {
	var nulls bitvec.Bits
	if c.val == nil {
		nulls = bitvec.NewTrue(n)
	}
	return NewConst(c.typ, c.val, n, nulls)
}
