package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

// Array is a vector of variable-length lists.  The elements of slot i are
// Values[Offsets[i]:Offsets[i+1]].
type Array struct {
	Typ     *frame.TypeArray
	Offsets []uint32
	Values  Any
	Nulls   bitvec.Bits
}

var _ Any = (*Array)(nil)

func NewArray(typ *frame.TypeArray, offsets []uint32, values Any, nulls bitvec.Bits) *Array {
	return &Array{Typ: typ, Offsets: offsets, Values: values, Nulls: nulls}
}

func (a *Array) Type() frame.Type {
	return a.Typ
}

func (a *Array) Len() uint32 {
	if len(a.Offsets) == 0 {
		return 0
	}
	return uint32(len(a.Offsets) - 1)
}
