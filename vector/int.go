package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

type Int struct {
	Typ    frame.Type
	Values []int64
	Nulls  bitvec.Bits
}

var _ Any = (*Int)(nil)

func NewInt(typ frame.Type, values []int64, nulls bitvec.Bits) *Int {
	return &Int{Typ: typ, Values: values, Nulls: nulls}
}

func NewIntEmpty(typ frame.Type, length uint32, nulls bitvec.Bits) *Int {
	return NewInt(typ, make([]int64, 0, length), nulls)
}

func (i *Int) Append(v int64) {
	i.Values = append(i.Values, v)
}

func (i *Int) Type() frame.Type {
	return i.Typ
}

func (i *Int) Len() uint32 {
	return uint32(len(i.Values))
}

func (i *Int) Value(slot uint32) int64 {
	return i.Values[slot]
}
