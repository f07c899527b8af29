package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

type Uint struct {
	Typ    frame.Type
	Values []uint64
	Nulls  bitvec.Bits
}

var _ Any = (*Uint)(nil)

func NewUint(typ frame.Type, values []uint64, nulls bitvec.Bits) *Uint {
	return &Uint{Typ: typ, Values: values, Nulls: nulls}
}

func NewUintEmpty(typ frame.Type, length uint32, nulls bitvec.Bits) *Uint {
	return NewUint(typ, make([]uint64, 0, length), nulls)
}

func (u *Uint) Append(v uint64) {
	u.Values = append(u.Values, v)
}

func (u *Uint) Type() frame.Type {
	return u.Typ
}

func (u *Uint) Len() uint32 {
	return uint32(len(u.Values))
}

func (u *Uint) Value(slot uint32) uint64 {
	return u.Values[slot]
}
