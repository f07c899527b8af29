package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

type Bool struct {
	Bits  bitvec.Bits
	Nulls bitvec.Bits
}

var _ Any = (*Bool)(nil)

func NewBool(bits bitvec.Bits, nulls bitvec.Bits) *Bool {
	return &Bool{Bits: bits, Nulls: nulls}
}

func NewBoolFromSlice(values []bool, nulls bitvec.Bits) *Bool {
	bits := bitvec.NewFalse(uint32(len(values)))
	for k, v := range values {
		if v {
			bits.Set(uint32(k))
		}
	}
	return NewBool(bits, nulls)
}

func (b *Bool) Type() frame.Type {
	return frame.TypeBool
}

func (b *Bool) Len() uint32 {
	return b.Bits.Len()
}

func (b *Bool) Value(slot uint32) bool {
	return b.Bits.IsSet(slot)
}
