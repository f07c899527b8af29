package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

type Float struct {
	Typ    frame.Type
	Values []float64
	Nulls  bitvec.Bits
}

var _ Any = (*Float)(nil)

func NewFloat(typ frame.Type, values []float64, nulls bitvec.Bits) *Float {
	return &Float{Typ: typ, Values: values, Nulls: nulls}
}

func NewFloatEmpty(typ frame.Type, length uint32, nulls bitvec.Bits) *Float {
	return NewFloat(typ, make([]float64, 0, length), nulls)
}

func (f *Float) Append(v float64) {
	f.Values = append(f.Values, v)
}

func (f *Float) Type() frame.Type {
	return f.Typ
}

func (f *Float) Len() uint32 {
	return uint32(len(f.Values))
}

func (f *Float) Value(slot uint32) float64 {
	return f.Values[slot]
}
