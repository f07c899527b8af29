package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

type String struct {
	Values []string
	Nulls  bitvec.Bits
}

var _ Any = (*String)(nil)

func NewString(values []string, nulls bitvec.Bits) *String {
	return &String{Values: values, Nulls: nulls}
}

func (s *String) Type() frame.Type {
	return frame.TypeString
}

func (s *String) Len() uint32 {
	return uint32(len(s.Values))
}

func (s *String) Value(slot uint32) string {
	return s.Values[slot]
}
