package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

type Bytes struct {
	Values [][]byte
	Nulls  bitvec.Bits
}

var _ Any = (*Bytes)(nil)

func NewBytes(values [][]byte, nulls bitvec.Bits) *Bytes {
	return &Bytes{Values: values, Nulls: nulls}
}

func (b *Bytes) Type() frame.Type {
	return frame.TypeBytes
}

func (b *Bytes) Len() uint32 {
	return uint32(len(b.Values))
}

func (b *Bytes) Value(slot uint32) []byte {
	return b.Values[slot]
}
