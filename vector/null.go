package vector

import "github.com/brimdata/frame"

type Null struct {
	len uint32
}

var _ Any = (*Null)(nil)

func NewNull(n uint32) *Null {
	return &Null{n}
}

func (*Null) Type() frame.Type {
	return frame.TypeNull
}

func (n *Null) Len() uint32 {
	return n.len
}
