package vector

import (
	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

// Any is a column of values that share a Type.
type Any interface {
	Type() frame.Type
	Len() uint32
}

func NullsOf(v Any) bitvec.Bits {
	switch v := v.(type) {
	case *Int:
		return v.Nulls
	case *Uint:
		return v.Nulls
	case *Float:
		return v.Nulls
	case *String:
		return v.Nulls
	case *Bytes:
		return v.Nulls
	case *Bool:
		return v.Nulls
	case *Const:
		return v.Nulls
	case *Array:
		return v.Nulls
	case *Record:
		return v.Nulls
	case *Null:
		return bitvec.NewTrue(v.Len())
	}
	panic(v)
}
