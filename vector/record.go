package vector

import (
	"fmt"

	"github.com/brimdata/frame"
	"github.com/brimdata/frame/vector/bitvec"
)

// Record is a set of named, equal-length columns.  A query engine hands
// a Record to an expression as one batch.
type Record struct {
	Typ    *frame.TypeRecord
	Fields []Any
	len    uint32
	Nulls  bitvec.Bits
}

var _ Any = (*Record)(nil)

func NewRecord(typ *frame.TypeRecord, fields []Any, length uint32, nulls bitvec.Bits) *Record {
	return &Record{Typ: typ, Fields: fields, len: length, Nulls: nulls}
}

// NewBatch builds a Record from parallel slices of column names and columns.
// All columns must have the same length.
func NewBatch(names []string, cols []Any) (*Record, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("batch has %d names but %d columns", len(names), len(cols))
	}
	var length uint32
	fields := make([]frame.Field, 0, len(names))
	for k, col := range cols {
		if k == 0 {
			length = col.Len()
		} else if col.Len() != length {
			return nil, fmt.Errorf("column %q has length %d (expected %d)", names[k], col.Len(), length)
		}
		fields = append(fields, frame.Field{Name: names[k], Type: col.Type()})
	}
	return NewRecord(frame.NewTypeRecord(fields), cols, length, bitvec.Zero), nil
}

func (r *Record) Type() frame.Type {
	return r.Typ
}

func (r *Record) Len() uint32 {
	return r.len
}

func (r *Record) Field(name string) (Any, bool) {
	if k, ok := r.Typ.IndexOfField(name); ok {
		return r.Fields[k], true
	}
	return nil, false
}
