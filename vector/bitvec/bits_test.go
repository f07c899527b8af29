package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrueCount(t *testing.T) {
	assert.EqualValues(t, 0, Zero.TrueCount())
	b := NewFalse(128)
	b.bits[0] = 0xff
	b.bits[1] = 0xff << 56
	assert.EqualValues(t, 16, b.TrueCount())
	assert.EqualValues(t, 8, Bits{bits: []uint64{0xff, 0xff << 56}, length: 65}.TrueCount())
	assert.EqualValues(t, 15, Bits{bits: []uint64{0xff, 0xff << 56}, length: 127}.TrueCount())
	assert.EqualValues(t, 1, Bits{bits: []uint64{0xff}, length: 1}.TrueCount())
	assert.EqualValues(t, 70, NewTrue(70).TrueCount())
}

func TestSet(t *testing.T) {
	a := NewFalse(70)
	a.Set(0)
	a.Set(69)
	assert.True(t, a.IsSet(0))
	assert.True(t, a.IsSet(69))
	assert.False(t, a.IsSet(68))
	assert.False(t, Zero.IsSet(3))
	assert.EqualValues(t, 70, a.Len())
	assert.EqualValues(t, 2, a.TrueCount())
}
