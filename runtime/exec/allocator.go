package exec

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

var ErrMemoryLimit = errors.New("memory limit exceeded")

// limitAllocator fails allocations that would take the bytes held by all
// of its users past limit.  An Arrow allocator cannot return an error so
// the failure is a panic with an error wrapping ErrMemoryLimit, which
// udf.Materialize turns back into an error.
type limitAllocator struct {
	mem   memory.Allocator
	limit int64
	used  atomic.Int64
}

var _ memory.Allocator = (*limitAllocator)(nil)

func newLimitAllocator(mem memory.Allocator, limit int64) *limitAllocator {
	return &limitAllocator{mem: mem, limit: limit}
}

func (l *limitAllocator) reserve(n int64) {
	if used := l.used.Add(n); n > 0 && used > l.limit {
		l.used.Add(-n)
		panic(fmt.Errorf("%w: %d bytes requested with %d of %d in use", ErrMemoryLimit, n, used-n, l.limit))
	}
}

func (l *limitAllocator) Allocate(size int) []byte {
	l.reserve(int64(size))
	return l.mem.Allocate(size)
}

func (l *limitAllocator) Reallocate(size int, b []byte) []byte {
	l.reserve(int64(size - len(b)))
	return l.mem.Reallocate(size, b)
}

func (l *limitAllocator) Free(b []byte) {
	l.used.Add(-int64(len(b)))
	l.mem.Free(b)
}
