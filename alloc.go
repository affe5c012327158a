package strtab

import (
	"sync"
	"sync/atomic"
)

// Allocator supplies the raw byte blocks backing a builder's buffer.
// Implementations only need to hand out blocks of at least the wanted
// size and accept them back; [Heap] is the default.
type Allocator interface {
	Alloc(want int) []byte
	Free(b []byte)
}

// Heap allocates from the Go runtime and lets the GC reclaim.
type Heap struct{}

func (Heap) Alloc(want int) []byte { return make([]byte, want) }

func (Heap) Free(b []byte) {}

// BufferPool is a pooled allocator that recycles byte buffers across
// builders, with hit/miss counters.
type BufferPool struct {
	pool      *sync.Pool
	miss, hit atomic.Uint64
}

// NewBufferPool creates a new buffer pool instance.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: &sync.Pool{
			New: func() interface{} { return new([]byte) },
		},
	}
}

// Alloc returns a buffer with length of want.
func (p *BufferPool) Alloc(want int) []byte {
	buf := p.pool.Get().(*[]byte)

	if cap(*buf) < want {
		*buf = make([]byte, want)
		p.miss.Add(1)

	} else {
		*buf = (*buf)[:want]
		p.hit.Add(1)
	}

	return *buf
}

// Free adds the given buffer back to the pool.
func (p *BufferPool) Free(b []byte) {
	p.pool.Put(&b)
}

func (p *BufferPool) Miss() uint64 {
	return p.miss.Load()
}

func (p *BufferPool) Hit() uint64 {
	return p.hit.Load()
}
