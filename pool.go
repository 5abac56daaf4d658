package tacozip

import (
	"bufio"
	"io"
	"sync"
)

// byteBuffer is a growable scratch buffer that retains its backing
// array across reuse, the same shape as mebo's internal byte-buffer
// pool entries.
type byteBuffer struct {
	b []byte
}

// grow ensures the buffer has capacity for at least n bytes. When the
// capacity is too small, the buffer is replaced by a new n-byte slice
// and its previous contents are not kept.
func (bb *byteBuffer) grow(n int) {
	if cap(bb.b) >= n {
		return
	}
	bb.b = make([]byte, n)
}

// bytes returns the buffer's backing array sized to n bytes, growing
// it first if necessary.
func (bb *byteBuffer) bytes(n int) []byte {
	bb.grow(n)
	return bb.b[:n]
}

// byteBufferPool hands out reusable scratch buffers of a given
// default size, so repeated archive creation in one process doesn't
// allocate a fresh copy buffer every time. The output buffer is pooled
// separately by bufWriterPool.
type byteBufferPool struct {
	pool sync.Pool
}

func newByteBufferPool(defaultSize int) *byteBufferPool {
	return &byteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return &byteBuffer{b: make([]byte, defaultSize)}
			},
		},
	}
}

func (p *byteBufferPool) get() *byteBuffer {
	return p.pool.Get().(*byteBuffer)
}

func (p *byteBufferPool) put(bb *byteBuffer) {
	if bb == nil {
		return
	}
	p.pool.Put(bb)
}

var copyBufferPool = newByteBufferPool(defaultCopyBufferSize)

// bufWriterPool hands out *bufio.Writer instances whose backing array
// is allocated once and then reused across archive sessions via
// Reset, rather than reallocated by bufio.NewWriterSize on every
// Create call. This is the "large I/O buffer" of spec's §5: its
// storage must outlive the file handle's flush-on-close, so callers
// must Flush and close the wrapped file before returning the writer
// to the pool.
type bufWriterPool struct {
	pool sync.Pool
	size int
}

func newBufWriterPool(size int) *bufWriterPool {
	return &bufWriterPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return bufio.NewWriterSize(io.Discard, size)
			},
		},
	}
}

func (p *bufWriterPool) get(w io.Writer) *bufio.Writer {
	bw := p.pool.Get().(*bufio.Writer)
	bw.Reset(w)
	return bw
}

func (p *bufWriterPool) put(bw *bufio.Writer) {
	bw.Reset(io.Discard) // drop the reference to the closed file
	p.pool.Put(bw)
}

var outputBufferPools sync.Map // int (size) -> *bufWriterPool

func getOutputBufferPool(size int) *bufWriterPool {
	if v, ok := outputBufferPools.Load(size); ok {
		return v.(*bufWriterPool)
	}
	p := newBufWriterPool(size)
	actual, _ := outputBufferPools.LoadOrStore(size, p)
	return actual.(*bufWriterPool)
}
