package sink

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 64 << 10 // max retained buffer capacity in bytes
	poolInitCap = 64
)

var bufPool = sync.Pool{
	New: func() any {
		return &Buffer{buf: make([]byte, 0, poolInitCap)}
	},
}

// GetBuffer returns an empty Buffer from the pool.
func GetBuffer() *Buffer {
	b := bufPool.Get().(*Buffer)
	b.Reset()
	return b
}

// PutBuffer returns a Buffer to the pool.
func PutBuffer(b *Buffer) {
	if b == nil || cap(b.buf) > poolMaxCap {
		return // reject oversized
	}
	b.Reset()
	bufPool.Put(b)
}
