package sink

import (
	"unicode/utf8"

	"github.com/wippyai/textkit"
)

// Buffer is a growable in-memory sink. The zero value is ready to use.
//
// A Buffer is owned by a single builder for its whole lifetime, so
// Lock/Unlock are no-ops and writes never fail. The logical length
// never exceeds the allocated capacity; String materializes exactly
// the logical length.
type Buffer struct {
	buf []byte
}

var _ textkit.Sink = (*Buffer)(nil)

// NewBuffer returns a Buffer pre-sized to capacity bytes.
// Oversizing costs allocation, never correctness.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

func (b *Buffer) WriteRune(r rune) (int, error) {
	n := len(b.buf)
	b.buf = utf8.AppendRune(b.buf, r)
	return len(b.buf) - n, nil
}

// Len returns the logical length in bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Bytes returns the accumulated bytes. The slice is only valid until
// the next write or Reset.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// String copies the accumulated bytes into an immutable string of
// exactly the logical length.
func (b *Buffer) String() string {
	return string(b.buf)
}

// Reset clears the buffer for reuse, keeping the allocation.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Grow ensures space for another n bytes without reallocation.
func (b *Buffer) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(b.buf)-len(b.buf) >= n {
		return
	}
	grown := make([]byte, len(b.buf), len(b.buf)+n)
	copy(grown, b.buf)
	b.buf = grown
}

// Lock is a no-op; a Buffer is never shared between goroutines.
func (b *Buffer) Lock() {}

// Unlock is a no-op.
func (b *Buffer) Unlock() {}
