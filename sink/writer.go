package sink

import (
	"io"
	"sync"
	"unicode/utf8"

	"github.com/wippyai/textkit"
	"github.com/wippyai/textkit/errors"
)

// Writer adapts an io.Writer shared between goroutines into a Sink.
//
// Lock/Unlock guard the underlying writer; the write methods do not
// lock themselves, since top-level render calls hold the lock for one
// whole logical call. Write failures come back as sink-phase errors
// with the underlying writer's error as the unchanged cause; the
// writer owns durability, not this adapter.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

var _ textkit.Sink = (*Writer)(nil)

// NewWriter wraps w in a lockable sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, errors.SinkFailure(errors.PhaseSink, nil, err)
	}
	return n, nil
}

func (s *Writer) WriteString(str string) (int, error) {
	n, err := io.WriteString(s.w, str)
	if err != nil {
		return n, errors.SinkFailure(errors.PhaseSink, nil, err)
	}
	return n, nil
}

func (s *Writer) WriteRune(r rune) (int, error) {
	var scratch [utf8.UTFMax]byte
	n, err := s.w.Write(scratch[:utf8.EncodeRune(scratch[:], r)])
	if err != nil {
		return n, errors.SinkFailure(errors.PhaseSink, nil, err)
	}
	return n, nil
}

func (s *Writer) Lock() {
	s.mu.Lock()
}

func (s *Writer) Unlock() {
	s.mu.Unlock()
}
