package render

import (
	"go.uber.org/zap"

	"github.com/wippyai/textkit"
	"github.com/wippyai/textkit/sink"
)

// Pre-size guess for numeric arguments: enough for any int64 and most
// floats without a second growth step.
const numericSizeHint = 16

// SizeHint estimates the rendered length of v in bytes. Text-like
// values hint their own length, numerics a fixed small constant, and
// opaque values 0 (unknown). Hints affect allocation only, never
// content.
func SizeHint(v any) int {
	switch x := v.(type) {
	case string:
		return len(x)
	case []byte:
		return len(x)
	case Raw:
		return len(x)
	case bool:
		return len("false")
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return numericSizeHint
	default:
		return 0
	}
}

// BuildString runs fn against a private pooled buffer pre-sized to
// hint bytes and materializes the result. On error the partial
// content is discarded; no partial string is ever returned.
func BuildString(hint int, fn func(s textkit.Sink) error) (string, error) {
	b := sink.GetBuffer()
	defer sink.PutBuffer(b)
	b.Grow(hint)
	if err := fn(b); err != nil {
		Logger().Debug("builder callback failed, discarding partial output",
			zap.Int("partial_bytes", b.Len()),
			zap.Error(err))
		return "", err
	}
	return b.String(), nil
}

// String renders each value's plain form in order and returns the
// concatenation. The size hint derives from the first argument.
func String(values ...any) (string, error) {
	hint := 0
	if len(values) > 0 {
		hint = SizeHint(values[0])
	}
	return BuildString(hint, func(s textkit.Sink) error {
		return Plain(s, values...)
	})
}

// Repr returns v's literal, self-describing form.
func Repr(v any) (string, error) {
	return BuildString(0, func(s textkit.Sink) error {
		return Literal(s, v)
	})
}
