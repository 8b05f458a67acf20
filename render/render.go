package render

import (
	"fmt"
	"strconv"

	"github.com/wippyai/textkit"
	"github.com/wippyai/textkit/errors"
	"github.com/wippyai/textkit/escape"
)

// WritePlain renders a single value's canonical, undecorated form.
//
// Dispatch order: a PlainRenderer implementation wins; builtin Go
// types get canonical defaults; a value with only a literal form is
// rendered literally; anything else falls back to fmt.
//
// WritePlain never touches the sink's lock, so it is safe to call
// from inside a RenderPlain/RenderLiteral implementation. Callers at
// the top level use Plain instead.
func WritePlain(s textkit.Sink, v any) error {
	switch x := v.(type) {
	case textkit.PlainRenderer:
		return x.RenderPlain(s)
	case string:
		_, err := s.WriteString(x)
		return err
	case []byte:
		_, err := s.Write(x)
		return err
	case bool:
		_, err := s.WriteString(strconv.FormatBool(x))
		return err
	case int:
		_, err := s.WriteString(strconv.Itoa(x))
		return err
	case int8:
		_, err := s.WriteString(strconv.FormatInt(int64(x), 10))
		return err
	case int16:
		_, err := s.WriteString(strconv.FormatInt(int64(x), 10))
		return err
	case int32:
		_, err := s.WriteString(strconv.FormatInt(int64(x), 10))
		return err
	case int64:
		_, err := s.WriteString(strconv.FormatInt(x, 10))
		return err
	case uint:
		_, err := s.WriteString(strconv.FormatUint(uint64(x), 10))
		return err
	case uint8:
		_, err := s.WriteString(strconv.FormatUint(uint64(x), 10))
		return err
	case uint16:
		_, err := s.WriteString(strconv.FormatUint(uint64(x), 10))
		return err
	case uint32:
		_, err := s.WriteString(strconv.FormatUint(uint64(x), 10))
		return err
	case uint64:
		_, err := s.WriteString(strconv.FormatUint(x, 10))
		return err
	case float32:
		_, err := s.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
		return err
	case float64:
		_, err := s.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		return err
	case fmt.Stringer:
		_, err := s.WriteString(x.String())
		return err
	case error:
		_, err := s.WriteString(x.Error())
		return err
	case nil:
		_, err := s.WriteString("nil")
		return err
	default:
		// No canonical form; fall back to the literal one.
		if lr, ok := v.(textkit.LiteralRenderer); ok {
			return lr.RenderLiteral(s)
		}
		_, err := fmt.Fprintf(s, "%v", x)
		return err
	}
}

// WriteLiteral renders a single value's self-describing form: strings
// come out quoted and escaped, numbers and booleans as themselves.
// Like WritePlain it never touches the sink's lock.
func WriteLiteral(s textkit.Sink, v any) error {
	switch x := v.(type) {
	case textkit.LiteralRenderer:
		return x.RenderLiteral(s)
	case string:
		return escape.Quote(s, x)
	case []byte:
		return escape.Quote(s, string(x))
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, nil:
		// Numeric and boolean text is already self-describing.
		return WritePlain(s, x)
	default:
		_, err := fmt.Fprintf(s, "%#v", x)
		return err
	}
}

// Plain writes each value's plain form in argument order with no
// separators. The sink's lock is acquired once for the whole call and
// released on every exit path, so concurrent writers to a shared sink
// cannot interleave one logical print.
func Plain(s textkit.Sink, values ...any) error {
	s.Lock()
	defer s.Unlock()
	for i, v := range values {
		if err := WritePlain(s, v); err != nil {
			return errors.New(errors.PhaseRender, errors.KindSinkFailure).
				Path("arg[" + strconv.Itoa(i) + "]").
				Cause(err).
				Detail("write value").
				Build()
		}
	}
	return nil
}

// Literal writes one value's literal form under the sink's lock.
func Literal(s textkit.Sink, v any) error {
	s.Lock()
	defer s.Unlock()
	if err := WriteLiteral(s, v); err != nil {
		return errors.New(errors.PhaseRender, errors.KindSinkFailure).
			Cause(err).
			Detail("write literal").
			Build()
	}
	return nil
}
