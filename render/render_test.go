package render

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/wippyai/textkit"
	tkerrors "github.com/wippyai/textkit/errors"
	"github.com/wippyai/textkit/sink"
)

type onlyLiteral struct{}

func (onlyLiteral) RenderLiteral(s textkit.Sink) error {
	_, err := s.WriteString("<literal>")
	return err
}

type bothForms struct{}

func (bothForms) RenderPlain(s textkit.Sink) error {
	_, err := s.WriteString("<plain>")
	return err
}

func (bothForms) RenderLiteral(s textkit.Sink) error {
	_, err := s.WriteString("<literal>")
	return err
}

var errRender = errors.New("render exploded")

type failingRenderable struct{}

func (failingRenderable) RenderPlain(s textkit.Sink) error {
	s.WriteString("partial")
	return errRender
}

type stringerVal struct{}

func (stringerVal) String() string { return "stringer" }

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   string
	}{
		{"mixed_scalars", []any{"a", 1, true}, "a1true"},
		{"no_values", nil, ""},
		{"single_string", []any{"hello"}, "hello"},
		{"bytes", []any{[]byte("raw")}, "raw"},
		{"numbers", []any{int8(-3), uint16(9), int64(1 << 40)}, "-391099511627776"},
		{"float", []any{1.5}, "1.5"},
		{"nil", []any{nil}, "nil"},
		{"stringer", []any{stringerVal{}}, "stringer"},
		{"error_value", []any{errors.New("boom")}, "boom"},
		{"capability_plain", []any{bothForms{}}, "<plain>"},
		{"fallback_to_literal", []any{onlyLiteral{}}, "<literal>"},
		{"raw_passthrough", []any{Raw(`a "raw" \n block`)}, `a "raw" \n block`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.values...)
			if err != nil {
				t.Fatalf("String failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

// String must equal the sink-concatenation of WritePlain per value,
// in order, with no separators.
func TestStringIsConcatenation(t *testing.T) {
	values := []any{"x", 42, false, 2.25, onlyLiteral{}, Raw("|")}

	var b sink.Buffer
	for _, v := range values {
		if err := WritePlain(&b, v); err != nil {
			t.Fatalf("WritePlain(%v) failed: %v", v, err)
		}
	}

	got, err := String(values...)
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}
	if got != b.String() {
		t.Errorf("String = %q, concatenation = %q", got, b.String())
	}
}

func TestRepr(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string_quoted", "a\tb", `"a\tb"`},
		{"string_with_quote", `he said "hi"`, `"he said \"hi\""`},
		{"empty_string", "", `""`},
		{"int_self_describing", 42, "42"},
		{"bool", true, "true"},
		{"nil", nil, "nil"},
		{"capability_literal", bothForms{}, "<literal>"},
		{"raw_passthrough", Raw(`"`), `"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Repr(tt.value)
			if err != nil {
				t.Fatalf("Repr failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Repr(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSizeHint(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"string", "hello", 5},
		{"bytes", []byte("abc"), 3},
		{"raw", Raw("rawtext"), 7},
		{"bool", false, 5},
		{"int", 7, numericSizeHint},
		{"float", 3.14, numericSizeHint},
		{"opaque", struct{}{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SizeHint(tt.value); got != tt.want {
				t.Errorf("SizeHint(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

// Hints affect allocation only; output must be byte-identical across
// any non-negative hint.
func TestBuildStringHintIndependence(t *testing.T) {
	write := func(s textkit.Sink) error {
		return Plain(s, "some ", "content ", 12345, " across ", "writes")
	}

	want, err := BuildString(0, write)
	if err != nil {
		t.Fatalf("BuildString failed: %v", err)
	}
	for _, hint := range []int{0, 1, 7, len(want), 4096, 1 << 20} {
		got, err := BuildString(hint, write)
		if err != nil {
			t.Fatalf("BuildString(hint=%d) failed: %v", hint, err)
		}
		if got != want {
			t.Errorf("hint %d changed output: %q vs %q", hint, got, want)
		}
	}
}

func TestBuildStringDiscardsPartialOnError(t *testing.T) {
	got, err := BuildString(8, func(s textkit.Sink) error {
		s.WriteString("partial output")
		return errRender
	})
	if !errors.Is(err, errRender) {
		t.Fatalf("error not propagated: %v", err)
	}
	if got != "" {
		t.Errorf("partial string leaked: %q", got)
	}
}

func TestStringErrorPropagation(t *testing.T) {
	got, err := String("ok", failingRenderable{}, "never reached")
	if got != "" {
		t.Errorf("partial string leaked: %q", got)
	}
	if !errors.Is(err, errRender) {
		t.Fatalf("cause lost: %v", err)
	}

	var structured *tkerrors.Error
	if !errors.As(err, &structured) {
		t.Fatalf("expected structured error, got %T", err)
	}
	if structured.Phase != tkerrors.PhaseRender || structured.Kind != tkerrors.KindSinkFailure {
		t.Errorf("wrong phase/kind: %s/%s", structured.Phase, structured.Kind)
	}
	if !strings.Contains(err.Error(), "arg[1]") {
		t.Errorf("argument position missing from %q", err.Error())
	}
}

func TestWriteLiteralOpaqueFallback(t *testing.T) {
	var b sink.Buffer
	type point struct{ X, Y int }
	if err := WriteLiteral(&b, point{1, 2}); err != nil {
		t.Fatalf("WriteLiteral failed: %v", err)
	}
	want := fmt.Sprintf("%#v", point{1, 2})
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

// One top-level Plain call holds the sink's lock for all of its
// arguments, so concurrent writers never interleave a logical print.
func TestPlainLockScope(t *testing.T) {
	var out strings.Builder
	w := sink.NewWriter(&out)

	const writers = 8
	const rounds = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				if err := Plain(w, "writer=", id, " round=", r, "\n"); err != nil {
					t.Errorf("Plain failed: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != writers*rounds {
		t.Fatalf("got %d lines, want %d", len(lines), writers*rounds)
	}
	for _, line := range lines {
		var id, round int
		if _, err := fmt.Sscanf(line, "writer=%d round=%d", &id, &round); err != nil {
			t.Errorf("interleaved line %q", line)
		}
	}
}

func BenchmarkString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		String("request ", i, " handled in ", 1.25, "ms")
	}
}
