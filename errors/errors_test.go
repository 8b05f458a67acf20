package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseRender,
				Kind:   KindSinkFailure,
				Path:   []string{"arg[1]"},
				Detail: "write value",
			},
			contains: []string{"[render]", "sink_failure", "arg[1]", "write value"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseSink,
				Kind:  KindSinkFailure,
			},
			contains: []string{"[sink]", "sink_failure"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseSink,
				Kind:   KindSinkFailure,
				Detail: "flush",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[sink]", "sink_failure", "flush", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseSink,
		Kind:  KindSinkFailure,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not follow the cause chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseRender,
		Kind:  KindSinkFailure,
		Path:  []string{"arg[0]"},
	}

	if !err.Is(&Error{Phase: PhaseRender, Kind: KindSinkFailure}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseSink, Kind: KindSinkFailure}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseRender, Kind: "other"}) {
		t.Error("Is should not match different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("disk full")
	err := New(PhaseSink, KindSinkFailure).
		Path("item[3]").
		Cause(cause).
		Detail("write %d bytes", 128).
		Build()

	if err.Phase != PhaseSink || err.Kind != KindSinkFailure {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "write 128 bytes" {
		t.Errorf("detail not formatted: %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause chain broken")
	}
}

func TestSinkFailure(t *testing.T) {
	cause := errors.New("pipe closed")
	err := SinkFailure(PhaseRender, []string{"arg[2]"}, cause)
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
	if !strings.Contains(err.Error(), "arg[2]") {
		t.Errorf("path missing from %q", err.Error())
	}
}
