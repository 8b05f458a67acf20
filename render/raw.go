package render

import "github.com/wippyai/textkit"

// Raw is text passed through verbatim in both render modes. If the
// surrounding syntax terminates raw text with a quote character, the
// caller escapes that delimiter before constructing the Raw; this
// package never touches it.
type Raw string

var (
	_ textkit.PlainRenderer   = Raw("")
	_ textkit.LiteralRenderer = Raw("")
)

func (r Raw) RenderPlain(s textkit.Sink) error {
	_, err := s.WriteString(string(r))
	return err
}

func (r Raw) RenderLiteral(s textkit.Sink) error {
	_, err := s.WriteString(string(r))
	return err
}
