package textkit

// Sink is an ordered destination for rendered text.
//
// Bytes appear in the sink in call order. Lock and Unlock bracket one
// logical render call when the sink is shared between goroutines;
// implementations backed by private storage may make them no-ops.
// Lock must not be re-acquired within the same logical call.
type Sink interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteRune(r rune) (int, error)
	Lock()
	Unlock()
}

// PlainRenderer is the capability for a value that has a canonical,
// undecorated text form (what a user should read).
type PlainRenderer interface {
	RenderPlain(s Sink) error
}

// LiteralRenderer is the capability for a value that has a
// self-describing, typically quoted text form (what a developer should
// read back). A value may implement either capability or both; plain
// rendering falls back to the literal form when only that is present.
type LiteralRenderer interface {
	RenderLiteral(s Sink) error
}
