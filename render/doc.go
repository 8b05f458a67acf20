// Package render implements the two-mode rendering protocol and the
// string-building entry points on top of it.
//
// # Rendering Modes
//
// Plain is the canonical, undecorated form; Literal is the quoted,
// self-describing form. Types participate by implementing the
// capability interfaces from the root package:
//
//	PlainRenderer    - RenderPlain(Sink) error
//	LiteralRenderer  - RenderLiteral(Sink) error
//
// Builtin types need no capability: strings and byte slices render
// verbatim (plain) or quoted (literal); numbers and booleans render
// via strconv in both modes. A value with only a literal form is
// rendered literally even when plain output was requested. Opaque
// values fall back to fmt.
//
// # Layering
//
//	WritePlain / WriteLiteral   single value, no locking (for nesting)
//	Plain / Literal             top-level, one lock scope per call
//	String / Repr / JoinString  materialized via BuildString
//
// Nothing here buffers internally: every write goes straight to the
// sink, so arbitrarily large output never accumulates in memory
// unless the caller chose a buffer sink.
//
// # String Building
//
// BuildString captures everything a callback writes into a private
// pooled buffer and returns it as a string. Size hints pre-size the
// buffer; they never change the output. On error the partial content
// is discarded and only the error is returned.
package render
