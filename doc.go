// Package textkit provides a textual serialization toolkit: a two-mode
// rendering protocol (plain and literal), buffered string building,
// string-literal quoting, and a tab-aware dedent algorithm for
// multi-line text blocks.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	textkit/          Root package with the Sink and renderer capability interfaces
//	├── render/       Plain/literal dispatch, string building, joining
//	├── sink/         Growable byte buffers and mutex-guarded writer sinks
//	├── escape/       String-literal quoting and escape policies
//	├── dedent/       Indentation measurement and tab-aware stripping
//	└── errors/       Structured error types for debugging
//
// # Quick Start
//
// Render values to a string:
//
//	s, err := render.String("pid ", 42, " exited")
//	// "pid 42 exited"
//
//	s, err := render.Repr("a\tb")
//	// `"a\tb"`
//
// Join items the way prose does:
//
//	s, err := render.JoinString([]any{"x", "y", "z"}, ", ", " and ")
//	// "x, y and z"
//
// Normalize a block literal's indentation:
//
//	s := dedent.Dedent("    a\n      b\n    c")
//	// "a\n  b\nc"
//
// # Rendering Modes
//
// Every value can be rendered two ways:
//
//	Plain    - canonical, undecorated text (user-facing)
//	Literal  - self-describing, quoted/escaped text (developer-facing)
//
// Types opt in by implementing PlainRenderer and/or LiteralRenderer.
// Builtin Go types get sensible defaults; a type with only a literal
// form is rendered literally even when plain output was requested.
//
// # Sinks and Concurrency
//
// All rendering writes through a Sink. None of the operations here are
// internally concurrent; concurrency enters only when several
// goroutines share one sink. Top-level render calls hold the sink's
// lock for the whole call, so one logical print is never interleaved
// with another. sink.Buffer is private per builder and locks nothing;
// sink.Writer guards a shared io.Writer with a real mutex.
//
// # Error Handling
//
// Failures always bubble up unchanged. Errors use the structured types
// from the errors package:
//
//	[render] sink_failure at arg[1]: write value (caused by: broken pipe)
package textkit
