// Package errors provides structured error types for the textkit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes a position path and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRender, errors.KindSinkFailure).
//		Path("arg[2]").
//		Cause(writeErr).
//		Detail("write value").
//		Build()
//
// Or the convenience constructor for the common pattern:
//
//	err := errors.SinkFailure(errors.PhaseSink, nil, writeErr)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
