// Package escape turns strings into well-formed quoted literals.
// Quote guarantees the delimiters and quote-escaping; how everything
// else is rendered is policy, supplied as a Func (Default escapes in
// the Go style).
package escape
