// Package dedent measures and strips the indentation of multi-line
// text blocks, tab-aware.
//
// # Columns, Not Bytes
//
// A tab does not occupy a fixed number of columns; it advances to the
// next tab stop (a multiple of the tab width, default 8). Measurement
// and stripping therefore work in columns:
//
//	"\tfoo"      measures 8 under tab width 8
//	"   \tfoo"   also measures 8: three spaces, then the tab
//	             advances from column 3 to the next stop
//
// # Stripping
//
// Unindent makes a single forward pass with two modes. Inside a
// line's leading whitespace it only counts columns; at the first
// content character or newline it emits whatever part of the
// indentation survives the cut as literal spaces. Past the leading
// whitespace, tabs are normalized to the spaces they stood for at
// their original column, so truncating each line's left edge does not
// shift the body's alignment. Blank lines shorter than the cut come
// out empty, never negative.
//
// # Typical Use
//
//	block := dedent.Dedent(rawLiteral)
//
// or, when the target is measured once and reused:
//
//	target := dedent.MinIndent(text, dedent.DefaultTabWidth)
//	block := dedent.Unindent(text, target, dedent.DefaultTabWidth)
package dedent
