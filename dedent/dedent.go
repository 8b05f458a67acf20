package dedent

import "strings"

// DefaultTabWidth is the column-rounding unit a tab advances to.
const DefaultTabWidth = 8

// Measure scans line's leading whitespace and returns its width in
// columns under tab stops of tabWidth. A space is one column; a tab
// advances to the next tab-stop multiple. blank is true only if the
// scan consumed the whole line, i.e. the line has no content.
func Measure(line string, tabWidth int) (width int, blank bool) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width = (width + tabWidth) / tabWidth * tabWidth
		default:
			return width, false
		}
	}
	return width, true
}

// MinIndent returns the minimum measured indentation over all
// non-blank lines of text, or 0 if every line is blank. This is the
// target Unindent expects by convention.
func MinIndent(text string, tabWidth int) int {
	minWidth := -1
	for _, line := range strings.Split(text, "\n") {
		w, blank := Measure(line, tabWidth)
		if blank {
			continue
		}
		if minWidth < 0 || w < minWidth {
			minWidth = w
		}
	}
	if minWidth < 0 {
		return 0
	}
	return minWidth
}

// Unindent strips target columns of leading whitespace from every
// line of text in a single forward pass.
//
// Columns, not bytes, are the unit of truncation: tabs make the two
// diverge. While still inside a line's leading whitespace ("cutting"),
// spaces and tabs only advance a column counter; the first newline or
// content character flushes max(0, column-target) literal spaces, so a
// tab straddling the cut boundary degrades to the spaces left of it
// past the target. Tabs in the body of a line are re-expanded to the
// spaces they would have occupied at the original column position,
// keeping all output lines comparable under a fixed-width rendering.
//
// Lines indented less than target clamp to zero leading columns; an
// unterminated all-whitespace trailing line is flushed exactly as a
// newline would have flushed it. A target of 0 returns text unchanged.
//
// Callers supply the minimum measured indentation (see MinIndent) as
// target; Unindent does not validate this.
func Unindent(text string, target, tabWidth int) string {
	if target == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	col := 0
	cutting := true
	for i := 0; i < len(text); i++ {
		c := text[i]
		if cutting {
			switch c {
			case ' ':
				col++
			case '\t':
				col = (col + tabWidth) / tabWidth * tabWidth
			case '\n':
				writeSpaces(&b, col-target)
				b.WriteByte('\n')
				col = 0
			default:
				writeSpaces(&b, col-target)
				b.WriteByte(c)
				col++
				cutting = false
			}
			continue
		}
		switch c {
		case '\t':
			next := (col + tabWidth) / tabWidth * tabWidth
			writeSpaces(&b, next-col)
			col = next
		case '\n':
			b.WriteByte('\n')
			col = 0
			cutting = true
		default:
			b.WriteByte(c)
			col++
		}
	}
	if cutting {
		// Trailing line with no newline to trigger the flush.
		writeSpaces(&b, col-target)
	}

	return b.String()
}

// Dedent strips the minimum common indentation from text under the
// default tab width.
func Dedent(text string) string {
	return Unindent(text, MinIndent(text, DefaultTabWidth), DefaultTabWidth)
}

func writeSpaces(b *strings.Builder, n int) {
	for ; n > 0; n-- {
		b.WriteByte(' ')
	}
}
