package escape

import (
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/textkit"
)

// Func renders one non-quote rune of a string literal's body. The
// quoting layer handles the surrounding quotes and the quote character
// itself; everything else is policy and goes through a Func.
type Func func(s textkit.Sink, r rune) error

// Quote emits str as a double-quoted literal using the Default escape
// policy. The output always contains exactly one opening and one
// closing unescaped quote; every interior quote appears escaped.
// Empty input yields exactly "".
func Quote(s textkit.Sink, str string) error {
	return QuoteWith(s, str, Default)
}

// QuoteWith is Quote with a caller-supplied escape policy.
//
// The body is decoded rune by rune; a byte that is not part of a
// valid UTF-8 sequence is emitted as \xNN rather than folded into
// U+FFFD, so quoting is lossless for strings holding arbitrary bytes.
func QuoteWith(s textkit.Sink, str string, esc Func) error {
	if _, err := s.WriteRune('"'); err != nil {
		return err
	}
	for i := 0; i < len(str); {
		r, size := utf8.DecodeRuneInString(str[i:])
		if r == utf8.RuneError && size == 1 {
			if err := writeHex(s, 'x', 2, uint32(str[i])); err != nil {
				return err
			}
			i++
			continue
		}
		i += size
		if r == '"' {
			if _, err := s.WriteString(`\"`); err != nil {
				return err
			}
			continue
		}
		if err := esc(s, r); err != nil {
			return err
		}
	}
	_, err := s.WriteRune('"')
	return err
}

// Default escapes in the Go style: backslash and the usual control
// shorthands as two-character sequences, other non-printables as
// \xNN, \uNNNN or \UNNNNNNNN, and printable runes verbatim.
func Default(s textkit.Sink, r rune) error {
	switch r {
	case '\\':
		_, err := s.WriteString(`\\`)
		return err
	case '\a':
		_, err := s.WriteString(`\a`)
		return err
	case '\b':
		_, err := s.WriteString(`\b`)
		return err
	case '\f':
		_, err := s.WriteString(`\f`)
		return err
	case '\n':
		_, err := s.WriteString(`\n`)
		return err
	case '\r':
		_, err := s.WriteString(`\r`)
		return err
	case '\t':
		_, err := s.WriteString(`\t`)
		return err
	case '\v':
		_, err := s.WriteString(`\v`)
		return err
	}
	if strconv.IsPrint(r) {
		_, err := s.WriteRune(r)
		return err
	}
	switch {
	case r < utf8.RuneSelf:
		return writeHex(s, 'x', 2, uint32(r))
	case r <= 0xFFFF:
		return writeHex(s, 'u', 4, uint32(r))
	default:
		return writeHex(s, 'U', 8, uint32(r))
	}
}

const hexDigits = "0123456789abcdef"

func writeHex(s textkit.Sink, verb byte, width int, v uint32) error {
	var buf [10]byte
	buf[0] = '\\'
	buf[1] = verb
	for i := width - 1; i >= 0; i-- {
		buf[2+i] = hexDigits[v&0xf]
		v >>= 4
	}
	_, err := s.Write(buf[:2+width])
	return err
}
