package render

import (
	"strconv"

	"github.com/wippyai/textkit"
	"github.com/wippyai/textkit/errors"
)

// Join writes each item's plain form separated by delim, except the
// final boundary, which uses lastDelim. This is the natural-language
// "A, B and C" pattern: which separator to emit at a boundary depends
// on whether the upcoming item is the last one.
//
// Zero items write nothing; one item writes no delimiter at all.
func Join(s textkit.Sink, items []any, delim, lastDelim string) error {
	s.Lock()
	defer s.Unlock()
	for i, item := range items {
		if i > 0 {
			sep := delim
			if i == len(items)-1 {
				sep = lastDelim
			}
			if _, err := s.WriteString(sep); err != nil {
				return errors.New(errors.PhaseRender, errors.KindSinkFailure).
					Cause(err).
					Detail("write delimiter").
					Build()
			}
		}
		if err := WritePlain(s, item); err != nil {
			return errors.New(errors.PhaseRender, errors.KindSinkFailure).
				Path("item[" + strconv.Itoa(i) + "]").
				Cause(err).
				Detail("write item").
				Build()
		}
	}
	return nil
}

// JoinString is the collection form of Join, materialized via
// BuildString with no size hint.
func JoinString(items []any, delim, lastDelim string) (string, error) {
	return BuildString(0, func(s textkit.Sink) error {
		return Join(s, items, delim, lastDelim)
	})
}
