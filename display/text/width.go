// Package text measures and wraps terminal text.
//
// Widths are computed in terminal columns: ANSI escape runs occupy zero
// columns, East-Asian wide and emoji code points occupy two, and every other
// decodable code point occupies one. Invalid UTF-8 bytes are skipped.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

const esc = '\x1b'

// IsWide reports whether r occupies two terminal columns: its East Asian
// Width property is Wide or Fullwidth. Emoji with default emoji
// presentation are Wide.
func IsWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// RuneWidth returns the column width of a single decoded code point.
// NUL counts zero.
func RuneWidth(r rune) int {
	switch {
	case r == 0:
		return 0
	case IsWide(r):
		return 2
	default:
		return 1
	}
}

// Width returns the number of terminal columns s occupies.
//
// An ESC byte starts a zero-width run that ends at the first 'm' (SGR),
// '\\' (string terminator) or BEL byte. Bytes that do not decode as UTF-8
// count zero and the scan resumes at the following byte.
func Width(s string) int {
	cols := 0
	inEscape := false

	for i := 0; i < len(s); {
		c := s[i]

		if inEscape {
			if c == 'm' || c == '\\' || c == '\a' {
				inEscape = false
			}
			i++
			continue
		}

		if c == esc {
			inEscape = true
			i++
			continue
		}

		if c < utf8.RuneSelf {
			if c != 0 {
				cols++
			}
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		cols += RuneWidth(r)
		i += size
	}

	return cols
}

// MaxWidth returns the widest line in lines.
func MaxWidth(lines []string) int {
	maxW := 0
	for _, line := range lines {
		if w := Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

// PadRight appends spaces to s until it is cols columns wide. Strings that
// are already at least cols columns are returned unchanged.
func PadRight(s string, cols int) string {
	visible := Width(s)
	if visible >= cols {
		return s
	}
	return s + strings.Repeat(" ", cols-visible)
}
