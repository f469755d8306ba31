// Package color provides color profile detection and the ANSI palette used
// by dracfetch.
//
// It implements the NO_COLOR convention (https://no-color.org/) and
// automatic pipe/redirect detection. When color is disabled, lipgloss is
// set to the Ascii profile so all styled renders produce plain text.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ShouldDisableColor returns true if color output should be suppressed.
// This happens when:
//   - The NO_COLOR environment variable is set (any value, per https://no-color.org/)
//   - stdout is not a terminal (pipe or redirect)
func ShouldDisableColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return true
	}

	return false
}

// Apply configures the global lipgloss renderer based on ShouldDisableColor
// and returns a Stylizer that agrees with it.
// When color is disabled, lipgloss.SetColorProfile(termenv.Ascii) is called
// so that every lipgloss.Style.Render() produces plain text.
func Apply() *Stylizer {
	if ShouldDisableColor() {
		ForceDisable()
		return NewStylizer(false)
	}
	return NewStylizer(true)
}

// ForceDisable sets the lipgloss color profile to Ascii, unconditionally
// disabling all color output. This is useful for tests and --json output.
func ForceDisable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// StripANSI removes all ANSI escape sequences from a string.
// CSI sequences end at their final letter; OSC and APC strings end at BEL
// or the ESC \ string terminator.
func StripANSI(s string) string {
	var result []byte
	const (
		plain = iota
		escape
		csi
		str
		strEsc
	)
	state := plain
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case plain:
			if c == '\x1b' {
				state = escape
				continue
			}
			result = append(result, c)
		case escape:
			switch c {
			case '[':
				state = csi
			case ']', '_', 'P':
				state = str
			default:
				state = plain
			}
		case csi:
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '~' {
				state = plain
			}
		case str:
			if c == '\a' {
				state = plain
			} else if c == '\x1b' {
				state = strEsc
			}
		case strEsc:
			state = plain
		}
	}
	return string(result)
}
