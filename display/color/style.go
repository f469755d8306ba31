package color

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme assigns colors to the three parts of a box row.
type Theme struct {
	Icon  Name
	Label Name
	Value Name
}

// DefaultTheme is cyan icons, yellow labels and white values.
var DefaultTheme = Theme{Icon: Cyan, Label: Yellow, Value: White}

// Swatch is the glyph drawn for each palette entry.
const Swatch = "◯"

// Stylizer paints text with palette colors. It owns its lipgloss renderer,
// so the profile it paints with does not depend on the global lipgloss
// state or on the writer the output eventually reaches.
type Stylizer struct {
	renderer *lipgloss.Renderer
	enabled  bool
}

// NewStylizer returns a Stylizer that emits ANSI colors when enabled and
// plain text otherwise.
func NewStylizer(enabled bool) *Stylizer {
	r := lipgloss.NewRenderer(io.Discard)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Stylizer{renderer: r, enabled: enabled}
}

// Enabled reports whether the Stylizer emits escape sequences.
func (s *Stylizer) Enabled() bool {
	return s != nil && s.enabled
}

// Paint colors text with n. White text and empty strings are returned
// as-is since white is the terminal's default foreground here.
func (s *Stylizer) Paint(text string, n Name) string {
	if text == "" || n == White {
		return text
	}
	return s.paint(text, n)
}

// Swatches returns the 16 palette swatches, each colored with its own
// palette entry.
func (s *Stylizer) Swatches() []string {
	out := make([]string, PaletteSize)
	for i := range out {
		out[i] = s.paint(Swatch, Name(i))
	}
	return out
}

func (s *Stylizer) paint(text string, n Name) string {
	if !s.Enabled() {
		return text
	}
	return s.renderer.NewStyle().
		Foreground(lipgloss.Color(n.ANSI())).
		Render(text)
}
