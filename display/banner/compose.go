package banner

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/dracfetch/display/text"
)

// Logo is the panel drawn left of the box: an ASCIILogo or an InlineLogo.
type Logo interface {
	isLogo()
}

// ASCIILogo is text art. Width is the widest line; zero measures Lines.
type ASCIILogo struct {
	Lines []string
	Width int
}

// InlineLogo is an encoded terminal image occupying Width by Height
// cells. A zero Height takes the box height.
type InlineLogo struct {
	Sequence string
	Width    int
	Height   int
}

func (ASCIILogo) isLogo()  {}
func (InlineLogo) isLogo() {}

// Composition is the final output. Preamble must be written before Text;
// it draws the inline image and leaves the cursor where it started.
type Composition struct {
	Preamble string
	Text     string
}

// String returns the preamble followed by the text.
func (c Composition) String() string {
	return c.Preamble + c.Text
}

const logoGap = 2

// Compose places logo beside the box lines, centering the shorter of the
// two vertically. With noASCII set or no logo, the box is returned alone.
func Compose(box []string, logo Logo, noASCII bool) Composition {
	if noASCII || logo == nil {
		return Composition{Text: joinLines(box)}
	}
	switch l := logo.(type) {
	case ASCIILogo:
		if len(l.Lines) == 0 {
			return Composition{Text: joinLines(box)}
		}
		return composeASCII(box, l)
	case InlineLogo:
		return composeInline(box, l)
	}
	return Composition{Text: joinLines(box)}
}

func composeASCII(box []string, logo ASCIILogo) Composition {
	logoW := logo.Width
	if logoW == 0 {
		logoW = text.MaxWidth(logo.Lines)
	}
	logoH, boxH := len(logo.Lines), len(box)
	total := max(logoH, boxH)
	logoTop, boxTop := centerPad(total, logoH), centerPad(total, boxH)
	empty := emptyBoxLine(box)
	gap := strings.Repeat(" ", logoGap)

	var sb strings.Builder
	for i := range total {
		if i >= logoTop && i < logoTop+logoH {
			line := logo.Lines[i-logoTop]
			sb.WriteString(text.PadRight(line, logoW))
			if strings.IndexByte(line, '\x1b') >= 0 {
				sb.WriteString("\x1b[0m")
			}
		} else {
			sb.WriteString(strings.Repeat(" ", logoW))
		}
		sb.WriteString(gap)
		if i >= boxTop && i < boxTop+boxH {
			sb.WriteString(box[i-boxTop])
		} else {
			sb.WriteString(empty)
		}
		sb.WriteByte('\n')
	}
	return Composition{Text: sb.String()}
}

func composeInline(box []string, logo InlineLogo) Composition {
	boxH := len(box)
	logoH := logo.Height
	if logoH <= 0 {
		logoH = boxH
	}
	total := max(logoH, boxH)
	logoTop, boxTop := centerPad(total, logoH), centerPad(total, boxH)

	var pre strings.Builder
	if logo.Sequence != "" {
		pre.WriteString("\x1b[s")
		if logoTop > 0 {
			fmt.Fprintf(&pre, "\x1b[%dB", logoTop)
		}
		pre.WriteString(logo.Sequence)
		if logoTop > 0 {
			fmt.Fprintf(&pre, "\x1b[%dA", logoTop)
		}
		pre.WriteString("\x1b[u")
	}

	shift := fmt.Sprintf("\r\x1b[%dC", logo.Width+logoGap)
	empty := emptyBoxLine(box)

	var sb strings.Builder
	for i := range total {
		sb.WriteString(shift)
		if i >= boxTop && i < boxTop+boxH {
			sb.WriteString(box[i-boxTop])
		} else {
			sb.WriteString(empty)
		}
		sb.WriteByte('\n')
	}
	return Composition{Preamble: pre.String(), Text: sb.String()}
}

// centerPad is the number of blank rows above a panel of height h centered
// in total rows. An odd leftover row goes above.
func centerPad(total, h int) int {
	return (total - h + 1) / 2
}

// emptyBoxLine is a blank bordered row as wide as the box.
func emptyBoxLine(box []string) string {
	if len(box) == 0 {
		return ""
	}
	return "│" + strings.Repeat(" ", max(text.Width(box[0])-2, 0)) + "│"
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
