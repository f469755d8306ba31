package banner

import (
	"strings"

	"gitlab.com/tinyland/lab/dracfetch/display/color"
	"gitlab.com/tinyland/lab/dracfetch/display/text"
)

// BoxStyle defines Unicode box-drawing characters.
type BoxStyle struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
	TeeLeft, TeeRight                          rune
}

// RoundedBox uses rounded corner box-drawing characters.
var RoundedBox = BoxStyle{
	TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	Horizontal: '─', Vertical: '│',
	TeeLeft: '├', TeeRight: '┤',
}

// SharpBox uses sharp corner box-drawing characters.
var SharpBox = BoxStyle{
	TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	Horizontal: '─', Vertical: '│',
	TeeLeft: '├', TeeRight: '┤',
}

// Row is one icon/label/value line of the box. Color paints the value;
// White leaves it in the terminal's default color.
type Row struct {
	Icon     string
	Label    string
	Value    string
	Color    color.Name
	AutoWrap bool
}

// NewRow returns a non-wrapping row with an uncolored value.
func NewRow(icon, label, value string) Row {
	return Row{Icon: icon, Label: label, Value: value, Color: color.White}
}

// Group is a run of rows drawn between two separators.
type Group struct {
	Name string
	Rows []Row
}

// BoxOptions controls the optional header lines of the box.
type BoxOptions struct {
	// Style defaults to RoundedBox.
	Style BoxStyle
	// Greeting is drawn first, in the theme's icon color. Empty omits it.
	Greeting string
	// Palette adds a line of the 16 palette swatches led by PaletteIcon.
	Palette     bool
	PaletteIcon string
	// Stylizer paints the box. Nil renders plain text.
	Stylizer *color.Stylizer
}

// measuredRow caches the visual widths of a row's plain parts.
type measuredRow struct {
	Row
	iconW, labelW, valueW int
}

// swatchStripWidth is the narrowest the palette swatches can be laid out:
// every swatch plus one space between neighbours.
func swatchStripWidth() int {
	return color.PaletteSize*text.Width(color.Swatch) + color.PaletteSize - 1
}

// RenderBox draws groups as a bordered box and returns its lines without
// trailing newlines. Every line has the same visual width.
//
// Labels are padded to the widest label in the whole box and values are
// right-aligned against the right border. AutoWrap rows are wrapped to the
// space left of the label column; their continuation lines carry no icon
// or label. Empty groups are skipped and non-empty sections are separated
// by a horizontal rule.
func RenderBox(groups []Group, theme color.Theme, opts BoxOptions) []string {
	style := opts.Style
	if style == (BoxStyle{}) {
		style = RoundedBox
	}
	sty := opts.Stylizer

	measured := make([][]measuredRow, 0, len(groups))
	maxLabel := 0
	for _, g := range groups {
		if len(g.Rows) == 0 {
			continue
		}
		rows := make([]measuredRow, len(g.Rows))
		for i, r := range g.Rows {
			rows[i] = measuredRow{
				Row:    r,
				iconW:  text.Width(r.Icon),
				labelW: text.Width(r.Label),
				valueW: text.Width(r.Value),
			}
			maxLabel = max(maxLabel, rows[i].labelW)
		}
		measured = append(measured, rows)
	}

	content := 0
	for _, rows := range measured {
		groupW := 0
		for _, r := range rows {
			if r.AutoWrap {
				groupW = max(groupW, r.iconW+longestWord(r.Value))
				continue
			}
			groupW = max(groupW, r.iconW+r.valueW)
		}
		content = max(content, groupW+maxLabel+1)
	}
	if opts.Greeting != "" {
		content = max(content, text.Width(opts.Greeting))
	}
	if opts.Palette {
		content = max(content, text.Width(opts.PaletteIcon)+swatchStripWidth())
	}

	b := &boxBuilder{style: style, content: content}
	b.border(style.TopLeft, style.TopRight)

	if opts.Greeting != "" {
		b.section()
		b.line(sty.Paint(opts.Greeting, theme.Icon))
	}
	if opts.Palette {
		b.section()
		icon := sty.Paint(opts.PaletteIcon, theme.Icon)
		b.line(icon + distributeSwatches(sty.Swatches(), content-text.Width(opts.PaletteIcon)))
	}

	for _, rows := range measured {
		b.section()
		for _, r := range rows {
			left := sty.Paint(r.Icon, theme.Icon) +
				sty.Paint(r.Label, theme.Label) +
				strings.Repeat(" ", maxLabel-r.labelW)
			leftW := r.iconW + maxLabel

			if !r.AutoWrap {
				b.row(left, leftW, sty.Paint(r.Value, r.Color), r.valueW)
				continue
			}

			lines := text.Wrap(r.Value, content-leftW-1)
			for i, l := range lines {
				lw := text.Width(l)
				if i == 0 {
					b.row(left, leftW, sty.Paint(l, r.Color), lw)
					continue
				}
				b.row("", 0, sty.Paint(l, r.Color), lw)
			}
		}
	}

	b.border(style.BottomLeft, style.BottomRight)
	return b.lines
}

type boxBuilder struct {
	style   BoxStyle
	content int
	lines   []string
	started bool
}

func (b *boxBuilder) rule() string {
	return strings.Repeat(string(b.style.Horizontal), b.content+1)
}

func (b *boxBuilder) border(left, right rune) {
	b.lines = append(b.lines, string(left)+b.rule()+string(right))
}

// section starts a new block, drawing a separator unless it is the first.
func (b *boxBuilder) section() {
	if b.started {
		b.border(b.style.TeeLeft, b.style.TeeRight)
	}
	b.started = true
}

// line draws left-aligned content padded to the box width.
func (b *boxBuilder) line(content string) {
	b.row(content, text.Width(content), "", 0)
}

// row draws left and right with the gap between them filled so right ends
// one space before the border.
func (b *boxBuilder) row(left string, leftW int, right string, rightW int) {
	pad := max(b.content-leftW-rightW, 0)
	v := string(b.style.Vertical)
	b.lines = append(b.lines, v+left+strings.Repeat(" ", pad)+right+" "+v)
}

// distributeSwatches spreads swatches evenly across width columns,
// keeping at least one space between neighbours.
func distributeSwatches(swatches []string, width int) string {
	if len(swatches) == 0 || width <= 0 {
		return ""
	}
	sw := text.Width(swatches[0])
	total := len(swatches) * sw
	effective := max(width, total+len(swatches)-1)

	if len(swatches) == 1 {
		return strings.Repeat(" ", effective/2) + swatches[0]
	}

	gap := strings.Repeat(" ", (effective-total)/(len(swatches)-1))
	return strings.Join(swatches, gap)
}

func longestWord(s string) int {
	w := 0
	for _, f := range strings.Fields(s) {
		w = max(w, text.Width(f))
	}
	return w
}
