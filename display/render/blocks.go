package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// BlockCells returns the cell area a half-block logo may fill. A configured
// pixel size is converted with term's cell metrics; otherwise the logo gets
// DefaultShiftCells columns and maxRows rows.
func BlockCells(term Terminal, opts LogoOptions, maxRows int) (cols, rows int) {
	var metrics CellMetrics
	if term != nil {
		metrics, _ = term.CellMetrics()
	}
	cols = pixelsToCells(opts.Width, metrics.Width)
	if cols == 0 {
		cols = DefaultShiftCells
	}
	rows = pixelsToCells(opts.Height, metrics.Height)
	if rows == 0 {
		rows = max(maxRows, 1)
	}
	return cols, rows
}

// HalfBlockLines draws the image at path as colored text. Each line covers
// two pixel rows: the upper half block takes the top pixel as its 24-bit
// foreground and the bottom pixel as its background. The image is scaled
// down to fit cols by rows cells and never enlarged.
func HalfBlockLines(path string, cols, rows int) ([]string, error) {
	if path == "" {
		return nil, ErrNoImage
	}
	data, err := readImage(path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("render: half blocks decode: %w", err)
	}

	fitted := imaging.Fit(img, max(cols, 1), 2*max(rows, 1), imaging.Lanczos)
	bounds := fitted.Bounds()

	lines := make([]string, 0, (bounds.Dy()+1)/2)
	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		sb.Reset()
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := fitted.NRGBAAt(x, y)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
			// An odd last pixel row keeps the terminal background below it.
			if y+1 < bounds.Max.Y {
				bot := fitted.NRGBAAt(x, y+1)
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", bot.R, bot.G, bot.B)
			}
			sb.WriteString("▀")
		}
		sb.WriteString("\x1b[0m")
		lines = append(lines, sb.String())
	}
	return lines, nil
}
