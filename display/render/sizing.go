package render

import (
	"math"
	"strconv"
)

// Sizing is the display size requested from the terminal. For each axis a
// cell count wins over a pixel count; zero on both leaves that axis to the
// terminal.
type Sizing struct {
	WidthCells  int
	HeightCells int
	WidthPx     int
	HeightPx    int
}

// kittyKeys returns the Kitty c/s and r/v keys, each with a leading comma.
func (s Sizing) kittyKeys() string {
	var out string
	switch {
	case s.WidthCells > 0:
		out += ",c=" + strconv.Itoa(s.WidthCells)
	case s.WidthPx > 0:
		out += ",s=" + strconv.Itoa(s.WidthPx)
	}
	switch {
	case s.HeightCells > 0:
		out += ",r=" + strconv.Itoa(s.HeightCells)
	case s.HeightPx > 0:
		out += ",v=" + strconv.Itoa(s.HeightPx)
	}
	return out
}

// itermDimension formats one axis for iTerm2: a bare number is cells,
// an "px" suffix is pixels. Empty means auto.
func itermDimension(cells, px int) string {
	switch {
	case cells > 0:
		return strconv.Itoa(cells)
	case px > 0:
		return strconv.Itoa(px) + "px"
	default:
		return ""
	}
}

// pixelsToCells converts a pixel length to whole cells, rounding to
// nearest and never returning less than one.
func pixelsToCells(px int, cell float64) int {
	if px <= 0 {
		return 0
	}
	if cell <= 0 {
		return max(1, px/FallbackCellPixels)
	}
	return max(1, int(math.Round(float64(px)/cell)))
}
