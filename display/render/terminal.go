package render

import (
	"os"

	"github.com/mattn/go-isatty"
)

// FallbackCellPixels is the assumed size of a terminal cell, in pixels along
// either axis, when the terminal does not report pixel metrics.
const FallbackCellPixels = 10

// CellMetrics is the size of one terminal cell in pixels.
type CellMetrics struct {
	Width  float64
	Height float64
}

// Terminal is the environment inline-image rendering depends on.
// OSTerminal is the real implementation; tests substitute a fake.
type Terminal interface {
	// LookupEnv retrieves an environment variable.
	LookupEnv(key string) (string, bool)
	// IsTerminal reports whether output goes to a TTY.
	IsTerminal() bool
	// CellMetrics returns the pixel size of a cell, if the terminal reports it.
	CellMetrics() (CellMetrics, bool)
}

// OSTerminal is the process environment and a terminal output file.
type OSTerminal struct {
	Out *os.File
}

// NewOSTerminal returns an OSTerminal writing to stdout.
func NewOSTerminal() OSTerminal {
	return OSTerminal{Out: os.Stdout}
}

// LookupEnv implements Terminal.
func (OSTerminal) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// IsTerminal implements Terminal.
func (t OSTerminal) IsTerminal() bool {
	if t.Out == nil {
		return false
	}
	return isatty.IsTerminal(t.Out.Fd()) || isatty.IsCygwinTerminal(t.Out.Fd())
}

// CellMetrics implements Terminal. The winsize query is platform specific.
func (t OSTerminal) CellMetrics() (CellMetrics, bool) {
	if t.Out == nil {
		return CellMetrics{}, false
	}
	return cellMetrics(t.Out.Fd())
}

// metricsFromWinsize converts a TIOCGWINSZ result into per-cell pixels.
// Any zero field means the terminal did not report pixel sizes.
func metricsFromWinsize(cols, rows, xpixel, ypixel uint16) (CellMetrics, bool) {
	if cols == 0 || rows == 0 || xpixel == 0 || ypixel == 0 {
		return CellMetrics{}, false
	}
	return CellMetrics{
		Width:  float64(xpixel) / float64(cols),
		Height: float64(ypixel) / float64(rows),
	}, true
}
