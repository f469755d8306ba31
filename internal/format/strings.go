// Package format provides shared string, size and time formatting utilities.
package format

import (
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// TruncateWidth shortens s to at most maxWidth terminal columns, ending it
// with "…" when anything was cut. Wide characters are measured as two
// columns. A non-positive maxWidth returns "".
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Bytes renders a byte count with binary units, e.g. "8.0 GiB".
func Bytes(n uint64) string {
	return humanize.IBytes(n)
}

// Usage renders a used/total pair of byte counts, e.g. "8.0 GiB/16 GiB".
func Usage(used, total uint64) string {
	return Bytes(used) + "/" + Bytes(total)
}
