//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package render

// cellMetrics is unknown on platforms without TIOCGWINSZ.
func cellMetrics(uintptr) (CellMetrics, bool) {
	return CellMetrics{}, false
}
