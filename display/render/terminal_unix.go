//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package render

import "golang.org/x/sys/unix"

// cellMetrics queries TIOCGWINSZ on fd.
func cellMetrics(fd uintptr) (CellMetrics, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return CellMetrics{}, false
	}
	return metricsFromWinsize(ws.Col, ws.Row, ws.Xpixel, ws.Ypixel)
}
