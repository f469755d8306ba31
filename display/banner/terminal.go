package banner

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// DetectTerminalSize returns the current terminal dimensions.
// It asks the stdout TTY first, then falls back to the COLUMNS/LINES
// environment variables, and finally to 80x24.
func DetectTerminalSize() (width, height int) {
	return detectSize(func() (int, int, error) {
		return term.GetSize(os.Stdout.Fd())
	}, os.LookupEnv)
}

func detectSize(getSize func() (int, int, error), lookupEnv func(string) (string, bool)) (width, height int) {
	if w, h, err := getSize(); err == nil && w > 0 && h > 0 {
		return w, h
	}

	width = positiveEnv(lookupEnv, "COLUMNS")
	height = positiveEnv(lookupEnv, "LINES")

	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	return width, height
}

func positiveEnv(lookupEnv func(string) (string, bool), key string) int {
	v, ok := lookupEnv(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
