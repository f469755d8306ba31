package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned by ParseName for names outside the 16-color palette.
var ErrUnknownColor = errors.New("unknown color")

// Name is one of the 16 standard terminal colors, numbered as in the
// ANSI 256-color table.
type Name uint8

const (
	Black Name = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Gray
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// PaletteSize is the number of colors in the standard palette.
const PaletteSize = 16

var names = [PaletteSize]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"gray", "bright_red", "bright_green", "bright_yellow", "bright_blue",
	"bright_magenta", "bright_cyan", "bright_white",
}

// String returns the config spelling of n.
func (n Name) String() string {
	if int(n) < len(names) {
		return names[n]
	}
	return "color(" + strconv.Itoa(int(n)) + ")"
}

// ANSI returns the 256-color table index as a string, the form lipgloss
// accepts for lipgloss.Color.
func (n Name) ANSI() string {
	return strconv.Itoa(int(n))
}

// ParseName resolves a color name from config. Matching ignores case and
// accepts "grey", "bright-red" and "brightred" spellings. The empty string
// resolves to White.
func ParseName(s string) (Name, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return White, nil
	}
	key = strings.ReplaceAll(key, "-", "_")
	if key == "grey" {
		key = "gray"
	}
	if strings.HasPrefix(key, "bright") && !strings.HasPrefix(key, "bright_") {
		key = "bright_" + strings.TrimPrefix(key, "bright")
	}
	for i, name := range names {
		if name == key {
			return Name(i), nil
		}
	}
	return White, fmt.Errorf("color: parse %q: %w", s, ErrUnknownColor)
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config files can
// spell colors by name.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
