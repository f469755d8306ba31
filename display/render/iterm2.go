package render

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ITerm2Config controls iTerm2 inline image rendering.
type ITerm2Config struct {
	// Width specifies the display width. Can be:
	// - empty: use image dimensions
	// - "N": N cells wide
	// - "Npx": N pixels wide
	Width string
	// Height specifies the display height (same format as Width).
	Height string
	// PreserveAspect maintains aspect ratio when Width or Height is specified.
	PreserveAspect bool
	// Name is an optional filename for the image.
	Name string
}

// ITerm2Sequence encodes image data using the iTerm2 inline images protocol.
//
// The iTerm2 inline images protocol uses OSC (Operating System Command):
//   - OSC 1337 ; File= parameters : base64data BEL
//   - \033]1337;File=...:<base64>\007
//
// Parameters are semicolon-separated key=value pairs.
//
// Protocol documentation: https://iterm2.com/documentation-images.html
func ITerm2Sequence(imageData []byte, cfg ITerm2Config) string {
	encoded := base64.StdEncoding.EncodeToString(imageData)
	return fmt.Sprintf("\033]1337;File=%s:%s\007", buildITerm2Params(cfg, len(imageData)), encoded)
}

// ITerm2ConfigFor converts a Sizing into iTerm2 parameters.
func ITerm2ConfigFor(name string, s Sizing) ITerm2Config {
	return ITerm2Config{
		Width:          itermDimension(s.WidthCells, s.WidthPx),
		Height:         itermDimension(s.HeightCells, s.HeightPx),
		PreserveAspect: true,
		Name:           name,
	}
}

// buildITerm2Params constructs the iTerm2 protocol parameters.
func buildITerm2Params(cfg ITerm2Config, dataSize int) string {
	params := []string{
		"inline=1",
		fmt.Sprintf("size=%d", dataSize),
	}

	if cfg.Name != "" {
		encodedName := base64.StdEncoding.EncodeToString([]byte(cfg.Name))
		params = append(params, "name="+encodedName)
	}

	if cfg.Width != "" {
		params = append(params, "width="+cfg.Width)
	}

	if cfg.Height != "" {
		params = append(params, "height="+cfg.Height)
	}

	if cfg.PreserveAspect {
		params = append(params, "preserveAspectRatio=1")
	} else {
		params = append(params, "preserveAspectRatio=0")
	}

	return strings.Join(params, ";")
}
