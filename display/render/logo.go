package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// DefaultShiftCells is how far text is shifted right of an image whose
// width could not be determined.
const DefaultShiftCells = 24

// LogoOptions describes an image logo. Width and Height are in pixels;
// zero means unset.
type LogoOptions struct {
	Path     string
	Protocol LogoProtocol
	Width    int
	Height   int
}

// InlineImage is an encoded logo and the cell footprint it occupies.
// Height is zero when the image height could not be determined.
type InlineImage struct {
	Sequence string
	Width    int
	Height   int
}

// BuildInlineLogo encodes the logo at opts.Path for term.
//
// It returns ErrUnsupportedProtocol when term cannot display opts.Protocol
// and ErrNoImage when there is no readable image. Other errors come from
// reading or transcoding the file.
func BuildInlineLogo(term Terminal, opts LogoOptions) (InlineImage, error) {
	if opts.Path == "" {
		return InlineImage{}, ErrNoImage
	}
	if !SupportsInlineImages(term, opts.Protocol) {
		return InlineImage{}, fmt.Errorf("render: %s: %w", opts.Protocol, ErrUnsupportedProtocol)
	}

	probed, probedOK := ProbeFile(opts.Path)
	metrics, metricsOK := term.CellMetrics()
	plan := planLogo(opts.Width, opts.Height, probed, probedOK, metrics, metricsOK)

	var seq string
	switch opts.Protocol {
	case ProtocolKittyDirect:
		abs, err := filepath.Abs(opts.Path)
		if err != nil {
			return InlineImage{}, fmt.Errorf("render: resolve %s: %w", opts.Path, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return InlineImage{}, fmt.Errorf("render: %w: %w", ErrNoImage, err)
		}
		seq = KittyDirectSequence(abs, plan.send)

	case ProtocolITerm2:
		data, err := readImage(opts.Path)
		if err != nil {
			return InlineImage{}, err
		}
		seq = ITerm2Sequence(data, ITerm2ConfigFor(filepath.Base(opts.Path), plan.send))

	default:
		data, err := readImage(opts.Path)
		if err != nil {
			return InlineImage{}, err
		}
		pngData, err := EnsurePNG(data)
		if err != nil {
			return InlineImage{}, err
		}
		seq = KittySequence(pngData, plan.send)
	}

	return InlineImage{Sequence: seq, Width: plan.widthCells, Height: plan.heightCells}, nil
}

func readImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: %w: %w", ErrNoImage, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("render: %s is empty: %w", path, ErrNoImage)
	}
	return data, nil
}

// logoPlan is the resolved geometry of an inline logo.
type logoPlan struct {
	send        Sizing
	widthCells  int
	heightCells int
}

// planLogo resolves the configured pixel size against the probed image
// size and the terminal's cell metrics.
//
// With one configured dimension the other follows the probed aspect ratio;
// with none the probed size is used. The size is sent to the terminal in
// cells when the cell size is known or a dimension was configured (falling
// back to FallbackCellPixels per cell), and in pixels otherwise.
func planLogo(cfgW, cfgH int, probed ImageSize, probedOK bool, metrics CellMetrics, metricsOK bool) logoPlan {
	wPx, hPx := max(cfgW, 0), max(cfgH, 0)
	explicit := wPx > 0 || hPx > 0

	if probedOK {
		aspect := float64(probed.Width) / float64(probed.Height)
		switch {
		case wPx == 0 && hPx > 0:
			wPx = max(1, int(math.Round(aspect*float64(hPx))))
		case hPx == 0 && wPx > 0:
			hPx = max(1, int(math.Round(float64(wPx)/aspect)))
		case wPx == 0 && hPx == 0:
			wPx, hPx = probed.Width, probed.Height
		}
	}

	var cellW, cellH float64
	if metricsOK {
		cellW, cellH = metrics.Width, metrics.Height
	}

	plan := logoPlan{
		widthCells:  pixelsToCells(wPx, cellW),
		heightCells: pixelsToCells(hPx, cellH),
	}
	if plan.widthCells == 0 {
		plan.widthCells = DefaultShiftCells
	}

	if metricsOK || explicit {
		plan.send = Sizing{
			WidthCells:  pixelsToCells(wPx, cellW),
			HeightCells: pixelsToCells(hPx, cellH),
		}
	} else {
		plan.send = Sizing{WidthPx: wPx, HeightPx: hPx}
	}

	return plan
}
