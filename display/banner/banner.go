// Package banner draws the dracfetch output: an info box built from the
// configured layout, composed with an ASCII or inline-image logo.
package banner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"

	"gitlab.com/tinyland/lab/dracfetch/ascii"
	"gitlab.com/tinyland/lab/dracfetch/collectors/sysinfo"
	"gitlab.com/tinyland/lab/dracfetch/config"
	"gitlab.com/tinyland/lab/dracfetch/display/color"
	"gitlab.com/tinyland/lab/dracfetch/display/render"
	"gitlab.com/tinyland/lab/dracfetch/i18n"
)

// BannerConfig controls banner generation.
type BannerConfig struct {
	// Config supplies the name, layout, icons, plugins and logo.
	Config *config.Config
	// Translator localizes labels and the greeting. Nil uses English.
	Translator i18n.Translator
	// Stylizer paints the box. Nil renders plain text.
	Stylizer *color.Stylizer
	// Terminal is asked whether inline images can be shown. Nil uses the
	// process's stdout.
	Terminal render.Terminal
	// NoASCII drops the logo entirely.
	NoASCII bool
	// Logger for banner operations.
	Logger *slog.Logger
}

// Banner renders collected system info.
type Banner struct {
	config BannerConfig
}

// NewBanner creates a Banner with the given configuration, filling in
// defaults for nil fields.
func NewBanner(cfg BannerConfig) *Banner {
	if cfg.Config == nil {
		cfg.Config = config.DefaultConfig()
	}
	if cfg.Translator == nil {
		cfg.Translator = i18n.New("en")
	}
	if cfg.Terminal == nil {
		cfg.Terminal = render.NewOSTerminal()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Banner{config: cfg}
}

// Box renders the info box lines for info.
func (b *Banner) Box(info *sysinfo.Info) []string {
	cfg := b.config.Config
	icons := ParseIconSet(cfg.UI.Icons)

	layout := cfg.UI.Layout
	if len(layout) == 0 {
		layout = DefaultLayout(slices.Collect(maps.Keys(cfg.Plugins)))
	}

	groups := BuildGroups(layout, RowData{
		Info:       info,
		Plugins:    cfg.Plugins,
		Icons:      icons,
		Translator: b.config.Translator,
	})

	return RenderBox(groups, color.DefaultTheme, BoxOptions{
		Greeting:    icons.User + b.config.Translator.Hello(cfg.General.Name),
		Palette:     true,
		PaletteIcon: icons.Palette,
		Stylizer:    b.config.Stylizer,
	})
}

// Generate renders info and composes it with the configured logo.
func (b *Banner) Generate(ctx context.Context, info *sysinfo.Info) (Composition, error) {
	if err := ctx.Err(); err != nil {
		return Composition{}, err
	}

	box := b.Box(info)
	if b.config.NoASCII {
		return Compose(box, nil, true), nil
	}
	return Compose(box, b.logo(info, len(box)), false), nil
}

// logo picks the configured image when one is set and can be shown, and
// the ASCII art for the OS otherwise. Without color the art is stripped to
// plain text.
func (b *Banner) logo(info *sysinfo.Info, boxH int) Logo {
	log := b.config.Logger
	opts := b.config.Config.LogoOptions()

	switch {
	case opts.Path == "":
	case opts.Protocol == render.ProtocolBlocks:
		if lines := b.blockLogo(opts, boxH); lines != nil {
			return ASCIILogo{Lines: lines}
		}
	default:
		img, err := render.BuildInlineLogo(b.config.Terminal, opts)
		switch {
		case err == nil:
			log.Debug("banner: inline logo", "protocol", opts.Protocol, "width", img.Width, "height", img.Height)
			return InlineLogo{Sequence: img.Sequence, Width: img.Width, Height: img.Height}
		case errors.Is(err, render.ErrUnsupportedProtocol):
			log.Debug("banner: inline logo unsupported, using ascii", "protocol", opts.Protocol)
		default:
			log.Warn("banner: inline logo failed, using ascii", "path", opts.Path, "error", err)
		}
	}

	if info == nil || info.OS == nil {
		return nil
	}
	lines := ascii.Lookup(info.OS.ID)
	if lines == nil {
		log.Debug("banner: no ascii art", "os", info.OS.ID)
		return nil
	}
	if !b.config.Stylizer.Enabled() {
		for i, l := range lines {
			lines[i] = color.StripANSI(l)
		}
	}
	return ASCIILogo{Lines: lines}
}

// blockLogo renders the image as half-block text sized to the box. It
// returns nil when color is off or the image cannot be drawn.
func (b *Banner) blockLogo(opts render.LogoOptions, boxH int) []string {
	log := b.config.Logger
	if !b.config.Stylizer.Enabled() {
		log.Debug("banner: block logo needs color, using ascii")
		return nil
	}
	cols, rows := render.BlockCells(b.config.Terminal, opts, boxH)
	lines, err := render.HalfBlockLines(opts.Path, cols, rows)
	if err != nil {
		log.Warn("banner: block logo failed, using ascii", "path", opts.Path, "error", err)
		return nil
	}
	log.Debug("banner: block logo", "cols", cols, "rows", len(lines))
	return lines
}
