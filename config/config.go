// Package config provides configuration parsing for dracfetch.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/dracfetch/display/color"
	"gitlab.com/tinyland/lab/dracfetch/display/render"
)

// Sentinel errors returned by Validate.
var (
	ErrInvalidProtocol = errors.New("invalid logo protocol")
	ErrInvalidIcons    = errors.New("invalid icon set")
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidLogoSize = errors.New("invalid logo size")
)

// Icon set names accepted by [ui] icons.
const (
	IconsNerd  = "nerd"
	IconsEmoji = "emoji"
	IconsNone  = "none"
)

// Config is the root configuration for dracfetch.
type Config struct {
	// General settings
	General GeneralConfig `toml:"general"`

	// Logo shown beside the info box
	Logo LogoConfig `toml:"logo"`

	// Box layout and icons
	UI UIConfig `toml:"ui"`

	// Collector cache
	Cache CacheConfig `toml:"cache"`

	// Static plugin data keyed by plugin id
	Plugins map[string]Plugin `toml:"plugins"`
}

// GeneralConfig holds user-facing general settings.
type GeneralConfig struct {
	// Name is used in the greeting line.
	Name string `toml:"name"`

	// Language selects the translation table ("en", "es", "fr", "de").
	// Empty means detect from the environment.
	Language string `toml:"language"`

	// LogLevel for stderr logging: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// LogoConfig selects an image logo. An empty Path means the ASCII logo.
type LogoConfig struct {
	Path     string `toml:"path"`
	Protocol string `toml:"protocol"`

	// Width and Height are in pixels; zero derives them from the image.
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// UIConfig controls the info box.
type UIConfig struct {
	// Icons is "nerd", "emoji" or "none".
	Icons string `toml:"icons"`

	// Layout replaces the built-in layout when non-empty.
	Layout []LayoutGroup `toml:"layout"`
}

// LayoutGroup is a named group of rows separated from its neighbours.
type LayoutGroup struct {
	Name string      `toml:"name"`
	Rows []LayoutRow `toml:"rows"`
}

// LayoutRow names the data shown on one row. Nil overrides keep the
// built-in label, icon and value color.
type LayoutRow struct {
	Key      string      `toml:"key"`
	Label    *string     `toml:"label"`
	Icon     *string     `toml:"icon"`
	Color    *color.Name `toml:"color"`
	AutoWrap bool        `toml:"auto_wrap"`
}

// CacheConfig controls the collector cache.
type CacheConfig struct {
	// Dir overrides the default cache directory.
	Dir string `toml:"dir"`

	// TTL is how long cached readouts stay valid.
	TTL Duration `toml:"ttl"`

	Disabled bool `toml:"disabled"`
}

// Plugin is static data shown through plugin.<id> and plugin.<id>.<field>
// layout keys.
type Plugin struct {
	Label  string            `toml:"label"`
	Icon   string            `toml:"icon"`
	Value  string            `toml:"value"`
	Fields map[string]string `toml:"fields"`
}

// Duration wraps time.Duration for TOML text unmarshalling ("10m", "24h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// LogoOptions converts the logo section for the renderer.
func (c *Config) LogoOptions() render.LogoOptions {
	return render.LogoOptions{
		Path:     expandHome(c.Logo.Path),
		Protocol: render.ParseProtocol(c.Logo.Protocol),
		Width:    c.Logo.Width,
		Height:   c.Logo.Height,
	}
}

// Validate checks names that TOML decoding alone cannot reject.
// Colors are checked while decoding.
func (c *Config) Validate() error {
	if c.Logo.Protocol != "" {
		if _, err := render.ParseProtocolStrict(c.Logo.Protocol); err != nil {
			return fmt.Errorf("config: logo.protocol %q: %w", c.Logo.Protocol, ErrInvalidProtocol)
		}
	}
	if c.Logo.Width < 0 || c.Logo.Height < 0 {
		return fmt.Errorf("config: logo size %dx%d: %w", c.Logo.Width, c.Logo.Height, ErrInvalidLogoSize)
	}

	switch strings.ToLower(c.UI.Icons) {
	case "", IconsNerd, IconsEmoji, IconsNone:
	default:
		return fmt.Errorf("config: ui.icons %q: %w", c.UI.Icons, ErrInvalidIcons)
	}

	switch strings.ToLower(c.General.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: general.log_level %q: %w", c.General.LogLevel, ErrInvalidLogLevel)
	}

	for i, g := range c.UI.Layout {
		for j, row := range g.Rows {
			if strings.TrimSpace(row.Key) == "" {
				return fmt.Errorf("config: ui.layout[%d].rows[%d]: empty key: %w", i, j, ErrInvalidLayout)
			}
		}
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
