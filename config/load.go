package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// AppName names the config and cache directories.
const AppName = "dracfetch"

// Load reads configuration from the first config file found.
// Search order:
//  1. $XDG_CONFIG_HOME/dracfetch/config.toml
//  2. ~/.config/dracfetch/config.toml
//  3. ~/.dracfetch/config.toml
//  4. ./config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	if p, ok := Find(); ok {
		return LoadFromFile(p)
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys the schema
// does not know are ignored so files can carry sections for other tools.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Name:     defaultName(),
			LogLevel: "warn",
		},
		Logo: LogoConfig{
			Protocol: "kitty",
		},
		UI: UIConfig{
			Icons: IconsNerd,
		},
		Cache: CacheConfig{
			TTL: Duration{6 * time.Hour},
		},
	}
}

// WriteDefault writes DefaultConfig to path, creating parent directories.
// It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("config: create: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(DefaultConfig()); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("config: encode: %w", err)
	}
	return f.Close()
}

// Path returns the file Load would read, or the preferred location for a
// new file when none exists.
func Path() string {
	if p, ok := Find(); ok {
		return p
	}
	paths := configSearchPaths()
	if len(paths) == 0 {
		return "config.toml"
	}
	return paths[0]
}

// Find returns the first existing config file in the search order.
func Find() (string, bool) {
	for _, p := range configSearchPaths() {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	return "", false
}

// ErrNoCacheDir is returned by CacheDir when neither the config nor the
// environment name a usable directory.
var ErrNoCacheDir = errors.New("no cache directory")

// CacheDir resolves the cache directory: [cache] dir, then
// $XDG_CACHE_HOME/dracfetch, then ~/.cache/dracfetch.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return expandHome(c.Cache.Dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil && os.Getenv("XDG_CACHE_HOME") == "" {
		return "", fmt.Errorf("config: %w: %w", ErrNoCacheDir, err)
	}
	return filepath.Join(xdgCacheHome(home), AppName), nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DRACFETCH_LOGO"); v != "" {
		cfg.Logo.Path = v
	}
	if v := os.Getenv("DRACFETCH_PROTOCOL"); v != "" {
		cfg.Logo.Protocol = v
	}
	if v := os.Getenv("DRACFETCH_LANG"); v != "" {
		cfg.General.Language = v
	}
	if v := os.Getenv("DRACFETCH_LOGO_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Logo.Width = n
		}
	}
	if v := os.Getenv("DRACFETCH_LOGO_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Logo.Height = n
		}
	}
}

func defaultName() string {
	for _, key := range []string{"USER", "LOGNAME", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "User"
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	if xdg != "" {
		paths = append(paths, filepath.Join(xdg, AppName, "config.toml"))
	}

	if home != "" {
		// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
		defaultXDG := filepath.Join(home, ".config")
		if xdg != defaultXDG {
			paths = append(paths, filepath.Join(defaultXDG, AppName, "config.toml"))
		}
		paths = append(paths, filepath.Join(home, "."+AppName, "config.toml"))
	}

	paths = append(paths, filepath.Join(".", "config.toml"))
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
