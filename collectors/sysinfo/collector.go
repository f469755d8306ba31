package sysinfo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/dracfetch/cache"
	"gitlab.com/tinyland/lab/dracfetch/internal/format"
)

// Collector reads system information. The zero value is not usable; use New.
type Collector struct {
	logger *slog.Logger

	store *cache.Store
	ttl   time.Duration

	// root prefixes every file the probes read, so tests can point the
	// collector at a fixture tree.
	root string

	lookupEnv func(string) (string, bool)
	now       func() time.Time

	// Overridable syscall wrappers for testing.
	kernelRelease func() (string, error)
	diskUsage     func(path string) (Usage, error)
	procNames     func() []string
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger. A nil logger keeps the discard default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCache serves slow, rarely changing fields from store while they are
// younger than ttl.
func WithCache(store *cache.Store, ttl time.Duration) Option {
	return func(c *Collector) {
		c.store = store
		c.ttl = ttl
	}
}

// WithRoot reads system files relative to root instead of "/".
func WithRoot(root string) Option {
	return func(c *Collector) { c.root = root }
}

// WithEnv replaces os.LookupEnv.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(c *Collector) { c.lookupEnv = lookup }
}

// WithClock replaces time.Now for the date field.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) { c.now = now }
}

// New creates a Collector for the running system.
func New(opts ...Option) *Collector {
	c := &Collector{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		root:      "/",
		lookupEnv: os.LookupEnv,
		now:       time.Now,
	}
	c.kernelRelease = unameRelease
	c.diskUsage = statfsUsage
	c.procNames = c.runningProcesses
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// probe reads one field into info. Probes write disjoint fields of Info,
// so they can run concurrently without locking.
type probe struct {
	field string
	run   func(c *Collector, info *Info) (cached bool, err error)
}

var probes = []probe{
	{FieldDate, func(c *Collector, info *Info) (bool, error) {
		info.Date = format.OrdinalDate(c.now())
		return false, nil
	}},
	{FieldHost, func(c *Collector, info *Info) (bool, error) {
		return cachedField(c, FieldHost, &info.Host, c.readHost)
	}},
	{FieldOS, func(c *Collector, info *Info) (bool, error) {
		var osInfo OSInfo
		hit, err := cachedField(c, FieldOS, &osInfo, c.readOS)
		if err == nil {
			info.OS = &osInfo
		}
		return hit, err
	}},
	{FieldKernel, func(c *Collector, info *Info) (bool, error) {
		return cachedField(c, FieldKernel, &info.Kernel, c.readKernel)
	}},
	{FieldMemory, func(c *Collector, info *Info) (bool, error) {
		u, err := c.readMemory()
		if err == nil {
			info.Memory = &u
		}
		return false, err
	}},
	{FieldDisk, func(c *Collector, info *Info) (bool, error) {
		u, err := c.diskUsage("/")
		if err == nil {
			info.Disk = &u
		}
		return false, err
	}},
	{FieldCPU, func(c *Collector, info *Info) (bool, error) {
		return cachedField(c, FieldCPU, &info.CPU, c.readCPU)
	}},
	{FieldGPU, func(c *Collector, info *Info) (bool, error) {
		return cachedField(c, FieldGPU, &info.GPU, c.readGPU)
	}},
	{FieldUptime, func(c *Collector, info *Info) (bool, error) {
		d, err := c.readUptime()
		info.Uptime = d
		return false, err
	}},
	{FieldShell, func(c *Collector, info *Info) (bool, error) {
		s, err := c.readShell()
		info.Shell = s
		return false, err
	}},
	{FieldPackages, func(c *Collector, info *Info) (bool, error) {
		return cachedField(c, FieldPackages, &info.Packages, c.readPackages)
	}},
	{FieldDE, func(c *Collector, info *Info) (bool, error) {
		s, err := c.readDE()
		info.DE = s
		return false, err
	}},
	{FieldWM, func(c *Collector, info *Info) (bool, error) {
		s, err := c.readWM()
		info.WM = s
		return false, err
	}},
}

// Fields returns the names of all probes in the order Collect runs them.
func Fields() []string {
	out := make([]string, len(probes))
	for i, p := range probes {
		out[i] = p.field
	}
	return out
}

// Collect runs every probe concurrently and returns what they found.
// It never fails as a whole; per-field errors are in Info.Readouts.
// Probes that have not started when ctx is done report ctx.Err().
func (c *Collector) Collect(ctx context.Context) *Info {
	info := &Info{Readouts: make([]Readout, len(probes))}

	var wg sync.WaitGroup
	for i, p := range probes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := Readout{Field: p.field}
			if err := ctx.Err(); err != nil {
				r.Err = err
				info.Readouts[i] = r
				return
			}
			start := time.Now()
			r.Cached, r.Err = p.run(c, info)
			r.Duration = time.Since(start)
			info.Readouts[i] = r
		}()
	}
	wg.Wait()

	for _, r := range info.Readouts {
		if r.Err != nil {
			c.logger.Debug("sysinfo: probe failed", slog.String("field", r.Field), slog.String("error", r.Err.Error()))
			continue
		}
		c.logger.Debug("sysinfo: probe",
			slog.String("field", r.Field),
			slog.Duration("took", r.Duration),
			slog.Bool("cached", r.Cached),
		)
	}
	return info
}

// cachedField fills dst from the cache or from read. Errors are wrapped
// with the field name.
func cachedField[T any](c *Collector, key string, dst *T, read func() (T, error)) (bool, error) {
	if c.store == nil {
		v, err := read()
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		*dst = v
		return false, nil
	}
	v, hit, err := cache.GetOrSet(c.store, key, c.ttl, read)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return hit, nil
}

func (c *Collector) path(elem ...string) string {
	return filepath.Join(append([]string{c.root}, elem...)...)
}

func (c *Collector) env(key string) string {
	v, _ := c.lookupEnv(key)
	return v
}

// shellNames maps shell executables to display names.
var shellNames = map[string]string{
	"bash": "Bash",
	"zsh":  "Zsh",
	"fish": "Fish",
	"nu":   "Nushell",
	"sh":   "SH",
}

// readShell reports the login shell from $SHELL.
func (c *Collector) readShell() (string, error) {
	shell := c.env("SHELL")
	if shell == "" {
		return "", fmt.Errorf("shell: $SHELL: %w", ErrNotFound)
	}
	base := shell[strings.LastIndexAny(shell, `/\`)+1:]
	if name, ok := shellNames[base]; ok {
		return name, nil
	}
	return base, nil
}

// readDE reports the desktop environment from XDG_CURRENT_DESKTOP (first
// entry of the colon list) or DESKTOP_SESSION.
func (c *Collector) readDE() (string, error) {
	if v := c.env("XDG_CURRENT_DESKTOP"); v != "" {
		name, _, _ := strings.Cut(v, ":")
		return name, nil
	}
	if v := c.env("DESKTOP_SESSION"); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("de: %w", ErrNotFound)
}

// knownWMs maps process names to window manager display names, Wayland
// compositors first.
var knownWMs = []struct{ proc, name string }{
	{"Hyprland", "Hyprland"},
	{"sway", "Sway"},
	{"niri", "niri"},
	{"river", "river"},
	{"wayfire", "Wayfire"},
	{"labwc", "labwc"},
	{"kwin_wayland", "KWin"},
	{"gnome-shell", "Mutter"},
	{"cosmic-comp", "COSMIC"},
	{"kwin_x11", "KWin"},
	{"i3", "i3"},
	{"bspwm", "bspwm"},
	{"awesome", "awesome"},
	{"dwm", "dwm"},
	{"openbox", "Openbox"},
	{"xfwm4", "Xfwm4"},
	{"herbstluftwm", "herbstluftwm"},
	{"qtile", "Qtile"},
	{"xmonad", "xmonad"},
}

// readWM finds a running window manager. It needs a display server in the
// environment, then matches running process names against knownWMs.
func (c *Collector) readWM() (string, error) {
	wayland := c.env("WAYLAND_DISPLAY") != ""
	if !wayland && c.env("DISPLAY") == "" {
		return "", fmt.Errorf("wm: no display server: %w", ErrNotFound)
	}

	running := make(map[string]bool)
	for _, name := range c.procNames() {
		running[name] = true
	}
	for _, wm := range knownWMs {
		if running[wm.proc] {
			return wm.name, nil
		}
	}

	if v := c.env("XDG_SESSION_DESKTOP"); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("wm: %w", ErrNotFound)
}
