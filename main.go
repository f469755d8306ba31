// dracfetch shows system information in a bordered box beside a
// distribution logo.
//
// Usage:
//
//	dracfetch [flags]
//	dracfetch completion bash|zsh|fish|powershell
//	dracfetch man
//
// Flags:
//
//	-c, --config path         Configuration file (default: ~/.config/dracfetch/config.toml)
//	    --no-ascii            Hide the logo
//	    --json                Print the collected data as JSON
//	    --pretty              Indent --json output
//	    --format string       Print as json, yaml or markdown
//	    --compact template    Print one line, e.g. "{host} | {cpu} | {ram}"
//	-l, --lang string         Language (en, es, fr, de)
//	    --logo-path path      Image shown instead of the ASCII logo
//	    --logo-protocol name  kitty, kitty-direct, iterm2 or blocks
//	    --logo-width px       Logo width in pixels
//	    --logo-height px      Logo height in pixels
//	    --clear-cache         Remove cached readouts and exit
//	    --ignore-cache        Read everything fresh for this run
//	    --show-config-path    Print the configuration file path and exit
//	-d, --doctor              Report readouts that failed and terminal capabilities
//	    --benchmark           Print how long each readout took
//	-V, --verbose             Debug logging on stderr
//	    --log-level string    debug, info, warn or error
//	-v, --version             Print version and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gitlab.com/tinyland/lab/dracfetch/cache"
	"gitlab.com/tinyland/lab/dracfetch/collectors/sysinfo"
	"gitlab.com/tinyland/lab/dracfetch/config"
	"gitlab.com/tinyland/lab/dracfetch/display/banner"
	"gitlab.com/tinyland/lab/dracfetch/display/color"
	"gitlab.com/tinyland/lab/dracfetch/display/export"
	"gitlab.com/tinyland/lab/dracfetch/display/render"
	"gitlab.com/tinyland/lab/dracfetch/docs/manpage"
	"gitlab.com/tinyland/lab/dracfetch/i18n"
)

var errPrettyWithoutJSON = errors.New("--pretty requires --json")

// options holds the parsed command-line flags.
type options struct {
	configPath     string
	noASCII        bool
	json           bool
	pretty         bool
	format         string
	compact        string
	lang           string
	logoPath       string
	logoProtocol   string
	logoWidth      int
	logoHeight     int
	clearCache     bool
	ignoreCache    bool
	showConfigPath bool
	doctor         bool
	benchmark      bool
	verbose        bool
	logLevel       string
}

// app carries the process-level dependencies of a run. Tests replace them.
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
	terminal  render.Terminal

	collect   func(ctx context.Context, opts ...sysinfo.Option) *sysinfo.Info
	stylizer  func() *color.Stylizer
	termWidth func() int
}

func newApp() *app {
	return &app{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
		terminal:  render.NewOSTerminal(),
		collect: func(ctx context.Context, opts ...sysinfo.Option) *sysinfo.Info {
			return sysinfo.New(opts...).Collect(ctx)
		},
		stylizer:  color.Apply,
		termWidth: stdoutWidth,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(newApp()).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dracfetch: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dracfetch",
		Short: "Show system information beside a distribution logo",
		Long: `Show system information in a bordered box beside a distribution logo.

The logo is ASCII art for the detected distribution, or an image shown
through the Kitty or iTerm2 inline image protocols.

Examples:
  dracfetch
  dracfetch --no-ascii --lang de
  dracfetch --compact "{host} | {cpu} | {ram}"
  dracfetch --json --pretty`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Configuration `file` (default: ~/.config/dracfetch/config.toml)")
	f.BoolVar(&opts.noASCII, "no-ascii", false, "Hide the logo")
	f.BoolVar(&opts.json, "json", false, "Print the collected data as JSON")
	f.BoolVar(&opts.pretty, "pretty", false, "Indent --json output")
	f.StringVar(&opts.format, "format", "", "Print the collected data as json, yaml or markdown")
	f.StringVar(&opts.compact, "compact", "", "Print one line from a `template` such as \"{host} | {cpu} | {ram}\"")
	f.StringVarP(&opts.lang, "lang", "l", "", "Language for labels: en, es, fr or de")
	f.StringVar(&opts.logoPath, "logo-path", "", "Image `file` shown instead of the ASCII logo")
	f.StringVar(&opts.logoProtocol, "logo-protocol", "", "Image `protocol`: kitty, kitty-direct, iterm2 or blocks")
	f.IntVar(&opts.logoWidth, "logo-width", 0, "Logo width in `pixels`")
	f.IntVar(&opts.logoHeight, "logo-height", 0, "Logo height in `pixels`")
	f.BoolVar(&opts.clearCache, "clear-cache", false, "Remove cached readouts and exit")
	f.BoolVar(&opts.ignoreCache, "ignore-cache", false, "Read everything fresh for this run")
	f.BoolVar(&opts.showConfigPath, "show-config-path", false, "Print the configuration file path and exit")
	f.BoolVarP(&opts.doctor, "doctor", "d", false, "Report readouts that failed and terminal capabilities")
	f.BoolVar(&opts.benchmark, "benchmark", false, "Print how long each readout took")
	f.BoolVarP(&opts.verbose, "verbose", "V", false, "Debug logging on stderr")
	f.StringVar(&opts.logLevel, "log-level", "", "Log `level`: debug, info, warn or error")

	cmd.MarkFlagsMutuallyExclusive("json", "format", "compact")
	cmd.MarkFlagsMutuallyExclusive("doctor", "benchmark")

	cmd.AddCommand(newManCmd(cmd))
	return cmd
}

func newManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: "Print the man page in roff format",
		Long: `Print the dracfetch man page in roff format.

Examples:
  dracfetch man | man -l -
  dracfetch man > ~/.local/share/man/man1/dracfetch.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := manpage.Generate(manpage.Page{
				Version: version,
				Commit:  commit,
				Date:    date,
				Options: manOptions(root.Flags()),
			})
			_, err := io.WriteString(cmd.OutOrStdout(), page)
			return err
		},
	}
}

// manOptions lists the visible flags of fs for the man page.
func manOptions(fs *pflag.FlagSet) []manpage.Option {
	var out []manpage.Option
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		arg, usage := pflag.UnquoteUsage(f)
		out = append(out, manpage.Option{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Arg:       strings.ToUpper(arg),
			Usage:     usage,
		})
	})
	return out
}

func (a *app) run(ctx context.Context, opts options) error {
	if opts.pretty && !opts.json {
		return errPrettyWithoutJSON
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if opts.verbose {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if opts.showConfigPath {
		path := opts.configPath
		if path == "" {
			path = config.Path()
		}
		_, err := fmt.Fprintln(a.stdout, path)
		return err
	}

	cfg, err := loadConfig(opts.configPath, logger)
	if err != nil {
		return err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !opts.verbose {
		l, err := parseLevel(firstNonEmpty(opts.logLevel, cfg.General.LogLevel))
		if err != nil {
			return err
		}
		level.Set(l)
	}

	if opts.clearCache {
		return a.clearCache(cfg, logger)
	}

	var outFormat export.Format
	if opts.format != "" {
		if outFormat, err = export.ParseFormat(opts.format); err != nil {
			return err
		}
	}

	collectOpts := []sysinfo.Option{
		sysinfo.WithLogger(logger),
		sysinfo.WithEnv(a.lookupEnv),
	}
	store := openCache(cfg, opts.ignoreCache, logger)
	if store != nil {
		collectOpts = append(collectOpts, sysinfo.WithCache(store, cfg.Cache.TTL.Duration))
	}

	start := time.Now()
	info := a.collect(ctx, collectOpts...)
	elapsed := time.Since(start)
	if err := ctx.Err(); err != nil {
		return err
	}

	switch {
	case opts.benchmark:
		return writeBenchmark(a.stdout, info, elapsed)
	case opts.doctor:
		return writeDoctor(a.stdout, info, cfg.Plugins, store, a.terminal)
	}

	tr := i18n.New(i18n.Resolve(a.lookupEnv, opts.lang, cfg.General.Language))
	logger.Debug("language", "code", tr.Language().Code)

	switch {
	case outFormat != "":
		return export.Write(a.stdout, outFormat, info, cfg.Plugins, tr)
	case opts.compact != "":
		line := export.Compact(opts.compact, export.Values(info, cfg.Plugins), a.termWidth())
		_, err := fmt.Fprintln(a.stdout, line)
		return err
	case opts.json:
		return export.WriteJSON(a.stdout, export.NewDocument(info, cfg.Plugins), opts.pretty)
	}

	b := banner.NewBanner(banner.BannerConfig{
		Config:     cfg,
		Translator: tr,
		Stylizer:   a.stylizer(),
		Terminal:   a.terminal,
		NoASCII:    opts.noASCII,
		Logger:     logger,
	})
	out, err := b.Generate(ctx, info)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.stdout, out.String())
	return err
}

// loadConfig reads path, or the first config file found. When there is
// none a starter file is written to the default location.
func loadConfig(path string, logger *slog.Logger) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadFromFile(path)
		if err == nil {
			logger.Debug("config loaded", "path", path)
		}
		return cfg, err
	}

	if _, ok := config.Find(); !ok {
		p := config.Path()
		if err := config.WriteDefault(p); err != nil {
			logger.Debug("no starter config written", "path", p, "error", err)
		} else {
			logger.Info("wrote starter config", "path", p)
		}
	}
	cfg, err := config.Load()
	if err == nil {
		logger.Debug("config loaded", "path", config.Path())
	}
	return cfg, err
}

// applyFlags lets logo flags override the config file.
func applyFlags(cfg *config.Config, opts options) {
	if opts.logoPath != "" {
		cfg.Logo.Path = opts.logoPath
	}
	if opts.logoProtocol != "" {
		cfg.Logo.Protocol = strings.ToLower(opts.logoProtocol)
	}
	if opts.logoWidth > 0 {
		cfg.Logo.Width = opts.logoWidth
	}
	if opts.logoHeight > 0 {
		cfg.Logo.Height = opts.logoHeight
	}
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" || strings.EqualFold(s, "warning") {
		return slog.LevelWarn, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, config.ErrInvalidLogLevel)
	}
	return l, nil
}

// openCache returns the readout cache, or nil when it is disabled or
// cannot be created.
func openCache(cfg *config.Config, bypass bool, logger *slog.Logger) *cache.Store {
	if cfg.Cache.Disabled {
		return nil
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		logger.Warn("cache unavailable", "error", err)
		return nil
	}
	store, err := cache.NewStore(dir, logger, cache.WithBypass(bypass))
	if err != nil {
		logger.Warn("cache unavailable", "error", err)
		return nil
	}
	return store
}

func (a *app) clearCache(cfg *config.Config, logger *slog.Logger) error {
	dir, err := cfg.CacheDir()
	if err != nil {
		return err
	}
	store, err := cache.NewStore(dir, logger)
	if err != nil {
		return err
	}
	n, err := store.Clear()
	if err != nil {
		return err
	}
	if n == 0 {
		_, err = fmt.Fprintln(a.stdout, "No cache files were found to clear.")
	} else {
		_, err = fmt.Fprintf(a.stdout, "Removed %d files.\n", n)
	}
	return err
}

// stdoutWidth is the width --compact lines are cut to; 0 when stdout is
// not a terminal.
func stdoutWidth() int {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return 0
	}
	w, _ := banner.DetectTerminalSize()
	return w
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
