// Package manpage generates a roff-formatted man page for dracfetch.
//
// The OPTIONS section is built from the command's registered flags and the
// footer from the compiled-in version information, so the page cannot drift
// from the binary that prints it.
//
// Usage:
//
//	dracfetch man | man -l -
//	dracfetch man > ~/.local/share/man/man1/dracfetch.1
package manpage

import (
	"fmt"
	"strings"
	"time"
)

// Option describes one command-line flag.
type Option struct {
	Name      string
	Shorthand string
	// Arg names the flag's value; empty for boolean flags.
	Arg   string
	Usage string
}

// Page holds everything the generated page depends on.
type Page struct {
	Version string
	Commit  string
	Date    string
	Options []Option
}

// Generate produces a complete roff-formatted man(1) page.
func Generate(p Page) string {
	var b strings.Builder

	writeHeader(&b, p.Version)
	writeName(&b)
	writeSynopsis(&b)
	writeDescription(&b)
	writeOptions(&b, p.Options)
	writeConfiguration(&b)
	writeFiles(&b)
	writeExamples(&b)
	writeEnvironment(&b)
	writeExitStatus(&b)
	writeSeeAlso(&b)
	writeFooter(&b, p.Version, p.Commit, p.Date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	s = strings.ReplaceAll(s, `.`, `\&.`)
	return s
}

func writeHeader(b *strings.Builder, version string) {
	month := time.Now().Format("January 2006")
	fmt.Fprintf(b, ".TH DRACFETCH 1 \"%s\" \"dracfetch %s\" \"User Commands\"\n", month, version)
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
dracfetch \- show system information beside a distribution logo
`)
}

func writeSynopsis(b *strings.Builder) {
	b.WriteString(`.SH SYNOPSIS
.B dracfetch
[\fIOPTIONS\fR]
.br
.B dracfetch completion
\fISHELL\fR
.br
.B dracfetch man
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B dracfetch
collects facts about the running system (host, operating system, kernel,
memory, disk, CPU, GPU, uptime, shell, package count, desktop environment
and window manager) and prints them in a bordered box next to a logo.
.PP
The logo is ASCII art chosen by distribution, or an image shown through the
Kitty or iTerm2 inline image protocols when the terminal supports them.
.PP
Instead of the box the same data can be written as JSON, YAML, a markdown
table, or a single line built from a \fB\-\-compact\fR template.
Slow and rarely changing readouts are cached between runs.
`)
}

func writeOptions(b *strings.Builder, opts []Option) {
	b.WriteString(".SH OPTIONS\n")
	for _, o := range opts {
		b.WriteString(".TP\n")
		name := `\-\-` + roffEscape(o.Name)
		if o.Shorthand != "" {
			name = `\-` + roffEscape(o.Shorthand) + `, ` + name
		}
		if o.Arg != "" {
			fmt.Fprintf(b, ".BR \"%s\" \" \\fI%s\\fR\"\n", name, roffEscape(o.Arg))
		} else {
			fmt.Fprintf(b, ".B %s\n", name)
		}
		b.WriteString(roffEscape(o.Usage) + "\n")
	}
}

func writeConfiguration(b *strings.Builder) {
	b.WriteString(`.SH CONFIGURATION
Configuration is read from TOML. A starter file is written on the first run
when none exists. Unknown keys are ignored.
.SS [general]
.TP
.B name
Name shown in the greeting. Default: $USER.
.TP
.B language
Translation table: en, es, fr or de. Default: detected from LANG.
.TP
.B log_level
debug, info, warn or error. Default: warn.
.SS [logo]
.TP
.B path
Image shown instead of the ASCII logo.
.TP
.B protocol
kitty (default), kitty\-direct, iterm2, or blocks to draw the image
with colored half\-block characters in any color terminal.
.TP
.B width, height
Image size in pixels. When only one is given the other follows the image's
aspect ratio.
.SS [ui]
.TP
.B icons
nerd (default), emoji or none.
.TP
.B [[ui.layout]]
Replaces the built\-in layout. Each group has a \fBname\fR and
\fB[[ui.layout.rows]]\fR entries with \fBkey\fR and the optional
\fBlabel\fR, \fBicon\fR, \fBcolor\fR and \fBauto_wrap\fR.
.SS [cache]
.TP
.B dir
Cache directory. Default: $XDG_CACHE_HOME/dracfetch.
.TP
.B ttl
How long cached readouts stay valid, e.g. "6h".
.TP
.B disabled
Never read or write the cache.
.SS [plugins.ID]
Static rows addressed as \fBplugin.ID\fR or \fBplugin.ID.FIELD\fR in the
layout, with \fBlabel\fR, \fBicon\fR, \fBvalue\fR and a \fBfields\fR table.
`)
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.config/dracfetch/config.toml
Primary configuration file.
.TP
.I ~/.dracfetch/config.toml
Legacy configuration location.
.TP
.I ~/.cache/dracfetch/
Cached readouts, one JSON file per field.
`)
}

func writeExamples(b *strings.Builder) {
	b.WriteString(`.SH EXAMPLES
Show the box without a logo:
.PP
.nf
dracfetch \-\-no\-ascii
.fi
.PP
Print one line for a status bar:
.PP
.nf
dracfetch \-\-compact "{host} | {cpu} | {ram}"
.fi
.PP
Export as pretty JSON or YAML:
.PP
.nf
dracfetch \-\-json \-\-pretty
dracfetch \-\-format yaml
.fi
.PP
Show an image logo in Kitty:
.PP
.nf
dracfetch \-\-logo\-path ~/logo.png \-\-logo\-width 240
.fi
.PP
Find out why a row is missing:
.PP
.nf
dracfetch \-\-doctor
.fi
`)
}

func writeEnvironment(b *strings.Builder) {
	b.WriteString(`.SH ENVIRONMENT
.TP
.B DRACFETCH_LOGO, DRACFETCH_PROTOCOL
Override the logo path and protocol.
.TP
.B DRACFETCH_LOGO_WIDTH, DRACFETCH_LOGO_HEIGHT
Override the logo size in pixels.
.TP
.B DRACFETCH_LANG
Override the language.
.TP
.B LC_ALL, LC_MESSAGES, LANG
Used to pick the language when none is configured.
.TP
.B NO_COLOR
Disable colored output.
.TP
.B XDG_CONFIG_HOME, XDG_CACHE_HOME
Base directories for the configuration and cache.
`)
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(".SH EXIT STATUS\n")
	b.WriteString(".TP\n.B 0\n")
	b.WriteString("Success, including runs where some readouts failed.\n")
	b.WriteString(".TP\n.B 1\n")
	b.WriteString("Invalid flags or configuration, or output could not be written.\n")
}

func writeSeeAlso(b *strings.Builder) {
	b.WriteString(`.SH SEE ALSO
.BR neofetch (1),
.BR fastfetch (1),
.BR kitty (1)
`)
}

func writeFooter(b *strings.Builder, version, commit, date string) {
	fmt.Fprintf(b, ".SH VERSION\n%s (%s) built %s\n", version, commit, date)
}
