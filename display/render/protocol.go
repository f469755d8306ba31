// Package render builds inline-image escape sequences for terminal logos.
// It supports the Kitty Graphics Protocol (payload and file-path transfer)
// and iTerm2 inline images, decides whether the attached terminal can show
// them, and probes PNG/JPEG headers for the image's pixel size. Images can
// also be drawn as colored half-block text.
package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedProtocol is returned when the terminal cannot display
	// the requested inline-image protocol.
	ErrUnsupportedProtocol = errors.New("inline images not supported by terminal")

	// ErrNoImage is returned when no usable image path or payload exists.
	ErrNoImage = errors.New("no usable image")

	// ErrUnknownProtocol is returned by ParseProtocolStrict for unrecognized names.
	ErrUnknownProtocol = errors.New("unknown logo protocol")
)

// LogoProtocol identifies which inline-image protocol to use.
type LogoProtocol int

const (
	// ProtocolKitty sends the PNG payload inline using the Kitty Graphics Protocol.
	ProtocolKitty LogoProtocol = iota
	// ProtocolKittyDirect asks a Kitty-compatible terminal to read the file itself.
	ProtocolKittyDirect
	// ProtocolITerm2 uses iTerm2 native inline images.
	ProtocolITerm2
	// ProtocolBlocks draws the image as colored half-block text. It needs
	// no terminal graphics support and is never sent inline.
	ProtocolBlocks
)

// String returns the config spelling of the protocol.
func (p LogoProtocol) String() string {
	switch p {
	case ProtocolKitty:
		return "kitty"
	case ProtocolKittyDirect:
		return "kitty-direct"
	case ProtocolITerm2:
		return "iterm2"
	case ProtocolBlocks:
		return "blocks"
	default:
		return "unknown"
	}
}

// ParseProtocol maps a protocol name to a LogoProtocol, ignoring case.
// Unrecognized names select ProtocolKitty.
func ParseProtocol(s string) LogoProtocol {
	p, err := ParseProtocolStrict(s)
	if err != nil {
		return ProtocolKitty
	}
	return p
}

// ParseProtocolStrict is ParseProtocol for config validation: unknown
// names are reported instead of defaulted. The empty string is "kitty".
func ParseProtocolStrict(s string) (LogoProtocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kitty":
		return ProtocolKitty, nil
	case "kitty-direct":
		return ProtocolKittyDirect, nil
	case "iterm2":
		return ProtocolITerm2, nil
	case "blocks":
		return ProtocolBlocks, nil
	default:
		return ProtocolKitty, fmt.Errorf("render: parse protocol %q: %w", s, ErrUnknownProtocol)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p LogoProtocol) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *LogoProtocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocolStrict(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// SupportsInlineImages reports whether term can display images sent with p.
//
// Detection rules:
//  0. ProtocolBlocks is text and never inline
//  1. stdout must be a terminal
//  2. TERM_PROGRAM=WezTerm speaks every protocol
//  3. Kitty family: KITTY_WINDOW_ID is set, or TERM contains "kitty"
//  4. iTerm2: TERM_PROGRAM=iTerm.app or LC_TERMINAL=iTerm2
func SupportsInlineImages(term Terminal, p LogoProtocol) bool {
	if p == ProtocolBlocks || term == nil || !term.IsTerminal() {
		return false
	}

	if v, _ := term.LookupEnv("TERM_PROGRAM"); v == "WezTerm" {
		return true
	}

	switch p {
	case ProtocolKitty, ProtocolKittyDirect:
		if _, ok := term.LookupEnv("KITTY_WINDOW_ID"); ok {
			return true
		}
		v, _ := term.LookupEnv("TERM")
		return strings.Contains(v, "kitty")
	case ProtocolITerm2:
		if v, _ := term.LookupEnv("TERM_PROGRAM"); v == "iTerm.app" {
			return true
		}
		v, _ := term.LookupEnv("LC_TERMINAL")
		return v == "iTerm2"
	default:
		return false
	}
}

// IsSSHSession returns true if term is attached through SSH.
// Inline images often fail to survive an SSH hop, so --doctor reports it.
func IsSSHSession(term Terminal) bool {
	for _, key := range []string{"SSH_CLIENT", "SSH_CONNECTION", "SSH_TTY"} {
		if v, _ := term.LookupEnv(key); v != "" {
			return true
		}
	}
	return false
}

// IsTmuxSession returns true if term is running inside tmux.
// Kitty graphics need tmux 3.4+ with allow-passthrough.
func IsTmuxSession(term Terminal) bool {
	v, _ := term.LookupEnv("TMUX")
	return v != ""
}

// Diagnostics summarizes the inline-image environment for --doctor.
type Diagnostics struct {
	TTY         bool
	Kitty       bool
	ITerm2      bool
	SSH         bool
	Tmux        bool
	Cell        CellMetrics
	CellKnown   bool
	TermProgram string
}

// Diagnose collects Diagnostics for term.
func Diagnose(term Terminal) Diagnostics {
	d := Diagnostics{
		TTY:    term.IsTerminal(),
		Kitty:  SupportsInlineImages(term, ProtocolKitty),
		ITerm2: SupportsInlineImages(term, ProtocolITerm2),
		SSH:    IsSSHSession(term),
		Tmux:   IsTmuxSession(term),
	}
	d.Cell, d.CellKnown = term.CellMetrics()
	d.TermProgram, _ = term.LookupEnv("TERM_PROGRAM")
	return d
}

// String renders the diagnostics as indented report lines.
func (d Diagnostics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  tty:          %v\n", d.TTY)
	fmt.Fprintf(&b, "  term program: %s\n", orNone(d.TermProgram))
	fmt.Fprintf(&b, "  kitty:        %v\n", d.Kitty)
	fmt.Fprintf(&b, "  iterm2:       %v\n", d.ITerm2)
	fmt.Fprintf(&b, "  ssh:          %v\n", d.SSH)
	fmt.Fprintf(&b, "  tmux:         %v\n", d.Tmux)
	if d.CellKnown {
		fmt.Fprintf(&b, "  cell size:    %.1fx%.1f px\n", d.Cell.Width, d.Cell.Height)
	} else {
		fmt.Fprintf(&b, "  cell size:    unknown (assuming %dpx)\n", FallbackCellPixels)
	}
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
