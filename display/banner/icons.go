package banner

import (
	"runtime"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/dracfetch/config"
)

// IconSet holds the glyph drawn before each row label. Every icon carries
// its own surrounding spaces.
type IconSet struct {
	Calendar           string
	DesktopEnvironment string
	Disk               string
	Host               string
	Kernel             string
	Memory             string
	CPU                string
	GPU                string
	Uptime             string
	OS                 string
	Package            string
	Palette            string
	Shell              string
	User               string
	WindowManager      string
}

// NerdIcons needs a Nerd Font patched terminal font.
var NerdIcons = IconSet{
	Calendar:           " \uf073  ",
	DesktopEnvironment: " \U000f01c4  ",
	Disk:               " \U000f02ca  ",
	Host:               " \U000f0322  ",
	Kernel:             " \uf21e  ",
	Memory:             " \uee9c  ",
	CPU:                nerdCPUIcon(),
	GPU:                " \uf2db  ",
	Uptime:             " \uf017  ",
	OS:                 nerdOSIcon(runtime.GOOS),
	Package:            " \U000f03d6  ",
	Palette:            " \uf1fb  ",
	Shell:              " \ue795  ",
	User:               " \uf007  ",
	WindowManager:      " \ueb7f  ",
}

// EmojiIcons works with any color emoji font.
var EmojiIcons = IconSet{
	Calendar:           " 📅 ",
	DesktopEnvironment: " 🖥️ ",
	Disk:               " 💾 ",
	Host:               " 💻 ",
	Kernel:             " 🫀 ",
	Memory:             " 🧠 ",
	CPU:                " 💻 ",
	GPU:                " 🎨 ",
	Uptime:             " ⏰ ",
	OS:                 " 🤖 ",
	Package:            " 📦 ",
	Palette:            " 🎨 ",
	Shell:              " 💲 ",
	User:               " 👤 ",
	WindowManager:      " 🪟 ",
}

// NoIcons draws rows without icons.
var NoIcons = IconSet{}

func nerdCPUIcon() string {
	if strconv.IntSize == 64 {
		return " \U000f0ee0  "
	}
	return " \U000f0edf  "
}

func nerdOSIcon(goos string) string {
	switch goos {
	case "linux":
		return " \U000f033d  "
	case "darwin":
		return " \uf302  "
	case "windows":
		return " \ue62a  "
	case "freebsd":
		return " \uf30c  "
	default:
		return " \ue617  "
	}
}

// ParseIconSet returns the icon set named by the config ("nerd", "emoji"
// or "none"). Unknown names get the Nerd Font set.
func ParseIconSet(name string) IconSet {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case config.IconsEmoji:
		return EmojiIcons
	case config.IconsNone:
		return NoIcons
	default:
		return NerdIcons
	}
}

// distroIcons is searched in order; the first name contained in the OS id
// wins.
var distroIcons = []struct {
	name string
	icon string
}{
	{"arch", " \uf303  "},
	{"nixos", " \uf313  "},
	{"popos", " \uf32a  "},
	{"zorin", " \uf32f  "},
	{"debian", " \uf306  "},
	{"fedora", " \uf30a  "},
	{"gentoo", " \uf30d  "},
	{"ubuntu", " \uf31b  "},
	{"alpine", " \uf300  "},
	{"manjaro", " \uf312  "},
	{"linuxmint", " \uf30e  "},
	{"voidlinux", " \uf32e  "},
}

// DistroIcon returns the Nerd Font logo of the Linux distribution whose
// name appears in osID.
func DistroIcon(osID string) (string, bool) {
	for _, d := range distroIcons {
		if strings.Contains(osID, d.name) {
			return d.icon, true
		}
	}
	return "", false
}
