// Package ascii holds the built-in ASCII-art logos, keyed by OS id.
package ascii

import "strings"

// catalog is searched in order; the first key contained in the OS id wins.
var catalog = []struct {
	key string
	art string
}{
	{"arch", Arch},
	{"macos", MacOS},
	{"nixos", NixOS},
	{"debian", Debian},
	{"fedora", Fedora},
	{"ubuntu", Ubuntu},
	{"windows", Windows},
}

// Lookup returns the logo lines for the first catalog key contained in
// osID, compared case-insensitively. It returns nil when nothing matches.
func Lookup(osID string) []string {
	id := strings.ToLower(osID)
	if id == "" {
		return nil
	}
	for _, entry := range catalog {
		if strings.Contains(id, entry.key) {
			return strings.Split(entry.art, "\n")
		}
	}
	return nil
}

// Keys returns the OS ids that have a logo, in lookup order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, entry := range catalog {
		keys[i] = entry.key
	}
	return keys
}
