package sysinfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// parseOSRelease reads an os-release file. NAME and VERSION win over
// PRETTY_NAME and VERSION_ID; ID is required.
func parseOSRelease(r io.Reader) (OSInfo, error) {
	var name, prettyName, version, versionID, id string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || strings.HasPrefix(key, "#") {
			continue
		}
		value = unquote(value)
		switch key {
		case "NAME":
			name = value
		case "PRETTY_NAME":
			prettyName = value
		case "VERSION":
			version = value
		case "VERSION_ID":
			versionID = value
		case "ID":
			id = value
		}
	}
	if err := scanner.Err(); err != nil {
		return OSInfo{}, fmt.Errorf("read os-release: %w", err)
	}

	if name == "" {
		name = prettyName
	}
	if version == "" {
		version = versionID
	}
	if id == "" {
		return OSInfo{}, fmt.Errorf("os-release: ID: %w", ErrNotFound)
	}
	if name == "" {
		return OSInfo{}, fmt.Errorf("os-release: NAME or PRETTY_NAME: %w", ErrNotFound)
	}
	return OSInfo{Name: name, Version: version, ID: strings.ToLower(id)}, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// parseMeminfo computes used memory as MemTotal - MemAvailable.
// Format: "MemTotal:       16384000 kB"
func parseMeminfo(r io.Reader) (Usage, error) {
	var total, available uint64
	var foundTotal, foundAvailable bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && !(foundTotal && foundAvailable) {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			v, err := parseMeminfoLine(line)
			if err != nil {
				return Usage{}, fmt.Errorf("parse MemTotal: %w", err)
			}
			total, foundTotal = v, true
		case strings.HasPrefix(line, "MemAvailable:"):
			v, err := parseMeminfoLine(line)
			if err != nil {
				return Usage{}, fmt.Errorf("parse MemAvailable: %w", err)
			}
			available, foundAvailable = v, true
		}
	}

	if !foundTotal || total == 0 {
		return Usage{}, fmt.Errorf("meminfo: MemTotal: %w", ErrNotFound)
	}
	if !foundAvailable {
		return Usage{}, fmt.Errorf("meminfo: MemAvailable: %w", ErrNotFound)
	}
	if available > total {
		available = total
	}
	return Usage{Used: (total - available) * 1024, Total: total * 1024}, nil
}

func parseMeminfoLine(line string) (uint64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("too few fields: %q", line)
	}
	return strconv.ParseUint(fields[1], 10, 64)
}

// cpuModelKeys are the /proc/cpuinfo keys that name the processor, in
// preference order. ARM kernels report "Hardware" or "Model" instead of
// "model name".
var cpuModelKeys = []string{"model name", "Hardware", "Model", "cpu model", "cpu"}

// parseCPUInfo returns the processor name from /proc/cpuinfo.
func parseCPUInfo(r io.Reader) (string, error) {
	found := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, seen := found[key]; !seen {
			found[key] = strings.TrimSpace(value)
		}
	}
	for _, key := range cpuModelKeys {
		if v := found[key]; v != "" {
			return cleanCPUName(v), nil
		}
	}
	return "", fmt.Errorf("cpuinfo: model name: %w", ErrNotFound)
}

// cleanCPUName replaces (TM) and (R) with their symbols and collapses runs
// of spaces.
func cleanCPUName(s string) string {
	s = strings.ReplaceAll(s, "(TM)", "™")
	s = strings.ReplaceAll(s, "(tm)", "™")
	s = strings.ReplaceAll(s, "(R)", "®")
	s = strings.ReplaceAll(s, "(r)", "®")
	return strings.Join(strings.Fields(s), " ")
}

// lookupPCINames finds vendor and device names in a pci.ids database.
// IDs may carry a 0x prefix as sysfs writes them.
func lookupPCINames(r io.Reader, vendorID, deviceID string) (vendor, device string, ok bool) {
	vendorID = strings.ToLower(strings.TrimPrefix(vendorID, "0x"))
	deviceID = strings.ToLower(strings.TrimPrefix(deviceID, "0x"))

	inVendor := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		if line[0] != '\t' {
			if inVendor {
				// Devices of a vendor are contiguous.
				return "", "", false
			}
			if strings.HasPrefix(line, vendorID+"  ") {
				inVendor = true
				vendor = strings.TrimSpace(line[len(vendorID)+2:])
			}
			continue
		}
		if inVendor && len(line) > 1 && line[1] != '\t' && strings.HasPrefix(line[1:], deviceID+"  ") {
			return vendor, strings.TrimSpace(line[1+len(deviceID)+2:]), true
		}
	}
	return "", "", false
}

// cleanGPUName shortens pci.ids names: the vendor to its first word (or
// "AMD" for "[AMD/ATI]") and the device to its bracketed marketing name
// when there is one.
func cleanGPUName(vendor, device string) string {
	if strings.Contains(vendor, "[AMD/ATI]") {
		vendor = "AMD"
	} else if first, _, ok := strings.Cut(vendor, " "); ok {
		vendor = first
	}

	if open := strings.IndexByte(device, '['); open >= 0 {
		if end := strings.IndexByte(device[open:], ']'); end >= 0 {
			device = device[open+1 : open+end]
		}
	}
	return strings.TrimSpace(vendor) + " " + strings.TrimSpace(device)
}

// gpuVendors names GPU vendors when pci.ids is unavailable.
var gpuVendors = map[string]string{
	"0x1002": "AMD",
	"0x10de": "NVIDIA",
	"0x8086": "Intel",
}

// parseUptime reads the first field of /proc/uptime.
func parseUptime(data []byte) (time.Duration, error) {
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("uptime: empty")
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("uptime: %w", err)
	}
	return time.Duration(seconds) * time.Second, nil
}

// countDir counts entries in dir. With ext set only regular files with that
// extension count. subtractOne drops a bookkeeping entry such as pacman's
// ALPM_DB_VERSION.
func countDir(dir, ext string, subtractOne bool) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if ext != "" && (!e.Type().IsRegular() || filepath.Ext(e.Name()) != ext) {
			continue
		}
		n++
	}
	if subtractOne && n > 0 {
		n--
	}
	return n, nil
}

// countAPK counts "P:" package records in an apk installed database.
func countAPK(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "P:") {
			n++
		}
	}
	return n, scanner.Err()
}

// packageSource is one package manager database.
type packageSource struct {
	name  string
	count func(c *Collector) (int, error)
}

// sumPackages adds up every source that could be read. It fails only when
// no source was readable.
func (c *Collector) sumPackages(sources []packageSource) (int, error) {
	total, ok := 0, false
	for _, src := range sources {
		n, err := src.count(c)
		if err != nil {
			continue
		}
		ok = true
		total += n
	}
	if !ok {
		return 0, fmt.Errorf("packages: no package database: %w", ErrNotFound)
	}
	return total, nil
}

// cargoSource counts binaries installed with cargo install.
var cargoSource = packageSource{"cargo", func(c *Collector) (int, error) {
	if home := c.env("CARGO_HOME"); home != "" {
		return countDir(filepath.Join(home, "bin"), "", false)
	}
	home := c.env("HOME")
	if home == "" {
		return 0, ErrNotFound
	}
	return countDir(filepath.Join(home, ".cargo", "bin"), "", false)
}}
