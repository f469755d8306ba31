//go:build linux

package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// readHost reports the DMI product family, then the product name, then the
// device-tree model found on ARM boards.
func (c *Collector) readHost() (string, error) {
	candidates := []string{
		c.path("sys", "class", "dmi", "id", "product_family"),
		c.path("sys", "class", "dmi", "id", "product_name"),
		c.path("sys", "firmware", "devicetree", "base", "model"),
	}
	var errs []error
	for _, p := range candidates {
		v, err := readFirstLine(p)
		if err == nil {
			return v, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}

func (c *Collector) readOS() (OSInfo, error) {
	var errs []error
	for _, p := range []string{c.path("etc", "os-release"), c.path("usr", "lib", "os-release")} {
		f, err := os.Open(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		info, err := parseOSRelease(f)
		f.Close()
		return info, err
	}
	return OSInfo{}, errors.Join(errs...)
}

func (c *Collector) readKernel() (string, error) {
	return c.kernelRelease()
}

func (c *Collector) readMemory() (Usage, error) {
	f, err := os.Open(c.path("proc", "meminfo"))
	if err != nil {
		return Usage{}, fmt.Errorf("ram: %w", err)
	}
	defer f.Close()
	u, err := parseMeminfo(f)
	if err != nil {
		return Usage{}, fmt.Errorf("ram: %w", err)
	}
	return u, nil
}

func (c *Collector) readCPU() (string, error) {
	f, err := os.Open(c.path("proc", "cpuinfo"))
	if err != nil {
		return "", err
	}
	defer f.Close()
	return parseCPUInfo(f)
}

// pciIDPaths are the usual locations of the pci.ids database.
var pciIDPaths = [][]string{
	{"usr", "share", "hwdata", "pci.ids"},
	{"usr", "share", "misc", "pci.ids"},
	{"usr", "share", "pci.ids"},
}

// readGPU finds the first display controller (PCI class 0x03xxxx) and
// names it from pci.ids, falling back to the vendor name alone.
func (c *Collector) readGPU() (string, error) {
	devices := c.path("sys", "bus", "pci", "devices")
	entries, err := os.ReadDir(devices)
	if err != nil {
		return "", err
	}

	for _, e := range entries {
		class, err := readFirstLine(c.path("sys", "bus", "pci", "devices", e.Name(), "class"))
		if err != nil || !strings.HasPrefix(class, "0x03") {
			continue
		}
		vendorID, vErr := readFirstLine(c.path("sys", "bus", "pci", "devices", e.Name(), "vendor"))
		deviceID, dErr := readFirstLine(c.path("sys", "bus", "pci", "devices", e.Name(), "device"))
		if vErr == nil && dErr == nil {
			if name, ok := c.lookupPCI(vendorID, deviceID); ok {
				return name, nil
			}
		}
		if vErr == nil {
			if name, ok := gpuVendors[strings.ToLower(vendorID)]; ok {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("no display controller in %s: %w", devices, ErrNotFound)
}

func (c *Collector) lookupPCI(vendorID, deviceID string) (string, bool) {
	for _, elems := range pciIDPaths {
		f, err := os.Open(c.path(elems...))
		if err != nil {
			continue
		}
		vendor, device, ok := lookupPCINames(f, vendorID, deviceID)
		f.Close()
		if ok {
			return cleanGPUName(vendor, device), true
		}
	}
	return "", false
}

func (c *Collector) readUptime() (time.Duration, error) {
	data, err := os.ReadFile(c.path("proc", "uptime"))
	if err != nil {
		return 0, err
	}
	return parseUptime(data)
}

var linuxPackageSources = []packageSource{
	{"apk", func(c *Collector) (int, error) {
		return countAPK(c.path("lib", "apk", "db", "installed"))
	}},
	{"dpkg", func(c *Collector) (int, error) {
		return countDir(c.path("var", "lib", "dpkg", "info"), ".list", false)
	}},
	{"pacman", func(c *Collector) (int, error) {
		return countDir(c.path("var", "lib", "pacman", "local"), "", true)
	}},
	{"flatpak", func(c *Collector) (int, error) {
		return countDir(c.path("var", "lib", "flatpak", "app"), "", false)
	}},
	cargoSource,
}

func (c *Collector) readPackages() (int, error) {
	return c.sumPackages(linuxPackageSources)
}

// runningProcesses lists the comm names of running processes.
func (c *Collector) runningProcesses() []string {
	entries, err := os.ReadDir(c.path("proc"))
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() || e.Name()[0] < '0' || e.Name()[0] > '9' {
			continue
		}
		if comm, err := readFirstLine(c.path("proc", e.Name(), "comm")); err == nil {
			names = append(names, comm)
		}
	}
	return names
}

func readFirstLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	// Device-tree strings are NUL terminated.
	line = strings.TrimSpace(strings.TrimRight(line, "\x00"))
	if line == "" {
		return "", fmt.Errorf("%s is empty: %w", path, ErrNotFound)
	}
	return line, nil
}

func unameRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}

// statfsUsage reports used and total bytes of the filesystem at path.
func statfsUsage(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	if st.Blocks == 0 {
		return Usage{}, fmt.Errorf("statfs %s: zero blocks: %w", path, ErrNotFound)
	}
	bsize := uint64(st.Bsize)
	return Usage{Used: (st.Blocks - st.Bfree) * bsize, Total: st.Blocks * bsize}, nil
}
