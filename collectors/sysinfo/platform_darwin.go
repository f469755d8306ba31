//go:build darwin

package sysinfo

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func (c *Collector) readHost() (string, error) {
	return unix.Sysctl("hw.model")
}

func (c *Collector) readOS() (OSInfo, error) {
	version, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return OSInfo{}, err
	}
	return OSInfo{Name: "macOS", Version: version, ID: "macos"}, nil
}

func (c *Collector) readKernel() (string, error) {
	return c.kernelRelease()
}

// readMemory reports total memory only; page accounting needs Mach calls
// x/sys does not wrap.
func (c *Collector) readMemory() (Usage, error) {
	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return Usage{}, err
	}
	return Usage{Total: total}, nil
}

func (c *Collector) readCPU() (string, error) {
	v, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return "", err
	}
	return cleanCPUName(v), nil
}

func (c *Collector) readGPU() (string, error) {
	return "", fmt.Errorf("gpu: %w", ErrUnsupported)
}

// readUptime derives uptime from kern.boottime.
func (c *Collector) readUptime() (time.Duration, error) {
	tv, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0, err
	}
	boot := time.Unix(tv.Sec, int64(tv.Usec)*1000)
	return time.Since(boot), nil
}

var darwinPackageSources = []packageSource{
	{"homebrew", func(c *Collector) (int, error) {
		n, err := countDir(c.path("opt", "homebrew", "Cellar"), "", false)
		if err != nil {
			return countDir(c.path("usr", "local", "Cellar"), "", false)
		}
		return n, nil
	}},
	{"macports", func(c *Collector) (int, error) {
		return countDir(c.path("opt", "local", "var", "macports", "software"), "", false)
	}},
	cargoSource,
}

func (c *Collector) readPackages() (int, error) {
	return c.sumPackages(darwinPackageSources)
}

func (c *Collector) runningProcesses() []string {
	return nil
}

func unameRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}

func statfsUsage(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	bsize := uint64(st.Bsize)
	return Usage{Used: (st.Blocks - st.Bfree) * bsize, Total: st.Blocks * bsize}, nil
}
