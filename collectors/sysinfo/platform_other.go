//go:build !linux && !darwin

package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

func (c *Collector) readHost() (string, error) {
	return os.Hostname()
}

// readOS names the platform from GOOS; there is no portable version source.
func (c *Collector) readOS() (OSInfo, error) {
	return OSInfo{Name: runtime.GOOS, ID: runtime.GOOS}, nil
}

func (c *Collector) readKernel() (string, error) {
	return c.kernelRelease()
}

func (c *Collector) readMemory() (Usage, error) {
	return Usage{}, fmt.Errorf("ram: %w", ErrUnsupported)
}

func (c *Collector) readCPU() (string, error) {
	return "", fmt.Errorf("cpu: %w", ErrUnsupported)
}

func (c *Collector) readGPU() (string, error) {
	return "", fmt.Errorf("gpu: %w", ErrUnsupported)
}

func (c *Collector) readUptime() (time.Duration, error) {
	return 0, fmt.Errorf("uptime: %w", ErrUnsupported)
}

func (c *Collector) readPackages() (int, error) {
	return c.sumPackages([]packageSource{cargoSource})
}

func (c *Collector) runningProcesses() []string {
	return nil
}

func unameRelease() (string, error) {
	return "", fmt.Errorf("kernel: %w", ErrUnsupported)
}

func statfsUsage(path string) (Usage, error) {
	return Usage{}, fmt.Errorf("disk: %w", ErrUnsupported)
}
