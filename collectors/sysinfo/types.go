// Package sysinfo reads the system facts shown in the dracfetch box.
// Each field is read by its own probe; probes run concurrently and record
// their error and duration so failures can be diagnosed with --doctor.
package sysinfo

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by probes that have no implementation on the
// running platform.
var ErrUnsupported = errors.New("not supported on this platform")

// ErrNotFound is returned when a probe ran but found nothing to report.
var ErrNotFound = errors.New("not found")

// Field names, also used as cache keys and layout row keys.
const (
	FieldDate     = "date"
	FieldHost     = "host"
	FieldOS       = "os"
	FieldKernel   = "kernel"
	FieldMemory   = "ram"
	FieldDisk     = "disk"
	FieldCPU      = "cpu"
	FieldGPU      = "gpu"
	FieldUptime   = "uptime"
	FieldShell    = "shell"
	FieldPackages = "packages"
	FieldDE       = "de"
	FieldWM       = "wm"
)

// Info holds everything the collectors found. Zero values mean the field
// could not be read; Readouts says why.
type Info struct {
	Date     string        `json:"date,omitempty"`
	Host     string        `json:"host,omitempty"`
	OS       *OSInfo       `json:"os,omitempty"`
	Kernel   string        `json:"kernel,omitempty"`
	Memory   *Usage        `json:"memory,omitempty"`
	Disk     *Usage        `json:"disk,omitempty"`
	CPU      string        `json:"cpu,omitempty"`
	GPU      string        `json:"gpu,omitempty"`
	Uptime   time.Duration `json:"uptime,omitempty"`
	Shell    string        `json:"shell,omitempty"`
	Packages int           `json:"packages,omitempty"`
	DE       string        `json:"de,omitempty"`
	WM       string        `json:"wm,omitempty"`

	// Readouts is one entry per probe, in probe order.
	Readouts []Readout `json:"-"`
}

// OSInfo identifies the operating system.
type OSInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	// ID is the lowercase distribution id ("arch", "nixos", "macos").
	ID string `json:"id"`
}

// Usage is a used/total pair in bytes.
type Usage struct {
	Used  uint64 `json:"used_bytes"`
	Total uint64 `json:"total_bytes"`
}

// Readout records how one probe went.
type Readout struct {
	Field    string
	Err      error
	Duration time.Duration
	Cached   bool
}

// OK reports whether the probe produced a value.
func (r Readout) OK() bool {
	return r.Err == nil
}

// Failed returns the readouts that carry an error.
func (i *Info) Failed() []Readout {
	var out []Readout
	for _, r := range i.Readouts {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
