// Package export writes collected system info in machine-readable and
// one-line formats instead of the box.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/dracfetch/collectors/sysinfo"
	"gitlab.com/tinyland/lab/dracfetch/config"
	"gitlab.com/tinyland/lab/dracfetch/i18n"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is a --format value.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a format name, ignoring case. "yml" and "md" are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("export: %q: %w", s, ErrUnknownFormat)
}

// Document is the serialized form of the collected info. Absent fields
// are omitted.
type Document struct {
	Date            string                       `json:"date,omitempty" yaml:"date,omitempty"`
	Host            string                       `json:"host,omitempty" yaml:"host,omitempty"`
	KernelVersion   string                       `json:"kernelVersion,omitempty" yaml:"kernelVersion,omitempty"`
	OperatingSystem *OS                          `json:"operatingSystem,omitempty" yaml:"operatingSystem,omitempty"`
	MemInfo         *Usage                       `json:"memInfo,omitempty" yaml:"memInfo,omitempty"`
	DesktopEnv      string                       `json:"desktopEnv,omitempty" yaml:"desktopEnv,omitempty"`
	WindowMgr       string                       `json:"windowMgr,omitempty" yaml:"windowMgr,omitempty"`
	DiskUsage       *Usage                       `json:"diskUsage,omitempty" yaml:"diskUsage,omitempty"`
	Shell           string                       `json:"shell,omitempty" yaml:"shell,omitempty"`
	CPUModel        string                       `json:"cpuModel,omitempty" yaml:"cpuModel,omitempty"`
	GPUModel        string                       `json:"gpuModel,omitempty" yaml:"gpuModel,omitempty"`
	UptimeSeconds   int64                        `json:"uptimeSeconds,omitempty" yaml:"uptimeSeconds,omitempty"`
	PackageCount    int                          `json:"packageCount,omitempty" yaml:"packageCount,omitempty"`
	PluginFields    map[string]map[string]string `json:"pluginFields,omitempty" yaml:"pluginFields,omitempty"`
}

// OS identifies the operating system.
type OS struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	ID      string `json:"id" yaml:"id"`
}

// Usage is a used/total pair in bytes.
type Usage struct {
	UsedBytes  uint64 `json:"usedBytes" yaml:"usedBytes"`
	TotalBytes uint64 `json:"totalBytes" yaml:"totalBytes"`
}

// NewDocument converts info and the plugin fields from config. A nil info
// yields an empty document.
func NewDocument(info *sysinfo.Info, plugins map[string]config.Plugin) Document {
	if info == nil {
		info = &sysinfo.Info{}
	}
	doc := Document{
		Date:          info.Date,
		Host:          info.Host,
		KernelVersion: info.Kernel,
		DesktopEnv:    info.DE,
		WindowMgr:     info.WM,
		Shell:         info.Shell,
		CPUModel:      info.CPU,
		GPUModel:      info.GPU,
		UptimeSeconds: int64(info.Uptime.Seconds()),
		PackageCount:  info.Packages,
		MemInfo:       convertUsage(info.Memory),
		DiskUsage:     convertUsage(info.Disk),
	}
	if info.OS != nil {
		doc.OperatingSystem = &OS{Name: info.OS.Name, Version: info.OS.Version, ID: info.OS.ID}
	}
	for id, p := range plugins {
		if len(p.Fields) == 0 {
			continue
		}
		if doc.PluginFields == nil {
			doc.PluginFields = make(map[string]map[string]string)
		}
		doc.PluginFields[id] = p.Fields
	}
	return doc
}

func convertUsage(u *sysinfo.Usage) *Usage {
	if u == nil {
		return nil
	}
	return &Usage{UsedBytes: u.Used, TotalBytes: u.Total}
}

// WriteJSON writes doc as a single line of JSON, or indented when pretty
// is set.
func WriteJSON(w io.Writer, doc Document, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: json: %w", err)
	}
	return nil
}

// WriteYAML writes doc as a YAML document.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: yaml: %w", err)
	}
	return nil
}

// Write renders info in format f. Markdown labels are translated with tr,
// which may be nil.
func Write(w io.Writer, f Format, info *sysinfo.Info, plugins map[string]config.Plugin, tr i18n.Translator) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, NewDocument(info, plugins), true)
	case FormatYAML:
		return WriteYAML(w, NewDocument(info, plugins))
	case FormatMarkdown:
		return WriteMarkdown(w, Values(info, plugins), tr)
	}
	return fmt.Errorf("export: %q: %w", f, ErrUnknownFormat)
}
