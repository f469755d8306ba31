package export

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/dracfetch/collectors/sysinfo"
	"gitlab.com/tinyland/lab/dracfetch/config"
	"gitlab.com/tinyland/lab/dracfetch/i18n"
	"gitlab.com/tinyland/lab/dracfetch/internal/format"
)

// Values flattens info into the placeholder map used by compact templates
// and the markdown table. Only fields with a value are present. Plugin
// fields appear as plugin_<id>_<field>.
func Values(info *sysinfo.Info, plugins map[string]config.Plugin) map[string]string {
	if info == nil {
		info = &sysinfo.Info{}
	}
	m := make(map[string]string)
	set := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}

	set("date", info.Date)
	set("host", info.Host)
	set("kernel", info.Kernel)
	set("shell", info.Shell)
	set("cpu", info.CPU)
	set("gpu", info.GPU)
	set("de", info.DE)
	set("wm", info.WM)

	if info.OS != nil {
		set("os", strings.TrimSpace(info.OS.Name+" "+info.OS.Version))
		set("os_name", info.OS.Name)
		set("os_version", info.OS.Version)
		set("os_id", info.OS.ID)
	}
	if u := info.Memory; u != nil {
		set("ram", format.Usage(u.Used, u.Total))
		set("memory_used_bytes", strconv.FormatUint(u.Used, 10))
		set("memory_total_bytes", strconv.FormatUint(u.Total, 10))
	}
	if u := info.Disk; u != nil {
		set("disk", format.Usage(u.Used, u.Total))
		set("disk_used_bytes", strconv.FormatUint(u.Used, 10))
		set("disk_total_bytes", strconv.FormatUint(u.Total, 10))
	}
	if info.Uptime > 0 {
		set("uptime", format.Uptime(info.Uptime))
		set("uptime_seconds", strconv.FormatInt(int64(info.Uptime.Seconds()), 10))
	}
	if info.Packages > 0 {
		set("packages", strconv.Itoa(info.Packages))
	}

	for id, p := range plugins {
		for field, v := range p.Fields {
			set("plugin_"+id+"_"+field, v)
		}
	}
	return m
}

// Compact fills the {key} placeholders of tmpl from values. Placeholders
// without a value are removed. When maxWidth is positive each output line
// is truncated to that many columns.
func Compact(tmpl string, values map[string]string, maxWidth int) string {
	var sb strings.Builder
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		sb.WriteString(rest[:open])
		sb.WriteString(values[rest[open+1:open+end]])
		rest = rest[open+end+1:]
	}
	sb.WriteString(rest)

	out := sb.String()
	if maxWidth <= 0 {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = format.TruncateWidth(l, maxWidth)
	}
	return strings.Join(lines, "\n")
}

// markdownKeys is the row order of the markdown table; plugin fields
// follow in key order.
var markdownKeys = []string{
	"date", "host", "os", "kernel", "ram", "disk", "cpu", "gpu",
	"uptime", "shell", "packages", "de", "wm",
}

// WriteMarkdown writes values as a two-column markdown table. Labels are
// translated with tr when it is non-nil.
func WriteMarkdown(w io.Writer, values map[string]string, tr i18n.Translator) error {
	var plugins []string
	for k := range values {
		if strings.HasPrefix(k, "plugin_") {
			plugins = append(plugins, k)
		}
	}
	slices.Sort(plugins)

	var sb strings.Builder
	sb.WriteString("| Field | Value |\n| --- | --- |\n")
	for _, k := range append(slices.Clone(markdownKeys), plugins...) {
		v, ok := values[k]
		if !ok {
			continue
		}
		label := k
		if tr != nil && !strings.HasPrefix(k, "plugin_") {
			label = tr.T(k)
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", escapeCell(label), escapeCell(v))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("export: markdown: %w", err)
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
