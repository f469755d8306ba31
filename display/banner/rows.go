package banner

import (
	"slices"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/dracfetch/collectors/sysinfo"
	"gitlab.com/tinyland/lab/dracfetch/config"
	"gitlab.com/tinyland/lab/dracfetch/display/color"
	"gitlab.com/tinyland/lab/dracfetch/i18n"
	"gitlab.com/tinyland/lab/dracfetch/internal/format"
)

const pluginPrefix = "plugin."

// RowData is everything a layout row key can resolve against.
type RowData struct {
	Info       *sysinfo.Info
	Plugins    map[string]config.Plugin
	Icons      IconSet
	Translator i18n.Translator
}

// DefaultLayout is used when the config has no [[ui.layout]] groups. Each
// plugin gets a row in the intro group, in id order.
func DefaultLayout(pluginIDs []string) []config.LayoutGroup {
	ids := slices.Clone(pluginIDs)
	slices.Sort(ids)

	intro := config.LayoutGroup{Name: "intro", Rows: []config.LayoutRow{{Key: sysinfo.FieldDate}}}
	for _, id := range ids {
		intro.Rows = append(intro.Rows, config.LayoutRow{Key: pluginPrefix + id})
	}

	return []config.LayoutGroup{
		intro,
		{Name: "system", Rows: keys(sysinfo.FieldHost, sysinfo.FieldOS, sysinfo.FieldKernel)},
		{Name: "hardware", Rows: keys(sysinfo.FieldMemory, sysinfo.FieldDisk, sysinfo.FieldCPU, sysinfo.FieldGPU, sysinfo.FieldUptime)},
		{Name: "software", Rows: keys(sysinfo.FieldShell, sysinfo.FieldPackages)},
		{Name: "environment", Rows: keys(sysinfo.FieldDE, sysinfo.FieldWM)},
	}
}

func keys(ks ...string) []config.LayoutRow {
	rows := make([]config.LayoutRow, len(ks))
	for i, k := range ks {
		rows[i].Key = k
	}
	return rows
}

// BuildGroups resolves every layout row against d. Rows whose data is
// missing are dropped; a group may end up empty.
func BuildGroups(layout []config.LayoutGroup, d RowData) []Group {
	groups := make([]Group, 0, len(layout))
	for _, lg := range layout {
		g := Group{Name: lg.Name}
		for _, lr := range lg.Rows {
			if row, ok := d.Row(lr); ok {
				g.Rows = append(g.Rows, row)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// Row resolves one layout row. Built-in keys match case-insensitively;
// plugin keys are case-sensitive after the "plugin." prefix.
func (d RowData) Row(lr config.LayoutRow) (Row, bool) {
	var (
		row Row
		ok  bool
	)
	if id, field, isPlugin := ParsePluginKey(lr.Key); isPlugin {
		row, ok = d.pluginRow(id, field)
	} else if build, known := rowBuilders[strings.ToLower(lr.Key)]; known {
		row, ok = build(d, d.info())
	}
	if !ok {
		return Row{}, false
	}

	if lr.Icon != nil {
		row.Icon = *lr.Icon
	}
	if lr.Label != nil {
		row.Label = *lr.Label
	}
	row.Color = color.White
	if lr.Color != nil {
		row.Color = *lr.Color
	}
	row.AutoWrap = lr.AutoWrap
	return row, true
}

// ParsePluginKey splits "plugin.<id>" and "plugin.<id>.<field>" keys.
// Field is empty for the first form.
func ParsePluginKey(key string) (id, field string, ok bool) {
	rest, found := strings.CutPrefix(key, pluginPrefix)
	if !found || rest == "" {
		return "", "", false
	}
	id, field, _ = strings.Cut(rest, ".")
	return id, field, true
}

func (d RowData) pluginRow(id, field string) (Row, bool) {
	p, ok := d.Plugins[id]
	if !ok {
		return Row{}, false
	}
	icon := p.Icon
	if icon == "" {
		icon = d.Icons.Palette
	}

	if field != "" {
		v, ok := p.Fields[field]
		if !ok {
			return Row{}, false
		}
		label := field
		if p.Label != "" {
			label = p.Label + " " + field
		}
		return NewRow(icon, label, v), true
	}

	if p.Value == "" {
		return Row{}, false
	}
	label := p.Label
	if label == "" {
		label = id
	}
	return NewRow(icon, label, p.Value), true
}

func (d RowData) info() *sysinfo.Info {
	if d.Info == nil {
		return &sysinfo.Info{}
	}
	return d.Info
}

func (d RowData) label(key string) string {
	if d.Translator == nil {
		return key
	}
	return d.Translator.T(key)
}

type rowBuilder func(d RowData, info *sysinfo.Info) (Row, bool)

// textRow builds a row that is shown whenever its value is non-empty.
func textRow(key string, icon func(IconSet) string, value func(*sysinfo.Info) string) rowBuilder {
	return func(d RowData, info *sysinfo.Info) (Row, bool) {
		v := value(info)
		if v == "" {
			return Row{}, false
		}
		return NewRow(icon(d.Icons), d.label(key), v), true
	}
}

func usageRow(key string, icon func(IconSet) string, value func(*sysinfo.Info) *sysinfo.Usage) rowBuilder {
	return func(d RowData, info *sysinfo.Info) (Row, bool) {
		u := value(info)
		if u == nil {
			return Row{}, false
		}
		return NewRow(icon(d.Icons), d.label(key), format.Usage(u.Used, u.Total)), true
	}
}

func packagesRow(d RowData, info *sysinfo.Info) (Row, bool) {
	if info.Packages <= 0 {
		return Row{}, false
	}
	return NewRow(d.Icons.Package, d.label(sysinfo.FieldPackages), strconv.Itoa(info.Packages)), true
}

var rowBuilders = map[string]rowBuilder{
	sysinfo.FieldDate: textRow(sysinfo.FieldDate,
		func(i IconSet) string { return i.Calendar },
		func(info *sysinfo.Info) string { return info.Date }),
	sysinfo.FieldHost: textRow(sysinfo.FieldHost,
		func(i IconSet) string { return i.Host },
		func(info *sysinfo.Info) string { return info.Host }),
	sysinfo.FieldOS: func(d RowData, info *sysinfo.Info) (Row, bool) {
		if info.OS == nil {
			return Row{}, false
		}
		icon := d.Icons.OS
		// Distro logos only exist in the Nerd Font set.
		if d.Icons == NerdIcons {
			if di, ok := DistroIcon(info.OS.ID); ok {
				icon = di
			}
		}
		value := strings.TrimSpace(info.OS.Name + " " + info.OS.Version)
		return NewRow(icon, d.label(sysinfo.FieldOS), value), true
	},
	sysinfo.FieldKernel: textRow(sysinfo.FieldKernel,
		func(i IconSet) string { return i.Kernel },
		func(info *sysinfo.Info) string { return info.Kernel }),
	sysinfo.FieldMemory: usageRow(sysinfo.FieldMemory,
		func(i IconSet) string { return i.Memory },
		func(info *sysinfo.Info) *sysinfo.Usage { return info.Memory }),
	sysinfo.FieldDisk: usageRow(sysinfo.FieldDisk,
		func(i IconSet) string { return i.Disk },
		func(info *sysinfo.Info) *sysinfo.Usage { return info.Disk }),
	sysinfo.FieldCPU: textRow(sysinfo.FieldCPU,
		func(i IconSet) string { return i.CPU },
		func(info *sysinfo.Info) string { return info.CPU }),
	sysinfo.FieldGPU: textRow(sysinfo.FieldGPU,
		func(i IconSet) string { return i.GPU },
		func(info *sysinfo.Info) string { return info.GPU }),
	sysinfo.FieldUptime: textRow(sysinfo.FieldUptime,
		func(i IconSet) string { return i.Uptime },
		func(info *sysinfo.Info) string {
			if info.Uptime <= 0 {
				return ""
			}
			return format.Uptime(info.Uptime)
		}),
	sysinfo.FieldShell: textRow(sysinfo.FieldShell,
		func(i IconSet) string { return i.Shell },
		func(info *sysinfo.Info) string { return info.Shell }),
	sysinfo.FieldPackages: packagesRow,
	"package":             packagesRow,
	sysinfo.FieldDE: textRow(sysinfo.FieldDE,
		func(i IconSet) string { return i.DesktopEnvironment },
		func(info *sysinfo.Info) string {
			if info.DE == info.WM {
				return ""
			}
			return info.DE
		}),
	sysinfo.FieldWM: textRow(sysinfo.FieldWM,
		func(i IconSet) string { return i.WindowManager },
		func(info *sysinfo.Info) string { return info.WM }),
}
