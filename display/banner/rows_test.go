package banner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/dracfetch/collectors/sysinfo"
	"gitlab.com/tinyland/lab/dracfetch/config"
	"gitlab.com/tinyland/lab/dracfetch/display/color"
	"gitlab.com/tinyland/lab/dracfetch/i18n"
)

func sampleInfo() *sysinfo.Info {
	return &sysinfo.Info{
		Date:     "October 18th",
		Host:     "ThinkPad X1 Carbon Gen 9",
		OS:       &sysinfo.OSInfo{Name: "Arch Linux", ID: "arch"},
		Kernel:   "6.18.44-arch1-1",
		Memory:   &sysinfo.Usage{Used: 8 << 30, Total: 16 << 30},
		Disk:     &sysinfo.Usage{Used: 120 << 30, Total: 500 << 30},
		CPU:      "AMD Ryzen 9 7950X",
		GPU:      "AMD Radeon RX 7900 XTX",
		Uptime:   time.Hour + 2*time.Minute + 3*time.Second,
		Shell:    "Fish",
		Packages: 1234,
		DE:       "sway",
		WM:       "Sway",
	}
}

func ptr[T any](v T) *T { return &v }

// rowsByLabel flattens groups into label → row.
func rowsByLabel(groups []Group) map[string]Row {
	m := make(map[string]Row)
	for _, g := range groups {
		for _, r := range g.Rows {
			m[r.Label] = r
		}
	}
	return m
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout([]string{"weather", "np"})

	names := make([]string, len(layout))
	for i, g := range layout {
		names[i] = g.Name
	}
	assert.Equal(t, []string{"intro", "system", "hardware", "software", "environment"}, names)

	var intro []string
	for _, r := range layout[0].Rows {
		intro = append(intro, r.Key)
	}
	assert.Equal(t, []string{"date", "plugin.np", "plugin.weather"}, intro)
	assert.Len(t, layout[2].Rows, 5)
}

func TestParsePluginKey(t *testing.T) {
	tests := []struct {
		key       string
		id, field string
		ok        bool
	}{
		{"plugin.weather", "weather", "", true},
		{"plugin.weather.temp", "weather", "temp", true},
		{"plugin.np.track.title", "np", "track.title", true},
		{"plugin.", "", "", false},
		{"cpu", "", "", false},
		{"Plugin.weather", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			id, field, ok := ParsePluginKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestBuildGroups_DefaultLayout(t *testing.T) {
	groups := BuildGroups(DefaultLayout(nil), RowData{
		Info:       sampleInfo(),
		Icons:      NerdIcons,
		Translator: i18n.New("en"),
	})
	require.Len(t, groups, 5)

	rows := rowsByLabel(groups)
	assert.Equal(t, "October 18th", rows["Date"].Value)
	assert.Equal(t, "Arch Linux", rows["OS"].Value)
	assert.Equal(t, "8.0 GiB/16 GiB", rows["RAM"].Value)
	assert.Equal(t, "120 GiB/500 GiB", rows["Disk"].Value)
	assert.Equal(t, "1h 2m 3s", rows["Uptime"].Value)
	assert.Equal(t, "1234", rows["Packages"].Value)
	assert.Equal(t, "sway", rows["DE"].Value, "DE and WM differ in case")
	assert.Equal(t, "Sway", rows["WM"].Value)

	icon, ok := DistroIcon("arch")
	require.True(t, ok)
	assert.Equal(t, icon, rows["OS"].Icon)
	assert.Equal(t, NerdIcons.Memory, rows["RAM"].Icon)

	for _, r := range rows {
		assert.Equal(t, color.White, r.Color)
		assert.False(t, r.AutoWrap)
	}
}

func TestBuildGroups_HidesMissingData(t *testing.T) {
	info := sampleInfo()
	info.GPU = ""
	info.Packages = 0
	info.DE = "Hyprland"
	info.WM = "Hyprland"
	info.Memory = nil
	info.Uptime = 0

	rows := rowsByLabel(BuildGroups(DefaultLayout(nil), RowData{Info: info, Translator: i18n.New("en")}))

	for _, label := range []string{"GPU", "Packages", "DE", "RAM", "Uptime"} {
		assert.NotContains(t, rows, label)
	}
	assert.Contains(t, rows, "WM")
	assert.Contains(t, rows, "Disk")
}

func TestBuildGroups_NilInfo(t *testing.T) {
	groups := BuildGroups(DefaultLayout(nil), RowData{Translator: i18n.New("en")})
	require.Len(t, groups, 5)
	for _, g := range groups {
		assert.Empty(t, g.Rows, g.Name)
	}
}

func TestRowData_Overrides(t *testing.T) {
	d := RowData{Info: sampleInfo(), Icons: NerdIcons, Translator: i18n.New("de")}

	row, ok := d.Row(config.LayoutRow{Key: "DISK"})
	require.True(t, ok, "keys match case-insensitively")
	assert.Equal(t, "Festplatte", row.Label)

	row, ok = d.Row(config.LayoutRow{
		Key:      "cpu",
		Label:    ptr("Processor"),
		Icon:     ptr(" > "),
		Color:    ptr(color.BrightGreen),
		AutoWrap: true,
	})
	require.True(t, ok)
	assert.Equal(t, Row{Icon: " > ", Label: "Processor", Value: "AMD Ryzen 9 7950X", Color: color.BrightGreen, AutoWrap: true}, row)

	_, ok = d.Row(config.LayoutRow{Key: "weather"})
	assert.False(t, ok, "unknown keys are dropped")

	row, ok = d.Row(config.LayoutRow{Key: "package"})
	require.True(t, ok)
	assert.Equal(t, "1234", row.Value)
}

func TestRowData_OSIcon(t *testing.T) {
	info := sampleInfo()

	row, ok := RowData{Info: info, Icons: EmojiIcons}.Row(config.LayoutRow{Key: "os"})
	require.True(t, ok)
	assert.Equal(t, EmojiIcons.OS, row.Icon, "distro logos are Nerd Font only")

	info.OS = &sysinfo.OSInfo{Name: "Plan 9", ID: "plan9"}
	row, ok = RowData{Info: info, Icons: NerdIcons}.Row(config.LayoutRow{Key: "os"})
	require.True(t, ok)
	assert.Equal(t, NerdIcons.OS, row.Icon)
	assert.Equal(t, "Plan 9", row.Value)
	assert.Equal(t, "os", row.Label, "no translator leaves the key")
}

func TestRowData_Plugins(t *testing.T) {
	d := RowData{
		Icons: NerdIcons,
		Plugins: map[string]config.Plugin{
			"weather": {Label: "Weather", Icon: " W ", Value: "12°C", Fields: map[string]string{"temp": "12°C", "wind": "4 km/h"}},
			"np":      {Fields: map[string]string{"title": "Blue in Green"}},
			"bare":    {Value: "on"},
		},
	}

	tests := []struct {
		key  string
		want Row
		ok   bool
	}{
		{"plugin.weather", Row{Icon: " W ", Label: "Weather", Value: "12°C", Color: color.White}, true},
		{"plugin.weather.wind", Row{Icon: " W ", Label: "Weather wind", Value: "4 km/h", Color: color.White}, true},
		{"plugin.np.title", Row{Icon: NerdIcons.Palette, Label: "title", Value: "Blue in Green", Color: color.White}, true},
		{"plugin.bare", Row{Icon: NerdIcons.Palette, Label: "bare", Value: "on", Color: color.White}, true},
		{"plugin.np", Row{}, false},
		{"plugin.weather.humidity", Row{}, false},
		{"plugin.missing", Row{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			row, ok := d.Row(config.LayoutRow{Key: tt.key})
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, row)
			}
		})
	}
}

func TestParseIconSet(t *testing.T) {
	assert.Equal(t, NerdIcons, ParseIconSet(""))
	assert.Equal(t, NerdIcons, ParseIconSet("nerd"))
	assert.Equal(t, EmojiIcons, ParseIconSet(" Emoji "))
	assert.Equal(t, NoIcons, ParseIconSet("none"))
	assert.Equal(t, NerdIcons, ParseIconSet("sparkles"))
}

func TestDistroIcon(t *testing.T) {
	_, ok := DistroIcon("nixos")
	assert.True(t, ok)
	_, ok = DistroIcon("opensuse-tumbleweed")
	assert.False(t, ok)

	a, _ := DistroIcon("arch")
	b, _ := DistroIcon("archarm")
	assert.Equal(t, a, b, "ids match by substring")
}
