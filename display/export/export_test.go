package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/dracfetch/collectors/sysinfo"
	"gitlab.com/tinyland/lab/dracfetch/config"
	"gitlab.com/tinyland/lab/dracfetch/i18n"
)

func sampleInfo() *sysinfo.Info {
	return &sysinfo.Info{
		Date:     "October 18th",
		Host:     "ThinkPad X1 Carbon Gen 9",
		OS:       &sysinfo.OSInfo{Name: "NixOS", Version: "25.05 (Warbler)", ID: "nixos"},
		Kernel:   "6.18.44",
		Memory:   &sysinfo.Usage{Used: 8 << 30, Total: 16 << 30},
		CPU:      "AMD Ryzen 9 7950X",
		Uptime:   26*time.Hour + 3*time.Minute + 4*time.Second,
		Shell:    "Zsh",
		Packages: 1234,
		WM:       "niri",
	}
}

var samplePlugins = map[string]config.Plugin{
	"weather": {Label: "Weather", Fields: map[string]string{"temp": "12°C"}},
	"empty":   {Value: "shown in the box only"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"Markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument(sampleInfo(), samplePlugins), false))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "compact JSON is one line")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "6.18.44", got["kernelVersion"])
	assert.Equal(t, float64(93784), got["uptimeSeconds"])
	assert.Equal(t, float64(1234), got["packageCount"])
	assert.Equal(t, map[string]any{"usedBytes": float64(8 << 30), "totalBytes": float64(16 << 30)}, got["memInfo"])
	assert.Equal(t, map[string]any{"weather": map[string]any{"temp": "12°C"}}, got["pluginFields"])
	assert.NotContains(t, got, "diskUsage")
	assert.NotContains(t, got, "gpuModel")
}

func TestWriteJSONPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument(sampleInfo(), nil), true))
	assert.Contains(t, buf.String(), "\n  \"host\": \"ThinkPad X1 Carbon Gen 9\"")
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument(nil, nil), false))
	assert.Equal(t, "{}\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, NewDocument(sampleInfo(), samplePlugins)))

	var got Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, NewDocument(sampleInfo(), samplePlugins), got)
	assert.Contains(t, buf.String(), "operatingSystem:\n  name: NixOS\n")
}

func TestValues(t *testing.T) {
	got := Values(sampleInfo(), samplePlugins)

	assert.Equal(t, "NixOS 25.05 (Warbler)", got["os"])
	assert.Equal(t, "nixos", got["os_id"])
	assert.Equal(t, "8.0 GiB/16 GiB", got["ram"])
	assert.Equal(t, "8589934592", got["memory_used_bytes"])
	assert.Equal(t, "1d 2h 3m 4s", got["uptime"])
	assert.Equal(t, "93784", got["uptime_seconds"])
	assert.Equal(t, "1234", got["packages"])
	assert.Equal(t, "12°C", got["plugin_weather_temp"])
	assert.NotContains(t, got, "disk")
	assert.NotContains(t, got, "de")

	assert.Empty(t, Values(nil, nil))
}

func TestCompact(t *testing.T) {
	values := Values(sampleInfo(), samplePlugins)

	tests := []struct {
		name     string
		tmpl     string
		maxWidth int
		want     string
	}{
		{"basic", "{host} | {cpu} | {ram}", 0, "ThinkPad X1 Carbon Gen 9 | AMD Ryzen 9 7950X | 8.0 GiB/16 GiB"},
		{"missing placeholders vanish", "{os}{gpu} on {wm}", 0, "NixOS 25.05 (Warbler) on niri"},
		{"plugin field", "{plugin_weather_temp}", 0, "12°C"},
		{"unterminated brace kept", "{host} {cpu", 0, "ThinkPad X1 Carbon Gen 9 {cpu"},
		{"repeated", "{wm}/{wm}", 0, "niri/niri"},
		{"truncated", "{host}", 10, "ThinkPad …"},
		{"truncated per line", "{wm}\n{cpu}", 8, "niri\nAMD Ryz…"},
		{"no placeholders", "plain text", 0, "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compact(tt.tmpl, values, tt.maxWidth))
		})
	}
}

func TestCompactValueBracesAreLiteral(t *testing.T) {
	got := Compact("[{host}]", map[string]string{"host": "{weird}"}, 0)
	assert.Equal(t, "[{weird}]", got)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	values := Values(sampleInfo(), samplePlugins)
	values["shell"] = "a|b"
	require.NoError(t, WriteMarkdown(&buf, values, i18n.New("en")))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, "| Field | Value |", lines[0])
	assert.Equal(t, "| --- | --- |", lines[1])
	assert.Equal(t, "| Date | October 18th |", lines[2])
	assert.Contains(t, lines, `| Shell | a\|b |`)
	assert.Equal(t, "| plugin_weather_temp | 12°C |", lines[len(lines)-1])
	assert.NotContains(t, buf.String(), "os_id", "raw fields are not listed")
}

func TestWrite(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatMarkdown} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, sampleInfo(), nil, nil), f)
		assert.Contains(t, buf.String(), "ThinkPad", f)
	}
	assert.ErrorIs(t, Write(&bytes.Buffer{}, Format("xml"), sampleInfo(), nil, nil), ErrUnknownFormat)
}
