package banner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/dracfetch/display/color"
	"gitlab.com/tinyland/lab/dracfetch/display/text"
)

func assertEqualWidths(t *testing.T, lines []string) {
	t.Helper()
	require.NotEmpty(t, lines)
	want := text.Width(lines[0])
	for i, l := range lines {
		assert.Equal(t, want, text.Width(l), "line %d: %q", i, l)
	}
}

func TestRenderBox_AlignsUsageRows(t *testing.T) {
	groups := []Group{{Rows: []Row{
		NewRow("", "RAM", "8/16"),
		NewRow("", "Disk", "100/500"),
	}}}

	got := RenderBox(groups, color.DefaultTheme, BoxOptions{})

	assert.Equal(t, []string{
		"╭─────────────╮",
		"│RAM     8/16 │",
		"│Disk 100/500 │",
		"╰─────────────╯",
	}, got)
}

func TestRenderBox_SeparatesNonEmptyGroups(t *testing.T) {
	groups := []Group{
		{Name: "a", Rows: []Row{NewRow("", "A", "1")}},
		{Name: "empty"},
		{Name: "b", Rows: []Row{NewRow("", "B", "2")}},
	}

	got := RenderBox(groups, color.DefaultTheme, BoxOptions{})

	assert.Equal(t, []string{
		"╭────╮",
		"│A 1 │",
		"├────┤",
		"│B 2 │",
		"╰────╯",
	}, got)
}

func TestRenderBox_SharpStyle(t *testing.T) {
	got := RenderBox([]Group{{Rows: []Row{NewRow("", "A", "1")}}}, color.DefaultTheme, BoxOptions{Style: SharpBox})
	assert.True(t, strings.HasPrefix(got[0], "┌"))
	assert.True(t, strings.HasPrefix(got[len(got)-1], "└"))
}

func TestRenderBox_HeaderLines(t *testing.T) {
	groups := []Group{{Rows: []Row{NewRow(" H ", "Host", "box")}}}
	got := RenderBox(groups, color.DefaultTheme, BoxOptions{
		Greeting:    " U Hello Ana!",
		Palette:     true,
		PaletteIcon: " P ",
	})

	require.Len(t, got, 7)
	assertEqualWidths(t, got)

	// The palette strip sets the minimum width: icon + 16 swatches + 15 gaps.
	assert.Equal(t, 3+16+15+3, text.Width(got[0]))
	assert.True(t, strings.HasPrefix(got[1], "│ U Hello Ana!"))
	assert.True(t, strings.HasPrefix(got[2], "├"))
	assert.Equal(t, 16, strings.Count(got[3], color.Swatch))
	assert.True(t, strings.HasPrefix(got[4], "├"))
	assert.True(t, strings.HasSuffix(got[5], "box │"))
}

func TestRenderBox_GlobalLabelColumn(t *testing.T) {
	groups := []Group{
		{Rows: []Row{NewRow("", "OS", "x")}},
		{Rows: []Row{NewRow("", "Packages", "y")}},
	}
	got := RenderBox(groups, color.DefaultTheme, BoxOptions{})

	// Both values end in the same column and "OS" is padded to "Packages".
	assert.Equal(t, "│OS       x │", got[1])
	assert.Equal(t, "│Packages y │", got[3])
}

func TestRenderBox_AutoWrap(t *testing.T) {
	words := strings.TrimSpace(strings.Repeat("abcd ", 16))
	require.Equal(t, 79, text.Width(words))

	groups := []Group{{Rows: []Row{
		NewRow("", "CPU", strings.Repeat("a", 25)),
		{Label: "Host", Value: words, Color: color.White, AutoWrap: true},
	}}}

	got := RenderBox(groups, color.DefaultTheme, BoxOptions{})
	assertEqualWidths(t, got)
	assert.Equal(t, 30+3, text.Width(got[0]), "content width is set by the non-wrapping row")

	var wrapped []string
	for _, l := range got {
		if strings.Contains(l, "abcd") {
			wrapped = append(wrapped, l)
		}
	}
	require.Greater(t, len(wrapped), 2)
	assert.True(t, strings.HasPrefix(wrapped[0], "│Host"))

	var rejoined []string
	for i, l := range wrapped {
		inner := strings.TrimSuffix(strings.TrimPrefix(l, "│"), " │")
		if i > 0 {
			assert.NotContains(t, inner, "Host")
		}
		segment := strings.TrimSpace(strings.TrimPrefix(inner, "Host"))
		assert.LessOrEqual(t, text.Width(segment), 30-4-1)
		rejoined = append(rejoined, segment)
	}
	assert.Equal(t, words, strings.Join(rejoined, " "))
}

func TestRenderBox_AutoWrapOverlongWordWidensBox(t *testing.T) {
	long := strings.Repeat("x", 40)
	groups := []Group{{Rows: []Row{
		NewRow("", "A", "1"),
		{Label: "Path", Value: "short " + long + " tail", Color: color.White, AutoWrap: true},
	}}}

	got := RenderBox(groups, color.DefaultTheme, BoxOptions{})
	assertEqualWidths(t, got)
	for _, l := range got {
		if strings.Contains(l, long) {
			assert.True(t, strings.HasSuffix(l, long+" │"))
		}
	}
}

func TestRenderBox_ColorDoesNotChangeLayout(t *testing.T) {
	groups := []Group{
		{Rows: []Row{
			NewRow(" * ", "Date", "October 18th"),
			{Icon: " # ", Label: "Kernel", Value: "6.18.44", Color: color.Red},
		}},
		{Rows: []Row{
			{Icon: " ~ ", Label: "GPU", Value: "Intel Iris Xe Graphics with a long name", Color: color.BrightBlue, AutoWrap: true},
			NewRow(" 日 ", "言語", "日本語"),
		}},
	}
	opts := BoxOptions{Greeting: " @ Hello Ana!", Palette: true, PaletteIcon: " % "}

	plain := RenderBox(groups, color.DefaultTheme, opts)
	opts.Stylizer = color.NewStylizer(true)
	colored := RenderBox(groups, color.DefaultTheme, opts)

	require.Len(t, colored, len(plain))
	assertEqualWidths(t, plain)
	assertEqualWidths(t, colored)
	assert.NotEqual(t, plain, colored)
	for i := range plain {
		assert.Equal(t, plain[i], color.StripANSI(colored[i]), "line %d", i)
	}
}

func TestRenderBox_NoGroups(t *testing.T) {
	got := RenderBox(nil, color.DefaultTheme, BoxOptions{})
	assert.Equal(t, []string{"╭─╮", "╰─╯"}, got)
}

func TestDistributeSwatches(t *testing.T) {
	swatches := []string{"a", "b", "c"}
	assert.Equal(t, "a b c", distributeSwatches(swatches, 3))
	assert.Equal(t, "a   b   c", distributeSwatches(swatches, 9))
	assert.Equal(t, "a   b   c", distributeSwatches(swatches, 10), "leftover columns go to the right edge")
	assert.Equal(t, "  a", distributeSwatches([]string{"a"}, 5))
	assert.Empty(t, distributeSwatches(swatches, 0))
}
