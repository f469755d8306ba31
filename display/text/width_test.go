package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"sgr color", "\033[31mred\033[0m", 3},
		{"bold 256 color", "\033[1m\033[38;5;12mAB\033[0m", 2},
		{"osc with string terminator", "\033]8;;http://x\033\\link", 4},
		{"osc with bel", "\033]0;title\atext", 4},
		{"cjk", "日本語", 6},
		{"hangul", "한글", 4},
		{"fullwidth latin", "ＡＢ", 4},
		{"emoji", "😀", 2},
		{"emoji in text", "a🚀b", 4},
		{"accented latin", "café", 4},
		{"box drawing", "╭─╮", 3},
		{"nerd font glyph", "", 1},
		{"nul", "a\x00b", 2},
		{"lone continuation byte", "a\x80b", 2},
		{"truncated sequence", "a\xe6\x97", 1},
		{"invalid lead byte", "\xffok", 2},
		{"replacement char literal", "�", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Width(tt.in))
		})
	}
}

func TestWidth_ColorInvariance(t *testing.T) {
	samples := []string{"plain", "日本", "💻 laptop", "Intel(R) Core(TM)", ""}
	wrappers := []struct{ pre, post string }{
		{"\033[0m", ""},
		{"\033[1;32m", "\033[0m"},
		{"\033[38;5;208m", "\033[39m"},
		{"\033[38;2;10;20;30m", "\033[0m"},
	}

	for _, s := range samples {
		for _, w := range wrappers {
			assert.Equal(t, Width(s), Width(w.pre+s+w.post), "sample %q", s)
		}
	}
}

func TestWidth_UnterminatedEscape(t *testing.T) {
	// Everything after an unterminated ESC is swallowed.
	assert.Equal(t, 2, Width("ab\033[31"))
}

func TestIsWide(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{'é', false},
		{'─', false},
		{'◯', false},
		{0x1100, true},
		{0x115f, true},
		{0x1160, false},
		{'語', true},
		{0xac00, true},
		{0xd7a3, true},
		{0xff01, true},
		{0xff61, false},
		{0x1f4bb, true},
		{0x1f9e0, true},
		{0x1fac0, true},
		{0x20000, true},
		{0x30000, true},
		{0x3000, true},
		{0x16ff0, true},
		{0x1aff0, true},
		{0x1f6dc, true},
		{0xe000, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsWide(tt.r), "rune %U", tt.r)
	}
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 0, MaxWidth(nil))
	assert.Equal(t, 6, MaxWidth([]string{"abc", "\033[1m日本語\033[0m", "de"}))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "日本 ", PadRight("日本", 5))
	assert.Equal(t, "\033[31mx\033[0m  ", PadRight("\033[31mx\033[0m", 3))
	assert.Equal(t, "toolong", PadRight("toolong", 3))
}
