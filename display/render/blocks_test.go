package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfBlockLines(t *testing.T) {
	// Top half red, bottom half blue.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			c := color.RGBA{R: 255, A: 255}
			if y >= 2 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := writeTemp(t, "logo.png", buf.Bytes())

	lines, err := HalfBlockLines(path, 10, 10)
	require.NoError(t, err)
	require.Len(t, lines, 2, "four pixel rows fit in two lines without scaling")

	red := "\x1b[38;2;255;0;0m\x1b[48;2;255;0;0m▀"
	blue := "\x1b[38;2;0;0;255m\x1b[48;2;0;0;255m▀"
	assert.Equal(t, strings.Repeat(red, 4)+"\x1b[0m", lines[0])
	assert.Equal(t, strings.Repeat(blue, 4)+"\x1b[0m", lines[1])
}

func TestHalfBlockLines_ScalesDown(t *testing.T) {
	path := writeTemp(t, "wide.png", makePNG(40, 20, color.RGBA{G: 200, A: 255}))

	lines, err := HalfBlockLines(path, 8, 8)
	require.NoError(t, err)
	// 40x20 fits into 8x16 pixels as 8x4: two lines of eight cells.
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 8, strings.Count(l, "▀"))
	}
}

func TestHalfBlockLines_OddRowHasNoBackground(t *testing.T) {
	path := writeTemp(t, "odd.png", makePNG(2, 3, color.RGBA{R: 1, G: 2, B: 3, A: 255}))

	lines, err := HalfBlockLines(path, 10, 10)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat("\x1b[38;2;1;2;3m▀", 2)+"\x1b[0m", lines[1])
}

func TestHalfBlockLines_Errors(t *testing.T) {
	_, err := HalfBlockLines("", 10, 10)
	assert.ErrorIs(t, err, ErrNoImage)

	_, err = HalfBlockLines(filepath.Join(t.TempDir(), "missing.png"), 10, 10)
	assert.ErrorIs(t, err, ErrNoImage)

	_, err = HalfBlockLines(writeTemp(t, "empty.png", nil), 10, 10)
	assert.ErrorIs(t, err, ErrNoImage)

	_, err = HalfBlockLines(writeTemp(t, "junk.png", []byte("not an image")), 10, 10)
	assert.Error(t, err)
}

func TestBlockCells(t *testing.T) {
	tests := []struct {
		name     string
		term     Terminal
		opts     LogoOptions
		maxRows  int
		wantCols int
		wantRows int
	}{
		{"defaults", newFakeTerminal(false), LogoOptions{}, 12, DefaultShiftCells, 12},
		{"configured with metrics", newFakeTerminal(true).withMetrics(8, 16), LogoOptions{Width: 160, Height: 320}, 12, 20, 20},
		{"configured without metrics", newFakeTerminal(false), LogoOptions{Width: 100}, 5, 10, 5},
		{"nil terminal", nil, LogoOptions{}, 0, DefaultShiftCells, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := BlockCells(tt.term, tt.opts, tt.maxRows)
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestBuildInlineLogo_BlocksIsNotInline(t *testing.T) {
	path := writeTemp(t, "logo.png", makePNG(4, 4, color.White))
	_, err := BuildInlineLogo(newFakeTerminal(true, "TERM_PROGRAM", "WezTerm"), LogoOptions{Path: path, Protocol: ProtocolBlocks})
	assert.ErrorIs(t, err, ErrUnsupportedProtocol)
}
