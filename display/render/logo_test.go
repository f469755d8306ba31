package render

import (
	"encoding/base64"
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanLogo(t *testing.T) {
	probed := ImageSize{Width: 200, Height: 100}
	cells := func(w, h float64) CellMetrics { return CellMetrics{Width: w, Height: h} }

	tests := []struct {
		name       string
		cfgW, cfgH int
		probed     ImageSize
		probedOK   bool
		metrics    CellMetrics
		metricsOK  bool
		want       logoPlan
	}{
		{
			name:   "probed size with metrics",
			probed: probed, probedOK: true,
			metrics: cells(10, 20), metricsOK: true,
			want: logoPlan{send: Sizing{WidthCells: 20, HeightCells: 5}, widthCells: 20, heightCells: 5},
		},
		{
			name:   "probed size without metrics sends pixels",
			probed: probed, probedOK: true,
			want: logoPlan{send: Sizing{WidthPx: 200, HeightPx: 100}, widthCells: 20, heightCells: 10},
		},
		{
			name: "width derives height",
			cfgW: 300, probed: probed, probedOK: true,
			want: logoPlan{send: Sizing{WidthCells: 30, HeightCells: 15}, widthCells: 30, heightCells: 15},
		},
		{
			name: "height derives width with metrics",
			cfgH: 50, probed: probed, probedOK: true,
			metrics: cells(8, 16), metricsOK: true,
			want: logoPlan{send: Sizing{WidthCells: 13, HeightCells: 3}, widthCells: 13, heightCells: 3},
		},
		{
			name: "both configured ignore aspect",
			cfgW: 100, cfgH: 100, probed: probed, probedOK: true,
			want: logoPlan{send: Sizing{WidthCells: 10, HeightCells: 10}, widthCells: 10, heightCells: 10},
		},
		{
			name: "width only without probe",
			cfgW: 120,
			want: logoPlan{send: Sizing{WidthCells: 12}, widthCells: 12},
		},
		{
			name: "nothing known",
			want: logoPlan{widthCells: DefaultShiftCells},
		},
		{
			name: "tiny image is at least one cell",
			cfgW: 3, cfgH: 3,
			metrics: cells(10, 10), metricsOK: true,
			want: logoPlan{send: Sizing{WidthCells: 1, HeightCells: 1}, widthCells: 1, heightCells: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planLogo(tt.cfgW, tt.cfgH, tt.probed, tt.probedOK, tt.metrics, tt.metricsOK)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildInlineLogo_Unsupported(t *testing.T) {
	path := writeTemp(t, "logo.png", makePNG(4, 4, color.White))

	_, err := BuildInlineLogo(newFakeTerminal(false, "KITTY_WINDOW_ID", "1"), LogoOptions{Path: path})
	assert.ErrorIs(t, err, ErrUnsupportedProtocol)

	_, err = BuildInlineLogo(newFakeTerminal(true, "KITTY_WINDOW_ID", "1"), LogoOptions{Path: path, Protocol: ProtocolITerm2})
	assert.ErrorIs(t, err, ErrUnsupportedProtocol)
}

func TestBuildInlineLogo_NoImage(t *testing.T) {
	term := newFakeTerminal(true, "TERM_PROGRAM", "WezTerm")

	_, err := BuildInlineLogo(term, LogoOptions{})
	assert.ErrorIs(t, err, ErrNoImage)

	missing := filepath.Join(t.TempDir(), "missing.png")
	for _, p := range []LogoProtocol{ProtocolKitty, ProtocolKittyDirect, ProtocolITerm2} {
		_, err = BuildInlineLogo(term, LogoOptions{Path: missing, Protocol: p})
		assert.ErrorIs(t, err, ErrNoImage, p.String())
	}

	empty := writeTemp(t, "empty.png", nil)
	_, err = BuildInlineLogo(term, LogoOptions{Path: empty, Protocol: ProtocolITerm2})
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestBuildInlineLogo_Kitty(t *testing.T) {
	data := makePNG(40, 20, color.White)
	path := writeTemp(t, "logo.png", data)
	term := newFakeTerminal(true, "KITTY_WINDOW_ID", "1").withMetrics(10, 20)

	img, err := BuildInlineLogo(term, LogoOptions{Path: path, Protocol: ProtocolKitty})
	require.NoError(t, err)

	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Equal(t, "\033_Ga=T,f=100,c=4,r=1,C=1;"+base64.StdEncoding.EncodeToString(data)+"\033\\", img.Sequence)
}

func TestBuildInlineLogo_KittyTranscodesJPEG(t *testing.T) {
	path := writeTemp(t, "logo.jpg", makeJPEG(8, 8))
	term := newFakeTerminal(true, "TERM", "xterm-kitty")

	img, err := BuildInlineLogo(term, LogoOptions{Path: path})
	require.NoError(t, err)

	payload := img.Sequence[strings.Index(img.Sequence, ";")+1 : len(img.Sequence)-2]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, pngSignature, decoded[:8])
}

func TestBuildInlineLogo_KittyDirect(t *testing.T) {
	path := writeTemp(t, "logo.png", makePNG(100, 50, color.White))
	term := newFakeTerminal(true, "KITTY_WINDOW_ID", "1")

	img, err := BuildInlineLogo(term, LogoOptions{Path: path, Protocol: ProtocolKittyDirect, Width: 200})
	require.NoError(t, err)

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	want := "\033_Ga=T,f=100,t=f,c=20,r=10,C=1;" + base64.StdEncoding.EncodeToString([]byte(abs)) + "\033\\"
	assert.Equal(t, want, img.Sequence)
	assert.Equal(t, 20, img.Width)
	assert.Equal(t, 10, img.Height)
}

func TestBuildInlineLogo_ITerm2(t *testing.T) {
	data := makePNG(30, 30, color.Black)
	path := writeTemp(t, "tux.png", data)
	term := newFakeTerminal(true, "LC_TERMINAL", "iTerm2")

	img, err := BuildInlineLogo(term, LogoOptions{Path: path, Protocol: ProtocolITerm2})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.Sequence, "\033]1337;File=inline=1;size="))
	assert.Contains(t, img.Sequence, ";name="+base64.StdEncoding.EncodeToString([]byte("tux.png")))
	assert.Contains(t, img.Sequence, ";width=30px;height=30px;preserveAspectRatio=1:")
	assert.True(t, strings.HasSuffix(img.Sequence, base64.StdEncoding.EncodeToString(data)+"\a"))
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 3, img.Height)
}

func TestBuildInlineLogo_ErrorsAreWrapped(t *testing.T) {
	_, err := BuildInlineLogo(newFakeTerminal(false), LogoOptions{Path: "x.png"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedProtocol))
	assert.Contains(t, err.Error(), "render:")
}
