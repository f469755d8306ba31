package render

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_PNG(t *testing.T) {
	size, ok := Probe(bytes.NewReader(makePNG(37, 19, color.White)))
	require.True(t, ok)
	assert.Equal(t, ImageSize{Width: 37, Height: 19}, size)
}

func TestProbe_PNGHeaderOnly(t *testing.T) {
	hdr := []byte{
		0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n',
		0, 0, 0, 13, 'I', 'H', 'D', 'R',
		0, 0, 0x01, 0x00, // width 256
		0, 0, 0x00, 0x80, // height 128
	}
	size, ok := Probe(bytes.NewReader(hdr))
	require.True(t, ok)
	assert.Equal(t, ImageSize{Width: 256, Height: 128}, size)
}

func TestProbe_TruncatedPNG(t *testing.T) {
	data := makePNG(4, 4, color.Black)[:20]
	_, ok := Probe(bytes.NewReader(data))
	assert.False(t, ok)
}

func TestProbe_JPEG(t *testing.T) {
	size, ok := Probe(bytes.NewReader(makeJPEG(64, 48)))
	require.True(t, ok)
	assert.Equal(t, ImageSize{Width: 64, Height: 48}, size)
}

func TestProbe_JPEGHandBuilt(t *testing.T) {
	jpg := []byte{
		0xff, 0xd8, // SOI
		0xff, 0xe0, 0x00, 0x06, 'J', 'F', 'I', 'F', // APP0, length 6
		0xff, 0xff, // fill bytes
		0xff, 0xc4, 0x00, 0x03, 0x00, // DHT is not a frame
		0xff, 0xc2, 0x00, 0x0b, 0x08, 0x01, 0x2c, 0x02, 0x58, 0x03, 0x01, 0x22, 0x00, // SOF2 300x600
	}
	size, ok := Probe(bytes.NewReader(jpg))
	require.True(t, ok)
	assert.Equal(t, ImageSize{Width: 600, Height: 300}, size)
}

func TestProbe_JPEGFailures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"eoi before frame", []byte{0xff, 0xd8, 0xff, 0xd9}},
		{"missing marker prefix", []byte{0xff, 0xd8, 0x00, 0xc0}},
		{"short segment length", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x01}},
		{"zero dimensions", []byte{0xff, 0xd8, 0xff, 0xc0, 0x00, 0x0b, 0x08, 0x00, 0x00, 0x00, 0x10}},
		{"truncated frame", []byte{0xff, 0xd8, 0xff, 0xc0, 0x00, 0x0b, 0x08}},
		{"eof after soi", []byte{0xff, 0xd8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Probe(bytes.NewReader(tt.data))
			assert.False(t, ok)
		})
	}
}

func TestProbe_Unrecognized(t *testing.T) {
	for _, data := range [][]byte{nil, {0x47}, []byte("GIF89a........................")} {
		_, ok := Probe(bytes.NewReader(data))
		assert.False(t, ok)
	}
}

func TestProbeFile(t *testing.T) {
	path := writeTemp(t, "logo.png", makePNG(10, 20, color.White))
	size, ok := ProbeFile(path)
	require.True(t, ok)
	assert.Equal(t, ImageSize{Width: 10, Height: 20}, size)

	_, ok = ProbeFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.False(t, ok)
}
