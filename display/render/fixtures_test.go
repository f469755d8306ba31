package render

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// fakeTerminal is a Terminal with a fixed environment.
type fakeTerminal struct {
	env     map[string]string
	tty     bool
	metrics *CellMetrics
}

func newFakeTerminal(tty bool, kv ...string) *fakeTerminal {
	env := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		env[kv[i]] = kv[i+1]
	}
	return &fakeTerminal{env: env, tty: tty}
}

func (f *fakeTerminal) LookupEnv(key string) (string, bool) {
	v, ok := f.env[key]
	return v, ok
}

func (f *fakeTerminal) IsTerminal() bool { return f.tty }

func (f *fakeTerminal) CellMetrics() (CellMetrics, bool) {
	if f.metrics == nil {
		return CellMetrics{}, false
	}
	return *f.metrics, true
}

func (f *fakeTerminal) withMetrics(w, h float64) *fakeTerminal {
	f.metrics = &CellMetrics{Width: w, Height: h}
	return f
}

// makePNG creates a solid-color PNG image of the given size.
func makePNG(w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// makeJPEG creates a solid-color baseline JPEG image of the given size.
func makeJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// writeTemp writes data to name inside a per-test directory.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
