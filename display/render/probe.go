package render

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
)

// ImageSize is an image's dimensions in pixels.
type ImageSize struct {
	Width  int
	Height int
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ProbeFile reads the pixel size of the PNG or JPEG at path.
// It returns false when the file cannot be opened or its header is not
// understood.
func ProbeFile(path string) (ImageSize, bool) {
	f, err := os.Open(path)
	if err != nil {
		return ImageSize{}, false
	}
	defer f.Close()
	return Probe(f)
}

// Probe reads the pixel size from a PNG or JPEG header. Only the header of
// a PNG and the marker segments of a JPEG up to its first SOF are read;
// everything else is skipped with Seek.
func Probe(r io.ReadSeeker) (ImageSize, bool) {
	var header [24]byte
	n, err := io.ReadFull(r, header[:])
	if err != nil && err != io.ErrUnexpectedEOF {
		return ImageSize{}, false
	}

	if n >= len(header) && bytes.Equal(header[:8], pngSignature) {
		w := binary.BigEndian.Uint32(header[16:20])
		h := binary.BigEndian.Uint32(header[20:24])
		if w == 0 || h == 0 {
			return ImageSize{}, false
		}
		return ImageSize{Width: int(w), Height: int(h)}, true
	}

	if n >= 2 && header[0] == 0xff && header[1] == 0xd8 {
		if _, err := r.Seek(2, io.SeekStart); err != nil {
			return ImageSize{}, false
		}
		return probeJPEG(r)
	}

	return ImageSize{}, false
}

// isSOF reports whether marker is a start-of-frame marker carrying the
// frame dimensions. C4 (DHT), C8 (JPG) and CC (DAC) share the range but
// are not frames.
func isSOF(marker byte) bool {
	switch marker {
	case 0xc0, 0xc1, 0xc2, 0xc3,
		0xc5, 0xc6, 0xc7,
		0xc9, 0xca, 0xcb,
		0xcd, 0xce, 0xcf:
		return true
	}
	return false
}

// probeJPEG walks the marker segments after SOI looking for a frame header.
func probeJPEG(r io.ReadSeeker) (ImageSize, bool) {
	var b [1]byte
	readByte := func() (byte, bool) {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, false
		}
		return b[0], true
	}

	for {
		prefix, ok := readByte()
		if !ok || prefix != 0xff {
			return ImageSize{}, false
		}

		marker, ok := readByte()
		for ok && marker == 0xff {
			marker, ok = readByte()
		}
		if !ok || marker == 0xd9 {
			return ImageSize{}, false
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return ImageSize{}, false
		}
		segLen := int(binary.BigEndian.Uint16(lenBuf[:]))
		if segLen < 2 {
			return ImageSize{}, false
		}

		if isSOF(marker) {
			// [precision][height:2][width:2]
			var sof [5]byte
			if _, err := io.ReadFull(r, sof[:]); err != nil {
				return ImageSize{}, false
			}
			h := int(binary.BigEndian.Uint16(sof[1:3]))
			w := int(binary.BigEndian.Uint16(sof[3:5]))
			if w > 0 && h > 0 {
				return ImageSize{Width: w, Height: h}, true
			}
			return ImageSize{}, false
		}

		if _, err := r.Seek(int64(segLen-2), io.SeekCurrent); err != nil {
			return ImageSize{}, false
		}
	}
}
