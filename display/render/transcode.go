package render

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// EnsurePNG returns data unchanged when it is already a PNG. Any other
// format imaging can decode (JPEG, GIF, BMP, TIFF) is re-encoded as PNG,
// because Kitty's f=100 transmission only accepts PNG.
func EnsurePNG(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngSignature) {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("render: transcode decode: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("render: transcode encode: %w", err)
	}
	return buf.Bytes(), nil
}
