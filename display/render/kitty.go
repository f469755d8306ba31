package render

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// kittyChunkSize is the maximum number of base64 bytes per Kitty protocol chunk.
const kittyChunkSize = 4096

// KittySequence encodes PNG data with the Kitty Graphics Protocol
// (transmit-and-display, f=100). The cursor is not moved (C=1).
//
// Payloads longer than kittyChunkSize are split: the first chunk carries
// the control keys and m=1, later chunks carry only m=1, and the final
// chunk m=0.
//
// Protocol documentation: https://sw.kovidgoyal.net/kitty/graphics-protocol/
func KittySequence(pngData []byte, s Sizing) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)
	keys := "a=T,f=100" + s.kittyKeys() + ",C=1"

	var b strings.Builder

	if len(encoded) <= kittyChunkSize {
		fmt.Fprintf(&b, "\033_G%s;%s\033\\", keys, encoded)
		return b.String()
	}

	for i := 0; i < len(encoded); i += kittyChunkSize {
		end := min(i+kittyChunkSize, len(encoded))
		chunk := encoded[i:end]
		isLast := end >= len(encoded)

		switch {
		case i == 0:
			fmt.Fprintf(&b, "\033_G%s,m=1;%s\033\\", keys, chunk)
		case isLast:
			fmt.Fprintf(&b, "\033_Gm=0;%s\033\\", chunk)
		default:
			fmt.Fprintf(&b, "\033_Gm=1;%s\033\\", chunk)
		}
	}

	return b.String()
}

// KittyDirectSequence asks the terminal to load the PNG at absPath itself
// (transmission medium t=f). The payload is the base64 of the path.
func KittyDirectSequence(absPath string, s Sizing) string {
	payload := base64.StdEncoding.EncodeToString([]byte(absPath))
	return "\033_Ga=T,f=100,t=f" + s.kittyKeys() + ",C=1;" + payload + "\033\\"
}
