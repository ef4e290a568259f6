package dump

import (
	"bytes"
	"strings"
)

// HexDump returns the hex mode dump of data without elision
func HexDump(data []byte) string {
	var output strings.Builder
	// strings.Builder writes do not fail
	Dump(bytes.NewReader(data), &output, Options{Mode: ModeHex})
	return output.String()
}
