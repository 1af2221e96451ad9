// Package favicon loads the optional server-list-ping icon and encodes it
// into the data URI format the Status Response JSON embeds directly.
package favicon

import (
	"encoding/base64"
	"fmt"
	"os"
)

// LoadPNG reads a PNG file from path and returns it as a
// "data:image/png;base64,..." URI, the format the Status Response's
// favicon field expects verbatim.
func LoadPNG(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read favicon %s: %w", path, err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
