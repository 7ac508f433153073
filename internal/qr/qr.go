// Package qr derives the public profile URL for an employee badge and encodes
// it as a scannable image.
package qr

import (
	"encoding/base64"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// PublicURL is the stable address a scanned badge opens: the public profile
// page for one employee. Pure string construction, no lookup.
func PublicURL(base, employeeID string) string {
	return strings.TrimRight(base, "/") + "/user-profile/" + employeeID
}

// DataURL encodes url as a 256px PNG QR at medium error correction and wraps
// it as a data URL, the form the profile documents cache.
func DataURL(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
