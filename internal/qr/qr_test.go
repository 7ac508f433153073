package qr

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	require.Equal(t,
		"https://qrakhsa.example.com/user-profile/64a000000000000000000001",
		PublicURL("https://qrakhsa.example.com", "64a000000000000000000001"))

	// Trailing slash on the base must not double up.
	require.Equal(t,
		"https://qrakhsa.example.com/user-profile/abc",
		PublicURL("https://qrakhsa.example.com/", "abc"))
}

func TestDataURLIsPNG(t *testing.T) {
	got, err := DataURL("https://qrakhsa.example.com/user-profile/abc")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
	require.NoError(t, err)
	require.True(t, len(raw) > 8)
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestDataURLTooLong(t *testing.T) {
	// QR capacity tops out around 3KB; past that the library fails and we
	// surface its error wrapped, nothing more clever.
	_, err := DataURL(strings.Repeat("x", 8000))
	require.Error(t, err)
}
