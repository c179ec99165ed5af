package session

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testBridge = "https://bridge.walletconnect.org"

func TestNewID(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-z]+$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewID()
		require.Regexp(t, re, id)
		require.Greater(t, len(id), idRandLen)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestBuildURI(t *testing.T) {
	uri := BuildURI("abc123xyz", testBridge)
	require.Equal(t, "wc:abc123xyz@1?bridge=https%3A%2F%2Fbridge.walletconnect.org&key=abc123xyz", uri)

	long := strings.Repeat("k", 40)
	uri = BuildURI(long, testBridge)
	require.True(t, strings.HasSuffix(uri, "&key="+long[:32]))

	q, err := url.ParseQuery(uri[strings.Index(uri, "?")+1:])
	require.NoError(t, err)
	require.Equal(t, testBridge, q.Get("bridge"))
}

func TestGenerate(t *testing.T) {
	s := Generate(testBridge)

	require.NoError(t, s.RenderErr)
	require.NotEmpty(t, s.ID)
	require.True(t, strings.HasPrefix(s.URI, "wc:"+s.ID+"@1?bridge="))
	require.Contains(t, s.URI, url.QueryEscape(testBridge))
	require.True(t, strings.HasPrefix(s.QRImage, "data:image/png;base64,"))
	require.NotEmpty(t, s.QRText)
	require.Equal(t, s.ID, s.Topic())
	require.Len(t, s.Key(), 32)
}

func TestGenerateRenderFailure(t *testing.T) {
	// too much data for any QR version
	s := Generate("https://" + strings.Repeat("x", 4000) + ".example")

	require.Error(t, s.RenderErr)
	require.Equal(t, RenderFailedText, s.QRImage)
	require.Empty(t, s.QRText)
	require.True(t, strings.HasPrefix(s.URI, "wc:"))
}

func TestRenderDataURL(t *testing.T) {
	opts := DefaultImageOptions()
	out, err := RenderDataURL(BuildURI("abc", testBridge), opts)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, dataURLPrefix))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 300, img.Bounds().Dy())

	// the corner sits in the quiet zone
	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r&g&b)

	t.Run("bad color", func(t *testing.T) {
		opts := DefaultImageOptions()
		opts.Dark = "not-a-color"
		_, err := RenderDataURL("wc:abc", opts)
		require.Error(t, err)
	})
}

func TestKeyIsStable(t *testing.T) {
	s := Session{ID: "abc"}
	require.Equal(t, s.Key(), Session{ID: "abc"}.Key())
	require.NotEqual(t, s.Key(), Session{ID: "abd"}.Key())
}
