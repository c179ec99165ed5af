package session

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

// go-qrcode always pads its bitmap with a 4 module border
const encoderQuietZone = 4

// ImageOptions control the PNG rendering of a pairing URI
type ImageOptions struct {
	Width  int
	Margin int
	Dark   string
	Light  string
	Level  qrcode.RecoveryLevel
}

// DefaultImageOptions is a 300px code with a 2 module quiet zone
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Width:  300,
		Margin: 2,
		Dark:   "#1f2937",
		Light:  "#ffffff",
		Level:  qrcode.Medium,
	}
}

// RenderDataURL encodes uri as a PNG and returns it as a data URL
func RenderDataURL(uri string, opts ImageOptions) (string, error) {
	dark, err := colorful.Hex(opts.Dark)
	if err != nil {
		return "", fmt.Errorf("dark color %q: %w", opts.Dark, err)
	}
	light, err := colorful.Hex(opts.Light)
	if err != nil {
		return "", fmt.Errorf("light color %q: %w", opts.Light, err)
	}

	qr, err := qrcode.New(uri, opts.Level)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	bitmap := trimQuietZone(qr.Bitmap())

	margin := max(opts.Margin, 0)
	modules := len(bitmap) + 2*margin
	width := max(opts.Width, modules)

	pal := color.Palette{toRGBA(light), toRGBA(dark)}
	img := image.NewPaletted(image.Rect(0, 0, width, width), pal)
	for py := 0; py < width; py++ {
		my := py*modules/width - margin
		for px := 0; px < width; px++ {
			mx := px*modules/width - margin
			if my >= 0 && my < len(bitmap) && mx >= 0 && mx < len(bitmap) && bitmap[my][mx] {
				img.SetColorIndex(px, py, 1)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func trimQuietZone(bitmap [][]bool) [][]bool {
	n := len(bitmap) - 2*encoderQuietZone
	if n <= 0 {
		return bitmap
	}
	out := make([][]bool, n)
	for i := range out {
		out[i] = bitmap[i+encoderQuietZone][encoderQuietZone : encoderQuietZone+n]
	}
	return out
}
