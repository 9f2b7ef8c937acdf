// Package colour provides colour conversion, clustering and distance
// computation for the album-art matching pipeline.
package colour

import (
	"fmt"
	"image/color"
	"strings"
)

// RGB represents a display-space colour in 8-bit-per-channel form.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB, discarding alpha. Going through
// the NRGBA model divides premultiplied channels back out, so a
// semi-transparent pixel keeps its colour instead of being darkened.
func ToRGB(c color.Color) RGB {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{
		R: nrgba.R,
		G: nrgba.G,
		B: nrgba.B,
	}
}

// Parse parses a colour string into RGB. Accepted forms are "#rgb",
// "#rrggbb" (with or without the leading hash) and "rgb(r, g, b)" with
// decimal channel values.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("colour cannot be empty")
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		var r, g, b int
		body := s[len("rgb(") : len(s)-1]
		if _, err := fmt.Sscanf(strings.ReplaceAll(body, " ", ""), "%d,%d,%d", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("invalid rgb() colour %q: %w", s, err)
		}
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return RGB{}, fmt.Errorf("rgb() channels out of range in %q", s)
		}
		return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return RGB{R: r * 17, G: g * 17, B: b * 17}, nil
	case 6:
		var r, g, b uint8
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return RGB{R: r, G: g, B: b}, nil
	default:
		return RGB{}, fmt.Errorf("unrecognised colour format: %q", s)
	}
}
