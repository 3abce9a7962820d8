package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultColor is used when a shape is created without a color.
var DefaultColor = colornames.Black

// ParseColor parses an SVG color name ("navy"), or a hex color in
// #rgb, #rrggbb or #rrggbbaa form.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}

	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.RGBA{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		// #rgb expands each digit: #f80 -> #ff8800
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	// Hex alpha is straight; RGBA wants premultiplied.
	n := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}
