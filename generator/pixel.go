package generator

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdef"

// ParseBackground parses a "#rrggbb" colour. An empty string means no
// background: alpha is dropped and the straight RGB channels are kept.
func ParseBackground(s string) (*colorful.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid background colour '%s': %w", ErrUsage, s, err)
	}
	return &c, nil
}

// channels returns the 8-bit RGB of c. Without a background these are the
// non-premultiplied values, so a half-transparent red stays 0xff0000.
func channels(c color.Color, background *colorful.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if background == nil || n.A == 0xff {
		return n.R, n.G, n.B
	}
	fg := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	return background.BlendRgb(fg, float64(n.A)/255).RGB255()
}

// Pack returns the 24-bit value a literal encodes.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// appendLiteral appends "0xrrggbb, ".
func appendLiteral(dst []byte, r, g, b uint8) []byte {
	return append(dst, '0', 'x',
		hexDigits[r>>4], hexDigits[r&0xf],
		hexDigits[g>>4], hexDigits[g&0xf],
		hexDigits[b>>4], hexDigits[b&0xf],
		',', ' ')
}
