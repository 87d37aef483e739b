package style

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a truecolor triple. Terminal palette indices are not supported;
// output always uses 24-bit SGR sequences.
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from a 0xRRGGBB literal
func Hex(hex uint32) RGB {
	return RGB{
		R: uint8((hex >> 16) & 0xff),
		G: uint8((hex >> 8) & 0xff),
		B: uint8(hex & 0xff),
	}
}

// Common colors
var (
	Black  = Hex(0x000000)
	White  = Hex(0xffffff)
	Red    = Hex(0xff0000)
	Green  = Hex(0x00ff00)
	Blue   = Hex(0x0000ff)
	Yellow = Hex(0xffff00)
)

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Lighten moves the color toward white by amount in [0,1] in HSL space
func (c RGB) Lighten(amount float64) RGB {
	h, s, l := c.colorful().Hsl()
	l += amount
	if l > 1 {
		l = 1
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// Darken moves the color toward black by amount in [0,1] in HSL space
func (c RGB) Darken(amount float64) RGB {
	h, s, l := c.colorful().Hsl()
	l -= amount
	if l < 0 {
		l = 0
	}
	return fromColorful(colorful.Hsl(h, s, l))
}

// Mix blends two colors in Lab space, t=0 yields a, t=1 yields b.
// Lab keeps perceived brightness stable across the blend.
func Mix(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(a.colorful().BlendLab(b.colorful(), t))
}
