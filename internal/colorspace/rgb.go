package colorspace

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel color with a fractional alpha.
//
// RGB is the pivot representation: Hex and HSL values always convert
// through it.
type RGB struct {
	r, g, b int
	a       float64
}

// NewRGB builds an opaque RGB color. Each channel must be in [0,255].
func NewRGB(red, green, blue int) (RGB, error) {
	return NewRGBA(red, green, blue, opaque)
}

// NewRGBA builds an RGB color with alpha in [0,1].
//
// Returns a *RangeError naming the first component out of range.
func NewRGBA(red, green, blue int, alpha float64) (RGB, error) {
	if err := checkInt("red", red, 0, 255); err != nil {
		return RGB{}, err
	}
	if err := checkInt("green", green, 0, 255); err != nil {
		return RGB{}, err
	}
	if err := checkInt("blue", blue, 0, 255); err != nil {
		return RGB{}, err
	}
	if err := checkUnit("alpha", alpha); err != nil {
		return RGB{}, err
	}
	return RGB{r: red, g: green, b: blue, a: alpha}, nil
}

// R returns the red channel, 0-255.
func (c RGB) R() int { return c.r }

// G returns the green channel, 0-255.
func (c RGB) G() int { return c.g }

// B returns the blue channel, 0-255.
func (c RGB) B() int { return c.b }

// A returns the alpha channel, 0-1.
func (c RGB) A() float64 { return c.a }

// Opaque reports whether c carries the default alpha.
func (c RGB) Opaque() bool { return c.a == opaque }

// String returns "rgba(r, g, b, a)" with alpha rounded to one decimal, or
// "rgb(r, g, b)" when the rounded alpha is 1.
func (c RGB) String() string {
	if printsOpaque(c.a) {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, formatAlpha(c.a))
}

// ParseRGB parses "rgb(r, g, b)" or "rgba(r, g, b, a)".
//
// Text that is not in rgb notation returns an error wrapping ErrNoMatch.
// Well-formed text with a component out of range returns the *RangeError
// from NewRGBA.
func ParseRGB(text string) (RGB, error) {
	tokens, ok := functional(text, "rgb")
	if !ok || (len(tokens) != 4 && len(tokens) != 5) {
		return RGB{}, noMatch("rgb", text)
	}

	red, okR := parseInt(tokens[1])
	green, okG := parseInt(tokens[2])
	blue, okB := parseInt(tokens[3])
	if !okR || !okG || !okB {
		return RGB{}, noMatch("rgb", text)
	}

	alpha := opaque
	if len(tokens) == 5 {
		if alpha, ok = parseAlpha(tokens[4]); !ok {
			return RGB{}, noMatch("rgb", text)
		}
	}
	return NewRGBA(red, green, blue, alpha)
}

// TryParseRGB is ParseRGB with both failure kinds reported as a non-match.
func TryParseRGB(text string) (RGB, bool) {
	c, err := ParseRGB(text)
	return c, err == nil
}

// Color returns c as a non-premultiplied color.NRGBA.
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{
		R: uint8(c.r),
		G: uint8(c.g),
		B: uint8(c.b),
		A: uint8(math.Round(c.a * 255)),
	}
}

// Colorful returns the RGB channels as a go-colorful color. Alpha is dropped.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255.0,
		G: float64(c.g) / 255.0,
		B: float64(c.b) / 255.0,
	}
}

// RGBFromColor converts any image color into an RGB value. Premultiplied
// colors are un-premultiplied first; a fully transparent color yields
// rgba(0, 0, 0, 0).
func RGBFromColor(col color.Color) RGB {
	cf, alpha := colorful.MakeColor(col)
	if !alpha {
		return RGB{}
	}
	r, g, b := cf.Clamped().RGB255()
	_, _, _, a := col.RGBA()
	return RGB{r: int(r), g: int(g), b: int(b), a: float64(a) / 0xffff}
}
