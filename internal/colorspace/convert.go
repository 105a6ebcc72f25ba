package colorspace

import (
	"fmt"
	"math"
	"strconv"
)

// achromaticEpsilon is the chroma below which a color is treated as gray.
const achromaticEpsilon = 0.00001

// RGBFromHex expands short-form digits and decodes each channel. The result
// is always opaque.
func RGBFromHex(h Hex) RGB {
	return RGB{
		r: hexChannel(h.r),
		g: hexChannel(h.g),
		b: hexChannel(h.b),
		a: opaque,
	}
}

// HexFromRGB formats each channel as two hex digits. Alpha is dropped.
func HexFromRGB(c RGB) Hex {
	return Hex{
		r: fmt.Sprintf("%02X", c.r),
		g: fmt.Sprintf("%02X", c.g),
		b: fmt.Sprintf("%02X", c.b),
	}
}

// HSLFromRGB converts using the min/max/chroma algorithm.
//
// The conversion follows the standard steps:
//  1. Normalize RGB to the 0-1 range
//  2. Lightness is the midpoint of the max and min components
//  3. Saturation is chroma relative to lightness
//  4. Hue comes from the sector of whichever component is max
//
// Hue is rounded to whole degrees, saturation and lightness to two
// decimals. Alpha is carried over unchanged.
func HSLFromRGB(c RGB) HSL {
	r := float64(c.r) / 255.0
	g := float64(c.g) / 255.0
	b := float64(c.b) / 255.0

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	diff := max - min
	l := (max + min) / 2.0

	var h, s float64
	if math.Abs(diff) >= achromaticEpsilon {
		if l <= 0.5 {
			s = diff / (max + min)
		} else {
			s = diff / (2.0 - max - min)
		}

		rDist := (max - r) / diff
		gDist := (max - g) / diff
		bDist := (max - b) / diff

		switch max {
		case r:
			h = bDist - gDist
		case g:
			h = 2.0 + rDist - bDist
		default:
			h = 4.0 + gDist - rDist
		}
		h *= 60
		if h < 0 {
			h += 360
		}
	}

	return HSL{
		h: int(math.RoundToEven(h)),
		s: roundTo(s, 2),
		l: roundTo(l, 2),
		a: c.a,
	}
}

// RGBFromHSL converts using two-parameter interpolation. Channels are
// rounded to the nearest integer; alpha is carried over unchanged.
func RGBFromHSL(c HSL) RGB {
	var p2 float64
	if c.l <= 0.5 {
		p2 = c.l * (1 + c.s)
	} else {
		p2 = c.l + c.s - c.l*c.s
	}
	p1 := 2.0*c.l - p2

	r, g, b := c.l, c.l, c.l
	if c.s != 0 {
		hue := float64(c.h)
		r = hueToChannel(p1, p2, hue+120.0)
		g = hueToChannel(p1, p2, hue)
		b = hueToChannel(p1, p2, hue-120.0)
	}

	return RGB{
		r: toByte(r),
		g: toByte(g),
		b: toByte(b),
		a: c.a,
	}
}

// HSLFromHex pivots through RGB.
func HSLFromHex(h Hex) HSL {
	return HSLFromRGB(RGBFromHex(h))
}

// HexFromHSL pivots through RGB. Alpha is dropped.
func HexFromHSL(c HSL) Hex {
	return HexFromRGB(RGBFromHSL(c))
}

// hueToChannel interpolates one channel across the six 60° sectors:
// ramp up 0-60, flat p2 60-180, ramp down 180-240, flat p1 240-360.
func hueToChannel(p1, p2, hue float64) float64 {
	if hue >= 360.0 {
		hue -= 360.0
	} else if hue < 0 {
		hue += 360.0
	}

	switch {
	case hue < 60.0:
		return p1 + (p2-p1)*hue/60.0
	case hue < 180.0:
		return p2
	case hue < 240.0:
		return p1 + (p2-p1)*(240.0-hue)/60.0
	default:
		return p1
	}
}

func toByte(f float64) int {
	v := math.RoundToEven(f * 255.0)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return int(v)
}

// hexChannel decodes validated digits; short form is duplicated first.
func hexChannel(digits string) int {
	v, _ := strconv.ParseUint(expand(digits), 16, 8)
	return int(v)
}
