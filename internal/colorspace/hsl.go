package colorspace

import (
	"fmt"
)

// HSL is a color in hue/saturation/lightness form.
//
// Hue is in whole degrees [0,360]; saturation, lightness and alpha are
// fractions in [0,1].
type HSL struct {
	h    int
	s, l float64
	a    float64
}

// NewHSL builds an opaque HSL color.
func NewHSL(hue int, saturation, lightness float64) (HSL, error) {
	return NewHSLA(hue, saturation, lightness, opaque)
}

// NewHSLA builds an HSL color with alpha.
//
// Returns a *RangeError naming the first component out of range.
func NewHSLA(hue int, saturation, lightness, alpha float64) (HSL, error) {
	if err := checkInt("hue", hue, 0, 360); err != nil {
		return HSL{}, err
	}
	if err := checkUnit("saturation", saturation); err != nil {
		return HSL{}, err
	}
	if err := checkUnit("lightness", lightness); err != nil {
		return HSL{}, err
	}
	if err := checkUnit("alpha", alpha); err != nil {
		return HSL{}, err
	}
	return HSL{h: hue, s: saturation, l: lightness, a: alpha}, nil
}

// H returns the hue in whole degrees, 0-360.
func (c HSL) H() int { return c.h }

// S returns the saturation as a fraction, 0-1.
func (c HSL) S() float64 { return c.s }

// L returns the lightness as a fraction, 0-1.
func (c HSL) L() float64 { return c.l }

// A returns the alpha channel, 0-1.
func (c HSL) A() float64 { return c.a }

// Opaque reports whether c carries the default alpha.
func (c HSL) Opaque() bool { return c.a == opaque }

// String returns "hsla(h, s%, l%, a)", or "hsl(h, s%, l%)" when alpha
// rounds to 1.
func (c HSL) String() string {
	if printsOpaque(c.a) {
		return fmt.Sprintf("hsl(%d, %s%%, %s%%)", c.h, formatPercent(c.s), formatPercent(c.l))
	}
	return fmt.Sprintf("hsla(%d, %s%%, %s%%, %s)", c.h, formatPercent(c.s), formatPercent(c.l), formatAlpha(c.a))
}

// ParseHSL parses "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)". The percent sign
// is required on saturation and lightness.
//
// Error behavior matches ParseRGB: ErrNoMatch for syntax, *RangeError for
// well-formed values out of range.
func ParseHSL(text string) (HSL, error) {
	tokens, ok := functional(text, "hsl")
	if !ok || (len(tokens) != 4 && len(tokens) != 5) {
		return HSL{}, noMatch("hsl", text)
	}

	hue, okH := parseInt(tokens[1])
	sat, okS := parsePercent(tokens[2])
	light, okL := parsePercent(tokens[3])
	if !okH || !okS || !okL {
		return HSL{}, noMatch("hsl", text)
	}

	alpha := opaque
	if len(tokens) == 5 {
		if alpha, ok = parseAlpha(tokens[4]); !ok {
			return HSL{}, noMatch("hsl", text)
		}
	}
	return NewHSLA(hue, float64(sat)/100.0, float64(light)/100.0, alpha)
}

// TryParseHSL is ParseHSL with both failure kinds reported as a non-match.
func TryParseHSL(text string) (HSL, bool) {
	c, err := ParseHSL(text)
	return c, err == nil
}
