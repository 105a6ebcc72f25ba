package colorspace

import (
	"strings"
)

// Hex is a 3-channel color written as hexadecimal digits.
//
// Each channel holds either one digit (short form, "#abc") or two digits
// (long form, "#aabbcc"); all three channels of one value use the same form.
// The digits are stored as written, so Hex{"A","b","c"} and Hex{"a","b","c"}
// are distinct values that serialize to the same text.
type Hex struct {
	r, g, b string
}

// NewHex validates and builds a Hex from its channel digit strings.
//
// Returns a *DigitError when a channel is empty, longer than two digits,
// contains a non-hex character, or uses a different digit count than red.
func NewHex(red, green, blue string) (Hex, error) {
	for _, ch := range []struct {
		name, digits string
	}{{"red", red}, {"green", green}, {"blue", blue}} {
		if !isHexadecimal(ch.digits) || len(ch.digits) != len(red) {
			return Hex{}, &DigitError{Field: ch.name, Value: ch.digits}
		}
	}
	return Hex{r: red, g: green, b: blue}, nil
}

// R returns the red digits as written.
func (h Hex) R() string { return h.r }

// G returns the green digits as written.
func (h Hex) G() string { return h.g }

// B returns the blue digits as written.
func (h Hex) B() string { return h.b }

// Short reports whether h uses the one-digit-per-channel form.
func (h Hex) Short() bool { return len(h.r) == 1 }

// String returns the canonical "#rrggbb" text: lowercase, short form expanded.
func (h Hex) String() string {
	return "#" + strings.ToLower(expand(h.r)+expand(h.g)+expand(h.b))
}

// ParseHex parses "#rgb" or "#rrggbb". Anything else yields an error wrapping
// ErrNoMatch.
func ParseHex(text string) (Hex, error) {
	if !strings.HasPrefix(text, "#") {
		return Hex{}, noMatch("hex", text)
	}

	var red, green, blue string
	switch len(text) {
	case 4:
		red, green, blue = text[1:2], text[2:3], text[3:4]
	case 7:
		red, green, blue = text[1:3], text[3:5], text[5:7]
	default:
		return Hex{}, noMatch("hex", text)
	}

	if !isHexadecimal(red) || !isHexadecimal(green) || !isHexadecimal(blue) {
		return Hex{}, noMatch("hex", text)
	}
	return Hex{r: red, g: green, b: blue}, nil
}

// TryParseHex is ParseHex reduced to a match flag.
func TryParseHex(text string) (Hex, bool) {
	h, err := ParseHex(text)
	return h, err == nil
}

func expand(digits string) string {
	if len(digits) == 1 {
		return digits + digits
	}
	return digits
}

func isHexadecimal(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
