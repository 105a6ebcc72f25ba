package colorspace

// Notation identifies which textual form a color was written in.
type Notation int

const (
	NotationHex Notation = iota + 1
	NotationRGB
	NotationHSL
)

func (n Notation) String() string {
	switch n {
	case NotationHex:
		return "hex"
	case NotationRGB:
		return "rgb"
	case NotationHSL:
		return "hsl"
	default:
		return "unknown"
	}
}

// Description is one parsed color in every representation.
//
// Fields hold canonical text so the struct can be returned directly as a
// JSON tool result.
type Description struct {
	Notation   string  `json:"notation"`   // Notation the input matched: hex, rgb, hsl
	Hex        string  `json:"hex"`        // "#rrggbb" (alpha excluded)
	RGB        string  `json:"rgb"`        // rgb()/rgba() text
	HSL        string  `json:"hsl"`        // hsl()/hsla() text
	Red        int     `json:"red"`        // 0-255
	Green      int     `json:"green"`      // 0-255
	Blue       int     `json:"blue"`       // 0-255
	Alpha      float64 `json:"alpha"`      // 0-1
	Hue        int     `json:"hue"`        // 0-360 degrees
	Saturation float64 `json:"saturation"` // 0-1
	Lightness  float64 `json:"lightness"`  // 0-1
}

// Resolve parses text as hex, rgb, then hsl and returns the first match
// together with its RGB and HSL forms. When the input is hsl, the HSL value
// is the parsed one; otherwise it is derived from RGB.
func Resolve(text string) (RGB, HSL, Notation, bool) {
	if h, ok := TryParseHex(text); ok {
		rgb := RGBFromHex(h)
		return rgb, HSLFromRGB(rgb), NotationHex, true
	}
	if rgb, ok := TryParseRGB(text); ok {
		return rgb, HSLFromRGB(rgb), NotationRGB, true
	}
	if hsl, ok := TryParseHSL(text); ok {
		return RGBFromHSL(hsl), hsl, NotationHSL, true
	}
	return RGB{}, HSL{}, 0, false
}

// Describe resolves text and reports it in all three notations.
func Describe(text string) (*Description, bool) {
	rgb, hsl, notation, ok := Resolve(text)
	if !ok {
		return nil, false
	}
	return &Description{
		Notation:   notation.String(),
		Hex:        HexFromRGB(rgb).String(),
		RGB:        rgb.String(),
		HSL:        hsl.String(),
		Red:        rgb.r,
		Green:      rgb.g,
		Blue:       rgb.b,
		Alpha:      rgb.a,
		Hue:        hsl.h,
		Saturation: hsl.s,
		Lightness:  hsl.l,
	}, true
}
