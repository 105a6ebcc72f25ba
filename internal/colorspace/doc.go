// Package colorspace parses, validates, converts and formats colors written in
// hexadecimal, rgb()/rgba() and hsl()/hsla() notation.
//
// # Value Types
//
// Three immutable value types are provided:
//   - Hex: "#rgb" or "#rrggbb" digits, no alpha
//   - RGB: 8-bit channels (0-255) with alpha (0-1); the pivot representation
//   - HSL: hue (0-360 degrees), saturation and lightness (0-1) with alpha
//
// Values are only created by the New* constructors, the parsers, or the
// conversion functions, so every instance is in range. Values compare equal
// with == when their fields are equal.
//
// # Parsing
//
// Each type has two parsers. TryParse* returns a match flag and treats both
// malformed text and out-of-range numbers as a non-match; this is what
// callers that turn input into "no value" should use. Parse* returns an error
// that tells the two apart:
//
//	_, err := colorspace.ParseRGB("rgb(999, 0, 0)")
//	errors.Is(err, colorspace.ErrOutOfRange) // true
//	_, err = colorspace.ParseRGB("red")
//	errors.Is(err, colorspace.ErrNoMatch)    // true
//
// # Conversion
//
// Conversions are explicit functions named target-from-source (RGBFromHex,
// HSLFromRGB, ...). Hex and HSL never convert directly; they pivot through
// RGB. Converting to Hex drops alpha, converting from Hex yields an opaque
// color, and HSL conversions round (hue to whole degrees, saturation and
// lightness to two decimals, channels to whole numbers).
//
// # Canonical Text
//
// String methods produce a single normalized form per type:
//   - Hex: "#rrggbb", lowercase, long form
//   - RGB: "rgb(r, g, b)" or "rgba(r, g, b, a)" with a rounded to one decimal
//   - HSL: "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)"
//
// # Thread Safety
//
// Everything in this package is a pure function over immutable values and
// is safe for concurrent use.
package colorspace
