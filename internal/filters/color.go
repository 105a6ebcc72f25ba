package filters

import (
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// ToRGB converts hex or hsl text to canonical rgb text. Hex is tried first.
func ToRGB(input string, _ Arguments, _ EvalContext) Value {
	if h, ok := colorspace.TryParseHex(input); ok {
		return Text(colorspace.RGBFromHex(h).String())
	}
	if hsl, ok := colorspace.TryParseHSL(input); ok {
		return Text(colorspace.RGBFromHSL(hsl).String())
	}
	return Nil
}

// ToHex converts rgb or hsl text to canonical hex text. Rgb is tried first.
// Alpha is dropped.
func ToHex(input string, _ Arguments, _ EvalContext) Value {
	if rgb, ok := colorspace.TryParseRGB(input); ok {
		return Text(colorspace.HexFromRGB(rgb).String())
	}
	if hsl, ok := colorspace.TryParseHSL(input); ok {
		return Text(colorspace.HexFromHSL(hsl).String())
	}
	return Nil
}

// ToHSL converts hex or rgb text to canonical hsl text. Hex is tried first.
func ToHSL(input string, _ Arguments, _ EvalContext) Value {
	if h, ok := colorspace.TryParseHex(input); ok {
		return Text(colorspace.HSLFromHex(h).String())
	}
	if rgb, ok := colorspace.TryParseRGB(input); ok {
		return Text(colorspace.HSLFromRGB(rgb).String())
	}
	return Nil
}

// Extract reads the channel named by the first argument from hex, rgb or
// hsl text, tried in that order. Unknown channels and non-colors give Nil.
func Extract(input string, args Arguments, _ EvalContext) Value {
	ch, ok := ParseChannel(args.At(0))
	if !ok {
		return Nil
	}
	rgb, hsl, _, ok := colorspace.Resolve(input)
	if !ok {
		return Nil
	}
	text, _ := ch.Read(rgb, hsl)
	return Text(text)
}
