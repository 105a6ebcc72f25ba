// Package imaging connects raster images to the color notations of package
// colorspace.
//
// It reads colors out of images (single pixels and quantized palettes) and
// renders solid swatches for a color. Every color it returns is expressed as
// canonical hex, rgb and hsl text.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The sampling and rendering
// functions are stateless.
//
// # Color Representation
//
//   - Hex: "#rrggbb", lowercase, alpha excluded
//   - RGB: "rgb(r, g, b)" or "rgba(r, g, b, a)" for translucent pixels
//   - HSL: "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)"
package imaging
