package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// ColorText is one color in the three canonical notations.
type ColorText struct {
	Hex string `json:"hex"` // "#rrggbb" (alpha excluded)
	RGB string `json:"rgb"` // "rgb(r, g, b)" or "rgba(r, g, b, a)"
	HSL string `json:"hsl"` // "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)"
}

func colorText(c colorspace.RGB) ColorText {
	return ColorText{
		Hex: colorspace.HexFromRGB(c).String(),
		RGB: c.String(),
		HSL: colorspace.HSLFromRGB(c).String(),
	}
}

// SampleResult is the color of one pixel.
type SampleResult struct {
	X     int       `json:"x"`
	Y     int       `json:"y"`
	Color ColorText `json:"color"`
}

// SampleColor reads the pixel at (x, y) and returns it in canonical text.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *SampleResult: The pixel's hex, rgb and hsl text. Translucent pixels
//     keep their alpha in the rgb and hsl text; hex never carries alpha.
//   - error: Non-nil if the coordinates are outside the image bounds.
//
// Premultiplied pixels are un-premultiplied before conversion, so a
// half-transparent red reads as rgba(255, 0, 0, 0.5).
func SampleColor(img image.Image, x, y int) (*SampleResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	return &SampleResult{
		X:     x,
		Y:     y,
		Color: colorText(colorspace.RGBFromColor(img.At(x, y))),
	}, nil
}

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive), (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColorFrequency is one palette entry.
type ColorFrequency struct {
	ColorText
	Percentage float64 `json:"percentage"` // Share of sampled pixels (0-100)
}

// DominantColorsResult lists palette entries, most frequent first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the count most common colors of an image or region.
//
// To group similar colors each 8-bit component is quantized as
//
//	quantized = (original / 16) * 16
//
// so #F0F0F0 and #FAFAFA count as the same color. Alpha is ignored; the
// returned colors are opaque.
//
// Returns an error if count is not positive or the region is empty or
// extends outside the image.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		r := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if r.Empty() || !r.In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) is empty or outside image bounds",
				region.X1, region.Y1, region.X2, region.Y2)
		}
		bounds = r
	}

	counts := make(map[color.NRGBA]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			key := color.NRGBA{R: px.R / 16 * 16, G: px.G / 16 * 16, B: px.B / 16 * 16, A: 255}
			counts[key]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for key, n := range counts {
		c, err := colorspace.NewRGB(int(key.R), int(key.G), int(key.B))
		if err != nil {
			return nil, err
		}
		colors = append(colors, ColorFrequency{
			ColorText:  colorText(c),
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	// Ties break on hex text so results are deterministic.
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
