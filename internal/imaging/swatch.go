package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

const (
	// DefaultSwatchSize is used for a zero width or height.
	DefaultSwatchSize = 64
	// MaxSwatchSize bounds both swatch dimensions.
	MaxSwatchSize = 1024
)

// SwatchOptions controls RenderSwatch.
type SwatchOptions struct {
	Width  int  // 0 selects DefaultSwatchSize
	Height int  // 0 selects DefaultSwatchSize
	Label  bool // draw the hex text in the middle of the swatch
}

// SwatchResult contains the rendered swatch.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Hex         string `json:"hex"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatch fills a width×height PNG with c.
//
// The alpha of c is written to the PNG as is; nothing is composited onto a
// background. When opts.Label is set the canonical hex text is drawn in
// black on light colors (lightness above 50%) and in white otherwise.
func RenderSwatch(c colorspace.RGB, opts SwatchOptions) (*SwatchResult, error) {
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = DefaultSwatchSize
	}
	if height == 0 {
		height = DefaultSwatchSize
	}
	if width < 0 || height < 0 || width > MaxSwatchSize || height > MaxSwatchSize {
		return nil, fmt.Errorf("swatch size %dx%d must be within 1x1-%dx%d",
			width, height, MaxSwatchSize, MaxSwatchSize)
	}

	hex := colorspace.HexFromRGB(c).String()
	img := imaging.New(width, height, c.Color())

	if opts.Label {
		ink := color.Color(color.White)
		if colorspace.HSLFromRGB(c).L() > 0.5 {
			ink = color.Black
		}
		drawLabel(img, hex, ink)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       width,
		Height:      height,
		Hex:         hex,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// drawLabel centers text on img using the 7x13 bitmap face.
func drawLabel(img *image.NRGBA, text string, ink color.Color) {
	face := basicfont.Face7x13
	b := img.Bounds()
	textWidth := font.MeasureString(face, text).Ceil()
	x := b.Min.X + (b.Dx()-textWidth)/2
	y := b.Min.Y + (b.Dy()+face.Ascent-face.Descent)/2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
