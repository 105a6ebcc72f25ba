package colorspace

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRGB(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		r, g, b    int
		a          float64
		wantString string
	}{
		{"opaque", "rgb(10, 20, 30)", 10, 20, 30, 1, "rgb(10, 20, 30)"},
		{"no spaces", "rgb(10,20,30)", 10, 20, 30, 1, "rgb(10, 20, 30)"},
		{"space separated", "rgb(10 20 30)", 10, 20, 30, 1, "rgb(10, 20, 30)"},
		{"extra spaces", "rgb( 0 ,  0 , 255 )", 0, 0, 255, 1, "rgb(0, 0, 255)"},
		{"translucent", "rgba(10, 20, 30, 0.5)", 10, 20, 30, 0.5, "rgba(10, 20, 30, 0.5)"},
		{"rgba name without alpha", "rgba(1, 2, 3)", 1, 2, 3, 1, "rgb(1, 2, 3)"},
		{"rgb name with alpha", "rgb(1, 2, 3, 0.4)", 1, 2, 3, 0.4, "rgba(1, 2, 3, 0.4)"},
		{"alpha one is opaque", "rgba(0, 0, 0, 1)", 0, 0, 0, 1, "rgb(0, 0, 0)"},
		{"alpha zero", "rgba(0, 0, 0, 0)", 0, 0, 0, 0, "rgba(0, 0, 0, 0)"},
		{"alpha rounded", "rgba(0, 0, 0, 0.33)", 0, 0, 0, 0.33, "rgba(0, 0, 0, 0.3)"},
		{"alpha midpoint to even", "rgba(0, 0, 0, 0.25)", 0, 0, 0, 0.25, "rgba(0, 0, 0, 0.2)"},
		{"alpha leading dot", "rgba(0, 0, 0, .5)", 0, 0, 0, 0.5, "rgba(0, 0, 0, 0.5)"},
		{"signed channel", "rgb(+5, 0, 0)", 5, 0, 0, 1, "rgb(5, 0, 0)"},
		{"bounds", "rgb(0, 255, 0)", 0, 255, 0, 1, "rgb(0, 255, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseRGB(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.r, c.R())
			assert.Equal(t, tt.g, c.G())
			assert.Equal(t, tt.b, c.B())
			assert.InDelta(t, tt.a, c.A(), 1e-12)
			assert.Equal(t, tt.wantString, c.String())
		})
	}
}

func TestParseRGB_NoMatch(t *testing.T) {
	inputs := []string{
		"",
		"not-a-color",
		"#abc",
		"RGB(1, 2, 3)",
		"rgb 1, 2, 3",
		"rgb(1, 2, 3",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 0.5, 6)",
		"rgb(a, b, c)",
		"rgb(1.5, 2, 3)",
		"rgba(1, 2, 3, x)",
		"rgba(1, 2, 3, NaN)",
		"rgba(1, 2, 3, Inf)",
		"rgb(1%, 2, 3)",
		"hsl(1, 2%, 3%)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRGB(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNoMatch), "got %v", err)
			assert.False(t, errors.Is(err, ErrOutOfRange))

			_, ok := TryParseRGB(input)
			assert.False(t, ok)
		})
	}
}

func TestParseRGB_OutOfRange(t *testing.T) {
	tests := []struct {
		input     string
		wantField string
	}{
		{"rgb(256, 0, 0)", "red"},
		{"rgb(999, 0, 0)", "red"},
		{"rgb(-1, 0, 0)", "red"},
		{"rgb(0, 300, 0)", "green"},
		{"rgb(0, 0, 256)", "blue"},
		{"rgba(0, 0, 0, 1.5)", "alpha"},
		{"rgba(0, 0, 0, -0.1)", "alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseRGB(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))
			assert.False(t, errors.Is(err, ErrNoMatch))

			var rangeErr *RangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.wantField, rangeErr.Field)

			// The non-throwing parser folds range violations into a non-match.
			_, ok := TryParseRGB(tt.input)
			assert.False(t, ok)
		})
	}
}

func TestNewRGBA_Invalid(t *testing.T) {
	_, err := NewRGB(0, 0, 256)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewRGBA(0, 0, 0, math.NaN())
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewRGBA(0, 0, 0, 1.0000001)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "alpha")
}

func TestRGB_CanonicalTextIsIdempotent(t *testing.T) {
	inputs := []string{
		"rgb(1,2,3)",
		"rgba(10, 20, 30, 0.5)",
		"rgba(0,0,0,0.04)",
		"rgb(255 255 255)",
		"rgba(1, 2, 3, 0.94)",
		"rgba(1, 2, 3, 0.95)",
		"rgba(1, 2, 3, 0.96)",
		"rgba(1, 2, 3, 0.99)",
	}
	for _, input := range inputs {
		c, ok := TryParseRGB(input)
		require.True(t, ok, input)

		text := c.String()
		again, ok := TryParseRGB(text)
		require.True(t, ok, text)
		assert.Equal(t, text, again.String())
	}
}

func TestRGB_String_AlphaRoundingToOne(t *testing.T) {
	for _, a := range []float64{0.96, 0.97, 0.99} {
		c, err := NewRGBA(1, 2, 3, a)
		require.NoError(t, err)
		assert.False(t, c.Opaque())
		assert.Equal(t, "rgb(1, 2, 3)", c.String(), "alpha %v", a)
	}

	c, err := NewRGBA(1, 2, 3, 0.94)
	require.NoError(t, err)
	assert.Equal(t, "rgba(1, 2, 3, 0.9)", c.String())
}

func TestRGB_Color(t *testing.T) {
	c, err := NewRGBA(10, 20, 30, 0.5)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 128}, c.Color())

	opaqueColor, err := NewRGB(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, opaqueColor.Color())
}

func TestRGBFromColor(t *testing.T) {
	c := RGBFromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	assert.Equal(t, "rgb(10, 20, 30)", c.String())
	assert.True(t, c.Opaque())

	half := RGBFromColor(color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	assert.Equal(t, 200, half.R())
	assert.Equal(t, 100, half.G())
	assert.Equal(t, 50, half.B())
	assert.Equal(t, "rgba(200, 100, 50, 0.5)", half.String())

	transparent := RGBFromColor(color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	assert.Equal(t, "rgba(0, 0, 0, 0)", transparent.String())
}

func TestRGB_Colorful(t *testing.T) {
	c, err := NewRGB(10, 20, 30)
	require.NoError(t, err)
	assert.Equal(t, HexFromRGB(c).String(), c.Colorful().Hex())
}
