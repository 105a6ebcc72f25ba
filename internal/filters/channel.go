package filters

import (
	"math"
	"strconv"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Channel names one component that Extract can read.
type Channel string

const (
	ChannelAlpha      Channel = "alpha"
	ChannelRed        Channel = "red"
	ChannelGreen      Channel = "green"
	ChannelBlue       Channel = "blue"
	ChannelHue        Channel = "hue"
	ChannelSaturation Channel = "saturation"
	ChannelLightness  Channel = "lightness"
)

// Channels lists every recognized channel in a stable order.
var Channels = []Channel{
	ChannelAlpha,
	ChannelRed,
	ChannelGreen,
	ChannelBlue,
	ChannelHue,
	ChannelSaturation,
	ChannelLightness,
}

type channelAccessor func(colorspace.RGB, colorspace.HSL) string

var channelAccessors = map[Channel]channelAccessor{
	ChannelAlpha: func(c colorspace.RGB, _ colorspace.HSL) string {
		return strconv.FormatFloat(c.A(), 'f', -1, 64)
	},
	ChannelRed:   func(c colorspace.RGB, _ colorspace.HSL) string { return strconv.Itoa(c.R()) },
	ChannelGreen: func(c colorspace.RGB, _ colorspace.HSL) string { return strconv.Itoa(c.G()) },
	ChannelBlue:  func(c colorspace.RGB, _ colorspace.HSL) string { return strconv.Itoa(c.B()) },
	ChannelHue:   func(_ colorspace.RGB, h colorspace.HSL) string { return strconv.Itoa(h.H()) },
	ChannelSaturation: func(_ colorspace.RGB, h colorspace.HSL) string {
		return percentInt(h.S())
	},
	ChannelLightness: func(_ colorspace.RGB, h colorspace.HSL) string {
		return percentInt(h.L())
	},
}

// ParseChannel maps a channel name to its Channel. Names are case-sensitive.
func ParseChannel(name string) (Channel, bool) {
	ch := Channel(name)
	_, ok := channelAccessors[ch]
	return ch, ok
}

// Read returns the channel's text from the RGB and HSL forms of one color.
func (ch Channel) Read(rgb colorspace.RGB, hsl colorspace.HSL) (string, bool) {
	accessor, ok := channelAccessors[ch]
	if !ok {
		return "", false
	}
	return accessor(rgb, hsl), true
}

// percentInt renders a fraction as a whole percentage, truncated. Binary
// noise is removed first so 0.29 reads as 29, not 28.
func percentInt(f float64) string {
	p := math.Round(f*100*1e9) / 1e9
	return strconv.Itoa(int(math.Trunc(p)))
}
