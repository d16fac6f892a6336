package noise

import (
	"fmt"
	"strings"
)

// Channel identifies one output of the Bank.
type Channel int

const (
	ChannelWhite Channel = iota
	ChannelPink
	ChannelRed
	ChannelViolet
	ChannelBlue
	ChannelGray
	ChannelPrism
	ChannelPerlin
	numChannels
)

var channelNames = [numChannels]string{"white", "pink", "red", "violet", "blue", "gray", "prism", "perlin"}

// Channels lists every channel in output order.
func Channels() []Channel {
	out := make([]Channel, numChannels)
	for i := range out {
		out[i] = Channel(i)
	}
	return out
}

// String returns the lower-case channel name.
func (c Channel) String() string {
	if c < 0 || c >= numChannels {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// Bit returns the Mask bit of c.
func (c Channel) Bit() Mask {
	if c < 0 || c >= numChannels {
		return 0
	}
	return 1 << c
}

// ParseChannel returns the channel with the given name (case-insensitive).
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if strings.EqualFold(name, n) {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("noise: unknown channel %q", name)
}

// Mask is a set of channels.
type Mask uint16

// MaskAll enables every channel.
const MaskAll Mask = 1<<numChannels - 1

// MaskOf returns the mask with the given channels set.
func MaskOf(chs ...Channel) Mask {
	var m Mask
	for _, c := range chs {
		m |= c.Bit()
	}
	return m
}

// Has reports whether c is in m.
func (m Mask) Has(c Channel) bool {
	b := c.Bit()
	return b != 0 && m&b != 0
}

// Closure adds the channels the enabled ones are derived from: red, violet
// and gray consume white, blue consumes pink.
func (m Mask) Closure() Mask {
	if m.Has(ChannelRed) || m.Has(ChannelViolet) || m.Has(ChannelGray) {
		m |= ChannelWhite.Bit()
	}
	if m.Has(ChannelBlue) {
		m |= ChannelPink.Bit()
	}
	return m & MaskAll
}

// String lists the enabled channel names joined by '+'.
func (m Mask) String() string {
	var names []string
	for _, c := range Channels() {
		if m.Has(c) {
			names = append(names, c.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}
