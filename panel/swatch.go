package panel

import (
	"image/color"

	"github.com/lixenwraith/coloradjuster/model"
)

// Swatch returns the single-channel preview colour for ch at intensity v
// The other two channels are always zero regardless of the model
func Swatch(ch model.Channel, v int) color.RGBA {
	c := color.RGBA{A: 0xff}
	if !model.InRange(v) {
		v = clamp(v)
	}
	switch ch {
	case model.Red:
		c.R = uint8(v)
	case model.Green:
		c.G = uint8(v)
	case model.Blue:
		c.B = uint8(v)
	}
	return c
}

func clamp(v int) int {
	if v < model.MinValue {
		return model.MinValue
	}
	if v > model.MaxValue {
		return model.MaxValue
	}
	return v
}
