package panel

import "github.com/lixenwraith/coloradjuster/model"

// Buttons is the enabled state of the increase/decrease pair
type Buttons struct {
	Increase bool
	Decrease bool
}

// ButtonsFor derives button enablement from a channel value
//
//	0       -> increase only
//	1..254  -> both
//	255     -> decrease only
func ButtonsFor(v int) Buttons {
	return Buttons{
		Increase: v < model.MaxValue,
		Decrease: v > model.MinValue,
	}
}
