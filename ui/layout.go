package ui

import (
	"github.com/lixenwraith/coloradjuster/icon"
	"github.com/lixenwraith/coloradjuster/model"
)

// Widget identifies a focusable control within a channel row
type Widget uint8

const (
	WidgetText Widget = iota
	WidgetEdit
	WidgetDecrease
	WidgetSlider
	WidgetIncrease
	widgetCount
)

// String returns the widget name
func (w Widget) String() string {
	switch w {
	case WidgetText:
		return "text"
	case WidgetEdit:
		return "edit"
	case WidgetDecrease:
		return "decrease"
	case WidgetSlider:
		return "slider"
	case WidgetIncrease:
		return "increase"
	default:
		return "unknown"
	}
}

// Rect is a screen rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RowLayout positions the controls of one channel row
type RowLayout struct {
	Swatch   Rect
	Label    Rect
	Text     Rect
	Edit     Rect
	Controls Rect // Darkened strip holding decrease, slider and increase
	Decrease Rect
	Slider   Rect
	Increase Rect
}

// Widget returns the rectangle of a focusable widget
func (r RowLayout) Widget(w Widget) Rect {
	switch w {
	case WidgetText:
		return r.Text
	case WidgetEdit:
		return r.Edit
	case WidgetDecrease:
		return r.Decrease
	case WidgetSlider:
		return r.Slider
	case WidgetIncrease:
		return r.Increase
	}
	return Rect{}
}

// Layout is the full frame geometry for one screen size
type Layout struct {
	Width, Height int
	Title         Rect
	Rows          [len(model.Channels)]RowLayout
	Preview       Rect
	Help          Rect
	Status        Rect
}

// Geometry
const (
	marginX       = 2
	rowsTop       = 2
	rowStride     = 2
	swatchWidth   = 4
	labelWidth    = 7
	textWidth     = 5
	editLabel     = "[ ] Enable edit"
	controlsPad   = 2
	buttonWidth   = icon.Width + 2
	minSliderW    = 8
	previewHeight = 3
)

// ComputeLayout derives widget rectangles from the screen size
// The slider absorbs all horizontal slack and never shrinks below minSliderW
func ComputeLayout(w, h int) Layout {
	l := Layout{Width: w, Height: h}
	l.Title = Rect{X: 0, Y: 0, W: w, H: 1}

	for i := range l.Rows {
		y := rowsTop + i*rowStride
		row := RowLayout{}
		x := marginX
		row.Swatch = Rect{X: x, Y: y, W: swatchWidth, H: 1}
		x += swatchWidth + 1
		row.Label = Rect{X: x, Y: y, W: labelWidth, H: 1}
		x += labelWidth
		row.Text = Rect{X: x, Y: y, W: textWidth, H: 1}
		x += textWidth + 1
		row.Edit = Rect{X: x, Y: y, W: len([]rune(editLabel)), H: 1}
		x += row.Edit.W + 1

		controlsX := x
		x += controlsPad
		row.Decrease = Rect{X: x, Y: y, W: buttonWidth, H: 1}
		x += buttonWidth + 1

		sliderW := w - x - 1 - buttonWidth - controlsPad - marginX
		if sliderW < minSliderW {
			sliderW = minSliderW
		}
		row.Slider = Rect{X: x, Y: y, W: sliderW, H: 1}
		x += sliderW + 1
		row.Increase = Rect{X: x, Y: y, W: buttonWidth, H: 1}
		x += buttonWidth + controlsPad
		row.Controls = Rect{X: controlsX, Y: y, W: x - controlsX, H: 1}

		l.Rows[i] = row
	}

	previewY := rowsTop + len(l.Rows)*rowStride
	l.Preview = Rect{X: marginX, Y: previewY, W: max(w-2*marginX, 0), H: previewHeight}
	l.Help = Rect{X: 0, Y: h - 2, W: w, H: 1}
	l.Status = Rect{X: 0, Y: h - 1, W: w, H: 1}
	return l
}

// HitTest maps a screen position to a row and widget
func (l Layout) HitTest(x, y int) (row int, w Widget, ok bool) {
	for i, r := range l.Rows {
		for wd := Widget(0); wd < widgetCount; wd++ {
			if r.Widget(wd).Contains(x, y) {
				return i, wd, true
			}
		}
	}
	return -1, 0, false
}

// SliderValue maps a column inside the slider track to a channel value
func SliderValue(track Rect, x int) int {
	if track.W <= 1 {
		return model.MinValue
	}
	pos := min(max(x-track.X, 0), track.W-1)
	return (pos*model.MaxValue + (track.W-1)/2) / (track.W - 1)
}

// SliderPos maps a channel value to a column offset inside the track
func SliderPos(track Rect, v int) int {
	if track.W <= 1 {
		return 0
	}
	v = min(max(v, model.MinValue), model.MaxValue)
	return (v*(track.W-1) + model.MaxValue/2) / model.MaxValue
}
