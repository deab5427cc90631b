package ui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/coloradjuster/icon"
	"github.com/lixenwraith/coloradjuster/panel"
)

// fill paints r with spaces in style
func fill(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes text at (x, y) clipped to maxW cells, returns cells written
func drawText(s tcell.Screen, x, y, maxW int, text string, style tcell.Style) int {
	n := 0
	for _, ch := range text {
		if n >= maxW {
			break
		}
		s.SetContent(x+n, y, ch, nil, style)
		n++
	}
	return n
}

// drawCentered writes text centred inside r on row y
func drawCentered(s tcell.Screen, r Rect, y int, text string, style tcell.Style) {
	n := len([]rune(text))
	x := r.X + (r.W-n)/2
	if x < r.X {
		x = r.X
	}
	drawText(s, x, y, r.X+r.W-x, text, style)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// contrastColor picks black or white text for legibility on bg
func contrastColor(bg colorful.Color) tcell.Color {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

func (f *Frame) drawRow(s tcell.Screen, i int, p *panel.Panel, row RowLayout) {
	focused := func(w Widget) bool { return f.focus.Panel == i && f.focus.Widget == w }

	// Swatch with a thin frame
	s.SetContent(row.Swatch.X, row.Swatch.Y, '▐', nil, baseStyle.Foreground(swatchBorder))
	fill(s, Rect{X: row.Swatch.X + 1, Y: row.Swatch.Y, W: row.Swatch.W - 2, H: 1},
		tcell.StyleDefault.Background(rgb(p.Swatch())))
	s.SetContent(row.Swatch.X+row.Swatch.W-1, row.Swatch.Y, '▌', nil, baseStyle.Foreground(swatchBorder))

	labelStyle := baseStyle
	if f.focus.Panel == i {
		labelStyle = labelStyle.Bold(true).Foreground(accentColor)
	}
	drawText(s, row.Label.X, row.Label.Y, row.Label.W, p.Channel().String()+":", labelStyle)

	f.drawField(s, p, row.Text, focused(WidgetText))
	f.drawEdit(s, p, row.Edit, focused(WidgetEdit))

	fill(s, row.Controls, baseStyle.Background(controlsBg))
	b := p.Buttons()
	drawButton(s, row.Decrease, f.icons.Decrease, b.Decrease, focused(WidgetDecrease))
	drawSlider(s, row.Slider, p, focused(WidgetSlider))
	drawButton(s, row.Increase, f.icons.Increase, b.Increase, focused(WidgetIncrease))
}

// drawField renders the right-aligned value field with a cursor when editing
func (f *Frame) drawField(s tcell.Screen, p *panel.Panel, r Rect, focused bool) {
	bg := fieldRoBg
	if p.Editable() {
		bg = fieldBg
	}
	if focused {
		bg = focusBg
	}
	style := baseStyle.Background(bg)
	fill(s, r, style)

	tf := p.Field()
	area := r.W - 1 // last cell holds an end-of-text cursor
	offset := max(len(tf.Text)-area, 0)
	visible := tf.Text[offset:]
	start := r.X + area - len(visible)
	for i, ch := range visible {
		s.SetContent(start+i, r.Y, ch, nil, style)
	}

	if focused && p.Editable() && tf.Cursor >= offset {
		cx := start + tf.Cursor - offset
		ch := ' '
		if tf.Cursor < len(tf.Text) {
			ch = tf.Text[tf.Cursor]
		}
		s.SetContent(cx, r.Y, ch, nil, style.Reverse(true))
	}
}

// drawEdit renders the enable-edit toggle as a checkbox
func (f *Frame) drawEdit(s tcell.Screen, p *panel.Panel, r Rect, focused bool) {
	style := baseStyle
	if focused {
		style = style.Foreground(focusFg).Background(focusBg)
	}
	mark := ' '
	if p.Editable() {
		mark = 'x'
	}
	label := []rune(editLabel)
	label[1] = mark
	drawText(s, r.X, r.Y, r.W, string(label), style)
}

// drawButton renders an icon button; disabled buttons are dimmed
func drawButton(s tcell.Screen, r Rect, ic *icon.Icon, enabled, focused bool) {
	bg := buttonBg
	fg := fgColor
	switch {
	case !enabled:
		bg = buttonOffBg
		fg = dimColor
	case focused:
		bg = focusBg
		fg = focusFg
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	fill(s, r, style)

	for i, c := range ic.Cells {
		cs := style
		if !ic.Fallback && enabled {
			cs = cs.Foreground(c.Fg)
			if c.HasBg {
				cs = cs.Background(c.Bg)
			}
		}
		s.SetContent(r.X+1+i, r.Y, c.Rune, nil, cs)
	}
}

// drawSlider renders the track, the filled part in the channel colour, and the handle
func drawSlider(s tcell.Screen, r Rect, p *panel.Panel, focused bool) {
	pos := SliderPos(r, p.Slider())
	fillColor := rgb(p.Swatch())
	for i := 0; i < r.W; i++ {
		ch := '─'
		style := baseStyle.Background(controlsBg).Foreground(trackColor)
		if i < pos {
			ch = '━'
			style = style.Foreground(fillColor)
		}
		s.SetContent(r.X+i, r.Y, ch, nil, style)
	}

	handle := baseStyle.Background(controlsBg).Foreground(fgColor)
	if focused {
		handle = handle.Foreground(accentColor).Bold(true)
	}
	s.SetContent(r.X+pos, r.Y, '●', nil, handle)
}

// drawPreview fills the preview block with the full colour and labels it
func (f *Frame) drawPreview(s tcell.Screen, r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	bg := rgb(f.color.RGBA())
	fg := contrastColor(f.color.Colorful())
	style := tcell.StyleDefault.Background(bg).Foreground(fg)
	fill(s, r, style)

	red, green, blue := f.color.RGB()
	label := fmt.Sprintf("%s  rgb(%d, %d, %d)", f.color.Hex(), red, green, blue)
	drawCentered(s, r, r.Y+r.H/2, label, style.Bold(true))
}
