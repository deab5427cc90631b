// Package ui composes the three channel panels, an overall preview, and the
// help and status lines into one tcell screen, and routes keyboard and mouse
// input to the focused panel.
package ui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coloradjuster/icon"
	"github.com/lixenwraith/coloradjuster/model"
	"github.com/lixenwraith/coloradjuster/panel"
)

// Sounds is the audible side of feedback
// Satisfied by *audio.SoundManager
type Sounds interface {
	PlayClick()
	PlayReject()
	PlayBoundary()
	ToggleEnabled() bool
}

// IconChanged is posted as tcell.EventInterrupt data when an icon file changes
type IconChanged struct {
	Path string
}

// Focus addresses one widget in one row
type Focus struct {
	Panel  int
	Widget Widget
}

const helpText = "Tab focus  ←/→ slide  Enter/Space press  e edit  +/- step  r/g/b jump  m sound  q quit"

// Slider keyboard steps
const (
	sliderStep     = 1
	sliderPageStep = 16
)

// Frame is the main window
type Frame struct {
	color  *model.Color
	panels [len(model.Channels)]*panel.Panel
	icons  *icon.Set
	sounds Sounds

	focus    Focus
	layout   Layout
	status   string
	warn     bool
	dragging int
	lastBtn  tcell.ButtonMask
}

// NewFrame creates the panels for c and wires their feedback through the frame
// sounds may be nil
func NewFrame(c *model.Color, icons *icon.Set, sounds Sounds) *Frame {
	f := &Frame{
		color:    c,
		icons:    icons,
		sounds:   sounds,
		dragging: -1,
		focus:    Focus{Panel: 0, Widget: WidgetSlider},
	}
	for i, ch := range model.Channels {
		f.panels[i] = panel.New(ch, c, f)
	}
	f.status = "Ready"
	return f
}

// Close detaches the panels from the model
func (f *Frame) Close() {
	for _, p := range f.panels {
		p.Close()
	}
}

// Panel returns the panel for ch
func (f *Frame) Panel(ch model.Channel) *panel.Panel {
	return f.panels[ch]
}

// Focus returns the focused widget
func (f *Frame) Focus() Focus { return f.focus }

// Status returns the status line text
func (f *Frame) Status() string { return f.status }

// Layout returns the geometry used by the last Draw
func (f *Frame) Layout() Layout { return f.layout }

// Stepped implements panel.Feedback
func (f *Frame) Stepped(ch model.Channel, v int) {
	f.setStatus(fmt.Sprintf("%s set to %d", ch, v), false)
	if f.sounds != nil {
		f.sounds.PlayClick()
	}
}

// Rejected implements panel.Feedback
func (f *Frame) Rejected(ch model.Channel, input string) {
	f.setStatus(fmt.Sprintf("%s: %q rejected, expected 0-%d", ch, input, model.MaxValue), true)
	log.Printf("rejected input %q for %s", input, ch)
	if f.sounds != nil {
		f.sounds.PlayReject()
	}
}

// Boundary implements panel.Feedback
func (f *Frame) Boundary(ch model.Channel, v int) {
	if f.sounds != nil {
		f.sounds.PlayBoundary()
	}
}

func (f *Frame) setStatus(s string, warn bool) {
	f.status = s
	f.warn = warn
}

// SetFocus moves focus, committing the text field being left
func (f *Frame) SetFocus(to Focus) {
	to.Panel = (to.Panel%len(f.panels) + len(f.panels)) % len(f.panels)
	to.Widget = Widget((int(to.Widget)%int(widgetCount) + int(widgetCount)) % int(widgetCount))
	if to == f.focus {
		return
	}
	if f.focus.Widget == WidgetText {
		f.panels[f.focus.Panel].Blur()
	}
	f.focus = to
}

// focusNext walks the ring row by row
func (f *Frame) focusNext(delta int) {
	n := len(f.panels) * int(widgetCount)
	idx := f.focus.Panel*int(widgetCount) + int(f.focus.Widget)
	idx = ((idx+delta)%n + n) % n
	f.SetFocus(Focus{Panel: idx / int(widgetCount), Widget: Widget(idx % int(widgetCount))})
}

func (f *Frame) focused() *panel.Panel {
	return f.panels[f.focus.Panel]
}

// editingText reports whether keystrokes belong to the text field
func (f *Frame) editingText() bool {
	return f.focus.Widget == WidgetText && f.focused().Editable()
}

// HandleEvent dispatches one event, returns true when the application should quit
func (f *Frame) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventInterrupt:
		if ic, ok := ev.Data().(IconChanged); ok && f.icons != nil {
			if f.icons.Reload(ic.Path) {
				f.setStatus("Reloaded "+ic.Path, false)
			}
		}
	}
	return false
}

func (f *Frame) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyTab:
		f.focusNext(1)
		return false
	case tcell.KeyBacktab:
		f.focusNext(-1)
		return false
	case tcell.KeyUp:
		f.SetFocus(Focus{Panel: f.focus.Panel - 1, Widget: f.focus.Widget})
		return false
	case tcell.KeyDown:
		f.SetFocus(Focus{Panel: f.focus.Panel + 1, Widget: f.focus.Widget})
		return false
	}

	if f.editingText() {
		f.handleTextKey(ev)
		return false
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return true
		case 'r', 'g', 'b':
			ch, _ := model.ParseChannel(string(ev.Rune()))
			f.SetFocus(Focus{Panel: int(ch), Widget: WidgetSlider})
			return false
		case 'm':
			if f.sounds != nil {
				if f.sounds.ToggleEnabled() {
					f.setStatus("Sound on", false)
				} else {
					f.setStatus("Sound off", false)
				}
			}
			return false
		case 'e':
			f.toggleEdit(f.focused())
			return false
		case '+', '=':
			f.press(f.focused(), WidgetIncrease)
			return false
		case '-', '_':
			f.press(f.focused(), WidgetDecrease)
			return false
		}
	}

	p := f.focused()
	switch f.focus.Widget {
	case WidgetSlider:
		f.handleSliderKey(p, ev)
	case WidgetIncrease, WidgetDecrease:
		if activates(ev) {
			f.press(p, f.focus.Widget)
		}
	case WidgetEdit:
		if activates(ev) {
			f.toggleEdit(p)
		}
	case WidgetText:
		if activates(ev) {
			f.setStatus("Enable edit to type a value", false)
		}
	}
	return false
}

func activates(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
}

func (f *Frame) handleTextKey(ev *tcell.EventKey) {
	p := f.focused()
	tf := p.Field()
	switch ev.Key() {
	case tcell.KeyEnter:
		p.CommitText()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		p.Backspace()
	case tcell.KeyDelete:
		p.Delete()
	case tcell.KeyLeft:
		tf.MoveLeft()
	case tcell.KeyRight:
		tf.MoveRight()
	case tcell.KeyHome:
		tf.Home()
	case tcell.KeyEnd:
		tf.End()
	case tcell.KeyRune:
		p.TypeRune(ev.Rune())
	}
}

func (f *Frame) handleSliderKey(p *panel.Panel, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		p.SlideBy(-sliderStep)
	case tcell.KeyRight:
		p.SlideBy(sliderStep)
	case tcell.KeyPgDn:
		p.SlideBy(-sliderPageStep)
	case tcell.KeyPgUp:
		p.SlideBy(sliderPageStep)
	case tcell.KeyHome:
		p.SlideTo(model.MinValue)
	case tcell.KeyEnd:
		p.SlideTo(model.MaxValue)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			p.SlideBy(-sliderStep)
		case 'l':
			p.SlideBy(sliderStep)
		}
	}
}

// press activates an increase/decrease button if it is enabled
func (f *Frame) press(p *panel.Panel, w Widget) {
	b := p.Buttons()
	switch w {
	case WidgetIncrease:
		if b.Increase {
			p.Increase()
		}
	case WidgetDecrease:
		if b.Decrease {
			p.Decrease()
		}
	}
}

func (f *Frame) toggleEdit(p *panel.Panel) {
	if p.ToggleEdit() {
		f.setStatus(p.Channel().String()+" editing enabled", false)
	} else {
		f.setStatus(p.Channel().String()+" editing disabled", false)
	}
}

func (f *Frame) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	pressed := btn&tcell.Button1 != 0 && f.lastBtn&tcell.Button1 == 0
	f.lastBtn = btn

	if btn&tcell.Button1 == 0 {
		f.dragging = -1
		return
	}

	// Drag continues even when the pointer leaves the track
	if f.dragging >= 0 {
		p := f.panels[f.dragging]
		p.SlideTo(SliderValue(f.layout.Rows[f.dragging].Slider, x))
		return
	}
	if !pressed {
		return
	}

	row, w, ok := f.layout.HitTest(x, y)
	if !ok {
		// Clicking away from the field counts as leaving it
		if f.focus.Widget == WidgetText {
			f.focused().Blur()
		}
		return
	}

	f.SetFocus(Focus{Panel: row, Widget: w})
	p := f.panels[row]
	switch w {
	case WidgetSlider:
		f.dragging = row
		p.SlideTo(SliderValue(f.layout.Rows[row].Slider, x))
	case WidgetIncrease, WidgetDecrease:
		f.press(p, w)
	case WidgetEdit:
		f.toggleEdit(p)
	}
}

// Draw renders the whole frame; the caller shows the screen
func (f *Frame) Draw(s tcell.Screen) {
	w, h := s.Size()
	f.layout = ComputeLayout(w, h)

	fill(s, Rect{X: 0, Y: 0, W: w, H: h}, baseStyle)

	fill(s, f.layout.Title, headerStyle)
	drawCentered(s, f.layout.Title, 0, "Color Adjuster", headerStyle)

	for i, p := range f.panels {
		f.drawRow(s, i, p, f.layout.Rows[i])
	}
	f.drawPreview(s, f.layout.Preview)

	drawText(s, f.layout.Help.X+1, f.layout.Help.Y, f.layout.Help.W-1, helpText, dimStyle)
	style := statusStyle
	if f.warn {
		style = warnStyle
	}
	drawText(s, f.layout.Status.X+1, f.layout.Status.Y, f.layout.Status.W-1, f.status, style)
}

// Resize recomputes the layout without drawing, for mouse events before the first frame
func (f *Frame) Resize(w, h int) {
	f.layout = ComputeLayout(w, h)
}
