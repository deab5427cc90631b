// Package panel implements the per-channel adjuster: slider, text field,
// increase/decrease buttons, edit toggle and swatch, all bound to one channel
// of a shared model.Color.
//
// Panel state is a cache of the model. Every mutation goes through the model
// and comes back through Notify, which is the only path that rewrites the
// slider, text and swatch.
package panel

import (
	"image/color"
	"strconv"

	"github.com/lixenwraith/coloradjuster/model"
)

// Feedback receives user-visible side effects of panel actions
// Implementations must not write to the model
type Feedback interface {
	// Stepped reports a successful slider/button/text write
	Stepped(ch model.Channel, v int)
	// Rejected reports typed input that was reverted
	Rejected(ch model.Channel, input string)
	// Boundary reports a step that reached or pushed against 0 or 255
	Boundary(ch model.Channel, v int)
}

type noFeedback struct{}

func (noFeedback) Stepped(model.Channel, int)     {}
func (noFeedback) Rejected(model.Channel, string) {}
func (noFeedback) Boundary(model.Channel, int)    {}

// Panel is the view state of one channel row
type Panel struct {
	channel  model.Channel
	color    *model.Color
	sub      model.Subscription
	feedback Feedback

	slider   int
	field    *TextField
	editable bool
	buttons  Buttons
	swatch   color.RGBA
}

// New creates a panel for ch and subscribes it to c
// fb may be nil
func New(ch model.Channel, c *model.Color, fb Feedback) *Panel {
	if fb == nil {
		fb = noFeedback{}
	}
	v := c.Get(ch)
	p := &Panel{
		channel:  ch,
		color:    c,
		feedback: fb,
		field:    NewTextField(strconv.Itoa(v)),
		buttons:  ButtonsFor(v),
	}
	p.render(v)
	p.sub = c.Subscribe(p)
	return p
}

// Close unsubscribes the panel from its model
func (p *Panel) Close() {
	p.sub.Cancel()
}

// SetFeedback replaces the feedback sink, nil restores the silent default
func (p *Panel) SetFeedback(fb Feedback) {
	if fb == nil {
		fb = noFeedback{}
	}
	p.feedback = fb
}

// Channel returns the channel this panel edits
func (p *Panel) Channel() model.Channel { return p.channel }

// Slider returns the slider position
func (p *Panel) Slider() int { return p.slider }

// Text returns the text field content
func (p *Panel) Text() string { return p.field.Value() }

// Field exposes the text field for cursor rendering
func (p *Panel) Field() *TextField { return p.field }

// Editable reports whether the text field accepts input
func (p *Panel) Editable() bool { return p.editable }

// Buttons returns the current increase/decrease enablement
func (p *Panel) Buttons() Buttons { return p.buttons }

// Swatch returns the single-channel preview colour
func (p *Panel) Swatch() color.RGBA { return p.swatch }

// Value returns the model's current value for this channel
func (p *Panel) Value() int { return p.color.Get(p.channel) }

// Notify implements model.Observer
func (p *Panel) Notify(ev model.ChangeEvent) {
	if ev.Channel != p.channel {
		return
	}
	p.render(ev.New)
	p.buttons = ButtonsFor(ev.New)
}

// render overwrites every derived widget from v
func (p *Panel) render(v int) {
	p.field.SetValue(strconv.Itoa(v))
	p.slider = v
	p.swatch = Swatch(p.channel, v)
}

// refreshButtons recomputes enablement from the model value
func (p *Panel) refreshButtons() {
	p.buttons = ButtonsFor(p.Value())
}

// SlideTo writes the slider position to the model
// The slider is configured for [0,255] so v is clamped rather than validated
func (p *Panel) SlideTo(v int) {
	v = clamp(v)
	old := p.Value()
	// Range guaranteed by clamp
	_ = p.color.Set(p.channel, v)
	// An unchanged value produces no notification; resync the handle anyway
	p.slider = p.Value()
	p.refreshButtons()
	if v == old {
		return
	}
	p.feedback.Stepped(p.channel, v)
	if v == model.MinValue || v == model.MaxValue {
		p.feedback.Boundary(p.channel, v)
	}
}

// SlideBy moves the slider relative to its current position
func (p *Panel) SlideBy(delta int) {
	p.SlideTo(p.Value() + delta)
}

// Increase steps the channel up by one, or disables the button at the ceiling
func (p *Panel) Increase() {
	v := p.Value()
	if v >= model.MaxValue {
		p.buttons.Increase = false
		p.feedback.Boundary(p.channel, v)
		return
	}
	_ = p.color.Set(p.channel, v+1)
	p.refreshButtons()
	p.feedback.Stepped(p.channel, v+1)
	if v+1 == model.MaxValue {
		p.feedback.Boundary(p.channel, v+1)
	}
}

// Decrease steps the channel down by one, or disables the button at the floor
func (p *Panel) Decrease() {
	v := p.Value()
	if v <= model.MinValue {
		p.buttons.Decrease = false
		p.feedback.Boundary(p.channel, v)
		return
	}
	_ = p.color.Set(p.channel, v-1)
	p.refreshButtons()
	p.feedback.Stepped(p.channel, v-1)
	if v-1 == model.MinValue {
		p.feedback.Boundary(p.channel, v-1)
	}
}

// SetEditable switches the text field between read-only and editable
// Leaving edit mode discards uncommitted text; the model is never touched
func (p *Panel) SetEditable(on bool) {
	if p.editable == on {
		return
	}
	p.editable = on
	if !on {
		p.field.SetValue(strconv.Itoa(p.Value()))
	}
}

// ToggleEdit flips the edit-enable toggle and returns the new state
func (p *Panel) ToggleEdit() bool {
	p.SetEditable(!p.editable)
	return p.editable
}

// CommitText validates the text field and writes it to the model
// Ignored while editing is disabled. Invalid input reverts to the model value
// Returns true when the input was accepted
func (p *Panel) CommitText() bool {
	if !p.editable {
		return false
	}
	input := p.field.Value()
	v, ok := ParseValue(input)
	if !ok {
		p.field.SetValue(strconv.Itoa(p.Value()))
		p.feedback.Rejected(p.channel, input)
		return false
	}

	_ = p.color.Set(p.channel, v)
	// Normalise the text even when the value was unchanged ("007" -> "7")
	p.render(p.Value())
	p.refreshButtons()
	p.feedback.Stepped(p.channel, v)
	return true
}

// Blur is called when the text field loses focus
func (p *Panel) Blur() {
	p.CommitText()
}

// TypeRune inserts r into the text field when editable
func (p *Panel) TypeRune(r rune) bool {
	if !p.editable {
		return false
	}
	p.field.Insert(r)
	return true
}

// Backspace removes the rune before the cursor when editable
func (p *Panel) Backspace() bool {
	if !p.editable {
		return false
	}
	return p.field.DeleteBackward()
}

// Delete removes the rune at the cursor when editable
func (p *Panel) Delete() bool {
	if !p.editable {
		return false
	}
	return p.field.DeleteForward()
}
