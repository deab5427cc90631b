package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coloradjuster/icon"
	"github.com/lixenwraith/coloradjuster/model"
)

// recordSounds counts feedback sounds instead of playing them
type recordSounds struct {
	click, reject, boundary int
	on                      bool
}

func (r *recordSounds) PlayClick()    { r.click++ }
func (r *recordSounds) PlayReject()   { r.reject++ }
func (r *recordSounds) PlayBoundary() { r.boundary++ }
func (r *recordSounds) ToggleEnabled() bool {
	r.on = !r.on
	return r.on
}

func newTestFrame(t *testing.T, red, green, blue int) (*Frame, *model.Color, *recordSounds) {
	t.Helper()
	c, err := model.New(red, green, blue)
	if err != nil {
		t.Fatalf("model.New: %v", err)
	}
	snd := &recordSounds{on: true}
	f := NewFrame(c, icon.LoadSet(t.TempDir()), snd)
	f.Resize(80, 24)
	t.Cleanup(f.Close)
	return f, c, snd
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(x, y int) []tcell.Event {
	return []tcell.Event{
		tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone),
	}
}

func send(f *Frame, evs ...tcell.Event) {
	for _, ev := range evs {
		f.HandleEvent(ev)
	}
}

func typeString(f *Frame, s string) {
	for _, r := range s {
		f.HandleEvent(runeKey(r))
	}
}

func rowText(s tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := s.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

// TestFrameDrawInitial verifies swatches, fields, button state and preview on first paint
func TestFrameDrawInitial(t *testing.T) {
	f, _, _ := newTestFrame(t, 255, 0, 128)
	screen := newTestScreen(t)

	f.Draw(screen)
	screen.Show()
	l := f.Layout()

	// Red swatch is pure red
	red := l.Rows[0].Swatch
	_, _, style, _ := screen.GetContent(red.X+1, red.Y)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red swatch background, got %v", bg)
	}

	// Blue swatch shows only the blue channel
	blue := l.Rows[2].Swatch
	_, _, style, _ = screen.GetContent(blue.X+1, blue.Y)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(0, 0, 128) {
		t.Errorf("Expected blue swatch background, got %v", bg)
	}

	// Fields are right aligned
	text := l.Rows[0].Text
	if got := string([]rune(rowText(screen, text.Y, 80))[text.X : text.X+text.W]); !strings.Contains(got, "255") {
		t.Errorf("Expected red field to show 255, got %q", got)
	}

	// Ceiling and floor disable the matching buttons
	inc := l.Rows[0].Increase
	mainc, _, style, _ := screen.GetContent(inc.X+1, inc.Y)
	if mainc != icon.IncreaseGlyph {
		t.Errorf("Expected fallback increase glyph, got %c", mainc)
	}
	if _, bg, _ := style.Decompose(); bg != buttonOffBg {
		t.Errorf("Red increase should be drawn disabled, got bg %v", bg)
	}
	dec := l.Rows[1].Decrease
	_, _, style, _ = screen.GetContent(dec.X+1, dec.Y)
	if _, bg, _ := style.Decompose(); bg != buttonOffBg {
		t.Errorf("Green decrease should be drawn disabled, got bg %v", bg)
	}
	dec = l.Rows[0].Decrease
	_, _, style, _ = screen.GetContent(dec.X+1, dec.Y)
	if _, bg, _ := style.Decompose(); bg == buttonOffBg {
		t.Error("Red decrease should be enabled")
	}

	preview := rowText(screen, l.Preview.Y+l.Preview.H/2, 80)
	if !strings.Contains(preview, "#ff0080") || !strings.Contains(preview, "rgb(255, 0, 128)") {
		t.Errorf("Preview missing colour label: %q", preview)
	}

	if title := rowText(screen, 0, 80); !strings.Contains(title, "Color Adjuster") {
		t.Errorf("Title missing: %q", title)
	}
}

func TestFrameKeyboardSlider(t *testing.T) {
	f, c, snd := newTestFrame(t, 0, 0, 0)

	if got := f.Focus(); got != (Focus{Panel: 0, Widget: WidgetSlider}) {
		t.Fatalf("Expected initial focus on red slider, got %+v", got)
	}

	send(f, key(tcell.KeyRight))
	if c.Red() != 1 {
		t.Errorf("Right should step to 1, got %d", c.Red())
	}
	if f.Status() != "Red set to 1" {
		t.Errorf("Unexpected status %q", f.Status())
	}

	send(f, key(tcell.KeyPgUp))
	if c.Red() != 1+sliderPageStep {
		t.Errorf("PgUp should add %d, got %d", sliderPageStep, c.Red())
	}

	send(f, key(tcell.KeyEnd))
	if c.Red() != model.MaxValue {
		t.Errorf("End should jump to max, got %d", c.Red())
	}
	if snd.boundary != 1 {
		t.Errorf("Expected one boundary sound, got %d", snd.boundary)
	}

	// Already at max: no change and no feedback
	clicks := snd.click
	send(f, key(tcell.KeyRight))
	if c.Red() != model.MaxValue || snd.click != clicks {
		t.Errorf("Sliding past max should be inert, value %d clicks %d", c.Red(), snd.click)
	}
	if f.Panel(model.Red).Buttons().Increase {
		t.Error("Increase should be disabled at max")
	}

	send(f, key(tcell.KeyHome))
	if c.Red() != model.MinValue {
		t.Errorf("Home should jump to min, got %d", c.Red())
	}
	if f.Panel(model.Red).Buttons().Decrease {
		t.Error("Decrease should be disabled at min")
	}
}

func TestFrameFocusRing(t *testing.T) {
	f, _, _ := newTestFrame(t, 0, 0, 0)

	steps := []struct {
		ev   *tcell.EventKey
		want Focus
	}{
		{key(tcell.KeyTab), Focus{0, WidgetIncrease}},
		{key(tcell.KeyTab), Focus{1, WidgetText}},
		{key(tcell.KeyDown), Focus{2, WidgetText}},
		{key(tcell.KeyDown), Focus{0, WidgetText}},
		{key(tcell.KeyBacktab), Focus{2, WidgetIncrease}},
		{key(tcell.KeyUp), Focus{1, WidgetIncrease}},
		{runeKey('b'), Focus{2, WidgetSlider}},
		{runeKey('g'), Focus{1, WidgetSlider}},
	}
	for i, s := range steps {
		f.HandleEvent(s.ev)
		if got := f.Focus(); got != s.want {
			t.Fatalf("Step %d: expected %+v, got %+v", i, s.want, got)
		}
	}
}

func TestFrameStepKeys(t *testing.T) {
	f, c, _ := newTestFrame(t, 0, 10, 0)
	f.SetFocus(Focus{Panel: 1, Widget: WidgetEdit})

	send(f, runeKey('+'), runeKey('='), runeKey('-'))
	if c.Green() != 11 {
		t.Errorf("Expected 11 after +,=,-, got %d", c.Green())
	}

	f.SetFocus(Focus{Panel: 1, Widget: WidgetIncrease})
	send(f, key(tcell.KeyEnter), runeKey(' '))
	if c.Green() != 13 {
		t.Errorf("Enter and Space should press increase, got %d", c.Green())
	}
}

// TestFrameDisabledButtonIgnored verifies a disabled button does nothing when pressed
func TestFrameDisabledButtonIgnored(t *testing.T) {
	f, c, snd := newTestFrame(t, 255, 0, 0)

	f.SetFocus(Focus{Panel: 0, Widget: WidgetIncrease})
	send(f, key(tcell.KeyEnter), runeKey('+'))
	if c.Red() != 255 {
		t.Errorf("Expected 255, got %d", c.Red())
	}
	if snd.click != 0 || snd.boundary != 0 {
		t.Errorf("Disabled button should be silent, got %+v", snd)
	}

	f.SetFocus(Focus{Panel: 1, Widget: WidgetDecrease})
	send(f, runeKey(' '))
	if c.Green() != 0 {
		t.Errorf("Expected 0, got %d", c.Green())
	}
}

func TestFrameTextEditing(t *testing.T) {
	f, c, snd := newTestFrame(t, 0, 0, 0)
	f.SetFocus(Focus{Panel: 0, Widget: WidgetText})

	// Typing is ignored until editing is enabled
	send(f, runeKey('7'))
	if f.Panel(model.Red).Text() != "0" {
		t.Fatalf("Read-only field accepted input: %q", f.Panel(model.Red).Text())
	}

	send(f, runeKey('e'))
	if !f.Panel(model.Red).Editable() {
		t.Fatal("e should enable editing")
	}

	// Invalid input reverts and warns
	send(f, key(tcell.KeyBackspace2))
	typeString(f, "300")
	send(f, key(tcell.KeyEnter))
	if c.Red() != 0 || f.Panel(model.Red).Text() != "0" {
		t.Errorf("Expected revert to 0, got model %d text %q", c.Red(), f.Panel(model.Red).Text())
	}
	if snd.reject != 1 || !f.warn {
		t.Errorf("Expected one reject with warning, got %d warn=%v", snd.reject, f.warn)
	}
	if !strings.Contains(f.Status(), `"300"`) {
		t.Errorf("Status should quote the rejected input: %q", f.Status())
	}

	// Letters, including the quit key, are typed while editing
	send(f, key(tcell.KeyBackspace))
	if quit := f.HandleEvent(runeKey('q')); quit {
		t.Fatal("q should be typed into the field, not quit")
	}
	send(f, key(tcell.KeyBackspace))

	// Leaving the field commits it
	typeString(f, "128")
	send(f, key(tcell.KeyTab))
	if c.Red() != 128 {
		t.Errorf("Tab away should commit 128, got %d", c.Red())
	}
	if f.Focus() != (Focus{0, WidgetEdit}) {
		t.Errorf("Expected focus on edit toggle, got %+v", f.Focus())
	}

	// Toggle off from the checkbox
	send(f, key(tcell.KeyEnter))
	if f.Panel(model.Red).Editable() {
		t.Error("Enter on the edit toggle should disable editing")
	}
}

func TestFrameCursorKeys(t *testing.T) {
	f, c, _ := newTestFrame(t, 0, 0, 0)
	f.SetFocus(Focus{Panel: 2, Widget: WidgetText})
	f.Panel(model.Blue).SetEditable(true)

	// "0" -> "10" by inserting before the zero
	send(f, key(tcell.KeyHome), runeKey('1'), key(tcell.KeyEnd), runeKey('5'))
	send(f, key(tcell.KeyLeft), key(tcell.KeyDelete), key(tcell.KeyEnter))
	if c.Blue() != 10 {
		t.Errorf("Expected 10, got %d", c.Blue())
	}
}

func TestFrameQuitKeys(t *testing.T) {
	f, _, _ := newTestFrame(t, 0, 0, 0)
	for _, ev := range []*tcell.EventKey{runeKey('q'), key(tcell.KeyEscape), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)} {
		if !f.HandleEvent(ev) {
			t.Errorf("Expected %v to quit", ev.Name())
		}
	}
	if f.HandleEvent(runeKey('x')) {
		t.Error("x should not quit")
	}
}

func TestFrameSoundToggle(t *testing.T) {
	f, _, snd := newTestFrame(t, 0, 0, 0)
	send(f, runeKey('m'))
	if snd.on || f.Status() != "Sound off" {
		t.Errorf("Expected sound off, got on=%v status %q", snd.on, f.Status())
	}
	send(f, runeKey('m'))
	if !snd.on || f.Status() != "Sound on" {
		t.Errorf("Expected sound on, got on=%v status %q", snd.on, f.Status())
	}
}

func TestFrameMouseButtons(t *testing.T) {
	f, c, _ := newTestFrame(t, 0, 0, 0)
	l := f.Layout()

	inc := l.Rows[1].Increase
	send(f, click(inc.X, inc.Y)...)
	send(f, click(inc.X+1, inc.Y)...)
	if c.Green() != 2 {
		t.Errorf("Two clicks should give 2, got %d", c.Green())
	}
	if f.Focus() != (Focus{1, WidgetIncrease}) {
		t.Errorf("Click should move focus, got %+v", f.Focus())
	}

	// A held button does not repeat
	held := tcell.NewEventMouse(inc.X, inc.Y, tcell.Button1, tcell.ModNone)
	send(f, held, held, held)
	if c.Green() != 3 {
		t.Errorf("Held button should press once, got %d", c.Green())
	}
	send(f, tcell.NewEventMouse(inc.X, inc.Y, tcell.ButtonNone, tcell.ModNone))

	// Disabled button ignores clicks
	dec := l.Rows[0].Decrease
	send(f, click(dec.X+1, dec.Y)...)
	if c.Red() != 0 {
		t.Errorf("Disabled decrease should ignore click, got %d", c.Red())
	}

	edit := l.Rows[2].Edit
	send(f, click(edit.X, edit.Y)...)
	if !f.Panel(model.Blue).Editable() {
		t.Error("Clicking the toggle should enable editing")
	}
}

func TestFrameMouseSliderDrag(t *testing.T) {
	f, c, _ := newTestFrame(t, 0, 0, 0)
	track := f.Layout().Rows[2].Slider

	send(f, tcell.NewEventMouse(track.X+track.W-1, track.Y, tcell.Button1, tcell.ModNone))
	if c.Blue() != model.MaxValue {
		t.Errorf("Click on track end should give max, got %d", c.Blue())
	}

	// Dragging off the row keeps tracking the slider
	send(f, tcell.NewEventMouse(track.X, track.Y+5, tcell.Button1, tcell.ModNone))
	if c.Blue() != model.MinValue {
		t.Errorf("Drag to track start should give min, got %d", c.Blue())
	}

	mid := track.X + track.W/2
	send(f, tcell.NewEventMouse(mid, track.Y, tcell.Button1, tcell.ModNone))
	want := SliderValue(track, mid)
	if c.Blue() != want {
		t.Errorf("Expected %d at mid track, got %d", want, c.Blue())
	}

	// Release ends the drag
	send(f, tcell.NewEventMouse(mid, track.Y, tcell.ButtonNone, tcell.ModNone))
	send(f, tcell.NewEventMouse(track.X, track.Y, tcell.ButtonNone, tcell.ModNone))
	if c.Blue() != want {
		t.Errorf("Motion after release should not slide, got %d", c.Blue())
	}
	if c.Red() != 0 || c.Green() != 0 {
		t.Error("Other channels changed during drag")
	}
}

// TestFrameClickAwayCommits verifies clicking outside the field acts as focus loss
func TestFrameClickAwayCommits(t *testing.T) {
	f, c, _ := newTestFrame(t, 0, 0, 0)
	f.SetFocus(Focus{Panel: 1, Widget: WidgetText})
	f.Panel(model.Green).SetEditable(true)

	send(f, key(tcell.KeyBackspace2))
	typeString(f, "64")
	send(f, click(0, 0)...)
	if c.Green() != 64 {
		t.Errorf("Click away should commit 64, got %d", c.Green())
	}
}

func TestFrameIconReload(t *testing.T) {
	f, _, _ := newTestFrame(t, 0, 0, 0)
	before := f.Status()

	send(f, tcell.NewEventInterrupt(IconChanged{Path: "/nowhere/else.png"}))
	if f.Status() != before {
		t.Errorf("Unknown path should be ignored, status %q", f.Status())
	}

	path := f.icons.Increase.Path
	send(f, tcell.NewEventInterrupt(IconChanged{Path: path}))
	if f.Status() != "Reloaded "+path {
		t.Errorf("Expected reload status, got %q", f.Status())
	}
	if !f.icons.Increase.Fallback {
		t.Error("Missing file should keep the fallback glyph")
	}
}

// TestFrameExternalChange verifies a model change made outside the frame is drawn
func TestFrameExternalChange(t *testing.T) {
	f, c, _ := newTestFrame(t, 0, 0, 0)
	screen := newTestScreen(t)

	if err := c.SetRGB(10, 20, 30); err != nil {
		t.Fatal(err)
	}
	f.Draw(screen)
	screen.Show()

	preview := rowText(screen, f.Layout().Preview.Y+f.Layout().Preview.H/2, 80)
	if !strings.Contains(preview, "rgb(10, 20, 30)") {
		t.Errorf("Preview not updated: %q", preview)
	}
	for i, want := range []string{"10", "20", "30"} {
		if got := f.Panel(model.Channels[i]).Text(); got != want {
			t.Errorf("%s field: expected %s, got %s", model.Channels[i], want, got)
		}
	}
}
