// Package model holds the authoritative colour state and its observer registry.
//
// A Color is not safe for concurrent use. All reads, writes and notifications
// happen on the UI dispatch goroutine; producers on other goroutines must
// marshal their work onto it.
package model

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrOutOfRange is returned for channel values outside [MinValue, MaxValue]
var ErrOutOfRange = errors.New("channel value out of range")

// ErrUnknownChannel is returned for channel identifiers outside Red..Blue
var ErrUnknownChannel = errors.New("unknown channel")

// Color is a mutable RGB colour that notifies observers on change
type Color struct {
	values    [3]int
	observers []registration
	nextID    uint64
}

// New creates a colour with the given initial channel values
func New(r, g, b int) (*Color, error) {
	for i, v := range [3]int{r, g, b} {
		if !InRange(v) {
			return nil, fmt.Errorf("%s=%d: %w", Channels[i], v, ErrOutOfRange)
		}
	}
	return &Color{values: [3]int{r, g, b}}, nil
}

// Get returns the current value of a channel, 0 for unknown channels
func (c *Color) Get(ch Channel) int {
	if !ch.Valid() {
		return 0
	}
	return c.values[ch]
}

// Set stores v for channel ch
// Out-of-range values are rejected without touching state
// Observers are notified only when the stored value actually changes
func (c *Color) Set(ch Channel, v int) error {
	if !ch.Valid() {
		return fmt.Errorf("%d: %w", uint8(ch), ErrUnknownChannel)
	}
	if !InRange(v) {
		return fmt.Errorf("%s=%d: %w", ch, v, ErrOutOfRange)
	}

	old := c.values[ch]
	if old == v {
		return nil
	}
	c.values[ch] = v
	c.dispatch(ChangeEvent{Channel: ch, Old: old, New: v})
	return nil
}

// SetRGB validates all three values before writing any of them
func (c *Color) SetRGB(r, g, b int) error {
	vals := [3]int{r, g, b}
	for i, v := range vals {
		if !InRange(v) {
			return fmt.Errorf("%s=%d: %w", Channels[i], v, ErrOutOfRange)
		}
	}
	for i, v := range vals {
		// Range already checked, Set cannot fail here
		_ = c.Set(Channels[i], v)
	}
	return nil
}

// Red returns the red channel
func (c *Color) Red() int { return c.values[Red] }

// Green returns the green channel
func (c *Color) Green() int { return c.values[Green] }

// Blue returns the blue channel
func (c *Color) Blue() int { return c.values[Blue] }

// SetRed sets the red channel
func (c *Color) SetRed(v int) error { return c.Set(Red, v) }

// SetGreen sets the green channel
func (c *Color) SetGreen(v int) error { return c.Set(Green, v) }

// SetBlue sets the blue channel
func (c *Color) SetBlue(v int) error { return c.Set(Blue, v) }

// RGB returns all three channels
func (c *Color) RGB() (r, g, b int) {
	return c.values[Red], c.values[Green], c.values[Blue]
}

// RGBA returns the colour as an opaque color.RGBA
func (c *Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.values[Red]),
		G: uint8(c.values[Green]),
		B: uint8(c.values[Blue]),
		A: 0xff,
	}
}

// Colorful converts to a go-colorful colour for derived computations
func (c *Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.values[Red]) / MaxValue,
		G: float64(c.values[Green]) / MaxValue,
		B: float64(c.values[Blue]) / MaxValue,
	}
}

// Hex returns the colour as #rrggbb
func (c *Color) Hex() string {
	return c.Colorful().Hex()
}

// Subscribe registers an observer; observers are notified in registration order
func (c *Color) Subscribe(o Observer) Subscription {
	c.nextID++
	c.observers = append(c.observers, registration{id: c.nextID, observer: o})
	return Subscription{id: c.nextID, color: c}
}

// Unsubscribe removes a registration, no-op if already removed
// Safe to call from inside Notify
func (c *Color) Unsubscribe(s Subscription) {
	if s.color != c {
		return
	}
	i, ok := c.index(s.id)
	if !ok {
		return
	}
	// Copy instead of in-place delete so an in-flight dispatch keeps its snapshot intact
	next := make([]registration, 0, len(c.observers)-1)
	next = append(next, c.observers[:i]...)
	next = append(next, c.observers[i+1:]...)
	c.observers = next
}

// ObserverCount returns the number of registered observers
func (c *Color) ObserverCount() int {
	return len(c.observers)
}

func (c *Color) index(id uint64) (int, bool) {
	for i, r := range c.observers {
		if r.id == id {
			return i, true
		}
	}
	return -1, false
}

// dispatch notifies a snapshot of the registry
// Observers removed mid-dispatch are skipped; observers added mid-dispatch wait for the next event
func (c *Color) dispatch(ev ChangeEvent) {
	snapshot := c.observers
	for _, r := range snapshot {
		if _, ok := c.index(r.id); !ok {
			continue
		}
		r.observer.Notify(ev)
	}
}
