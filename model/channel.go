package model

import (
	"fmt"
	"strings"
)

// Channel identifies one of the three colour components
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

// Channel value bounds
const (
	MinValue = 0
	MaxValue = 255
)

// Channels lists every channel in display order
var Channels = [3]Channel{Red, Green, Blue}

// String returns the display name of the channel
func (c Channel) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// Valid reports whether c names a known channel
func (c Channel) Valid() bool {
	return c <= Blue
}

// ParseChannel accepts full names or single-letter shorthands, case-insensitive
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

// InRange reports whether v is a legal channel value
func InRange(v int) bool {
	return v >= MinValue && v <= MaxValue
}
