package ui

import "github.com/gdamore/tcell/v2"

// Palette
var (
	bgColor      = tcell.NewRGBColor(20, 20, 30)
	fgColor      = tcell.NewRGBColor(200, 200, 200)
	dimColor     = tcell.NewRGBColor(100, 100, 100)
	accentColor  = tcell.NewRGBColor(100, 200, 220)
	warnColor    = tcell.NewRGBColor(255, 180, 100)
	headerBg     = tcell.NewRGBColor(40, 50, 70)
	controlsBg   = tcell.NewRGBColor(14, 14, 21) // Darker strip behind buttons and slider
	fieldBg      = tcell.NewRGBColor(50, 50, 60)
	fieldRoBg    = tcell.NewRGBColor(32, 32, 42)
	buttonBg     = tcell.NewRGBColor(50, 50, 60)
	buttonOffBg  = tcell.NewRGBColor(30, 30, 36)
	focusFg      = tcell.NewRGBColor(255, 255, 255)
	focusBg      = tcell.NewRGBColor(60, 80, 120)
	trackColor   = tcell.NewRGBColor(70, 70, 80)
	swatchBorder = tcell.NewRGBColor(80, 100, 140)
)

var (
	baseStyle   = tcell.StyleDefault.Foreground(fgColor).Background(bgColor)
	dimStyle    = baseStyle.Foreground(dimColor)
	headerStyle = tcell.StyleDefault.Foreground(focusFg).Background(headerBg).Bold(true)
	statusStyle = baseStyle.Foreground(accentColor)
	warnStyle   = baseStyle.Foreground(warnColor)
)
