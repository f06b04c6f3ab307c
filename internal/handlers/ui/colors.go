package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	ErrorColor = color.New(color.FgRed).SprintFunc()
)

// Histogram Colors
var (
	BarColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// DisableColor turns colour off for every SprintFunc above.
func DisableColor() {
	color.NoColor = true
}

// ColorEnabled reports whether output will be coloured.
func ColorEnabled() bool {
	return !color.NoColor
}
