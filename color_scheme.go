package readline

import "fmt"

// ColorScheme defines the colors used when rendering the prompt line.
type ColorScheme struct {
	Name   string `json:"name"`
	Prefix Color  `json:"prefix"`
	Input  Color  `json:"input"`
}

// Color represents an RGB color with optional bold formatting. The zero
// value means "no coloring": text is written as-is with no escape codes.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
	Set  bool  `json:"set"` // distinguishes black from "unset"
}

// RGB creates a set Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// BoldRGB creates a set, bold Color from its components.
func BoldRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Bold: true, Set: true}
}

// ToANSI converts the color to an ANSI 24-bit escape sequence. Returns the
// empty string for an unset color.
func (c Color) ToANSI() string {
	if !c.Set {
		return ""
	}
	if c.Bold {
		return fmt.Sprintf("\x1b[1;38;2;%d;%d;%dm", c.R, c.G, c.B)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// ThemeDefault renders the prompt without any coloring.
var ThemeDefault = &ColorScheme{
	Name: "default",
}

// ThemeColorful uses a bold green prompt with white input text.
var ThemeColorful = &ColorScheme{
	Name:   "colorful",
	Prefix: BoldRGB(0, 255, 0),
	Input:  RGB(255, 255, 255),
}
