package readline

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// renderer reconciles the visible terminal line with the current prompt and
// buffer state.
//
// Each render clears the current line, writes the (optionally colored)
// prompt followed by the buffer text, and then addresses the cursor column
// directly with an ANSI escape. Columns are measured in display cells via
// go-runewidth so that wide characters (CJK, emoji) position the cursor
// correctly. No full-screen clears are issued and no terminal width is
// assumed.
type renderer struct {
	output      io.Writer
	colorScheme *ColorScheme
}

// newRenderer creates a renderer writing to output with the given colors.
func newRenderer(output io.Writer, colorScheme *ColorScheme) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
	}
}

// render redraws the line as prompt + input and places the terminal cursor
// at the display column matching the buffer cursor. cursor is a rune index
// into input.
func (r *renderer) render(prompt, input string, cursor int) error {
	// Clear the line and return to column one.
	if _, err := fmt.Fprint(r.output, "\x1b[2K\r"); err != nil {
		return err
	}

	if err := r.writeColored(r.colorScheme.Prefix, prompt); err != nil {
		return err
	}
	if err := r.writeColored(r.colorScheme.Input, input); err != nil {
		return err
	}

	col := runewidth.StringWidth(prompt) + cursorColumn(input, cursor) + 1
	if _, err := fmt.Fprintf(r.output, "\x1b[%dG", col); err != nil {
		return err
	}
	return nil
}

// writeColored writes text wrapped in the color's ANSI codes, or plain text
// when the color is unset.
func (r *renderer) writeColored(c Color, text string) error {
	ansi := c.ToANSI()
	if ansi == "" {
		_, err := fmt.Fprint(r.output, text)
		return err
	}
	if _, err := fmt.Fprint(r.output, ansi, text, Reset()); err != nil {
		return err
	}
	return nil
}

// cursorColumn returns the display width of input up to the rune at index
// cursor.
func cursorColumn(input string, cursor int) int {
	runes := []rune(input)
	if cursor > len(runes) {
		cursor = len(runes)
	}
	if cursor < 0 {
		cursor = 0
	}
	return runewidth.StringWidth(string(runes[:cursor]))
}
