package readline

// lineBuffer holds the line being edited and the cursor position within it.
//
// The buffer is a rune slice so that multi-byte characters occupy exactly
// one editing position. The cursor is an index into that slice and always
// satisfies 0 <= cursor <= len(runes); every mutation below preserves this.
// Operations at the boundaries (backspace at column zero, delete at end of
// line, moves past either edge) are no-ops rather than errors.
//
// A lineBuffer is owned by a single Run call and is never shared between
// goroutines, so it carries no locking of its own.
type lineBuffer struct {
	runes  []rune
	cursor int
}

// insert places r at the cursor and advances the cursor past it.
func (b *lineBuffer) insert(r rune) {
	b.runes = append(b.runes[:b.cursor], append([]rune{r}, b.runes[b.cursor:]...)...)
	b.cursor++
}

// deleteBefore removes the rune immediately before the cursor (Backspace).
// It reports whether the buffer changed.
func (b *lineBuffer) deleteBefore() bool {
	if b.cursor == 0 {
		return false
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
	return true
}

// deleteAt removes the rune under the cursor (Delete).
// It reports whether the buffer changed.
func (b *lineBuffer) deleteAt() bool {
	if b.cursor >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
	return true
}

// moveLeft moves the cursor one position toward the start of the line.
// It reports whether the cursor moved.
func (b *lineBuffer) moveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// moveRight moves the cursor one position toward the end of the line.
// It reports whether the cursor moved.
func (b *lineBuffer) moveRight() bool {
	if b.cursor >= len(b.runes) {
		return false
	}
	b.cursor++
	return true
}

// setText replaces the whole buffer with text and puts the cursor at the
// end. Used when a history entry is swapped in.
func (b *lineBuffer) setText(text string) {
	b.runes = []rune(text)
	b.cursor = len(b.runes)
}

// take returns the buffer contents and resets the buffer to empty.
func (b *lineBuffer) take() string {
	text := string(b.runes)
	b.runes = nil
	b.cursor = 0
	return text
}

func (b *lineBuffer) String() string {
	return string(b.runes)
}

func (b *lineBuffer) len() int {
	return len(b.runes)
}
