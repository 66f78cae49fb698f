package readline

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeyEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantKind keyKind
		wantRune rune
	}{
		{
			name:     "printable ascii",
			input:    "a",
			wantKind: keyRune,
			wantRune: 'a',
		},
		{
			name:     "printable multibyte",
			input:    "あ",
			wantKind: keyRune,
			wantRune: 'あ',
		},
		{
			name:     "enter carriage return",
			input:    "\r",
			wantKind: keyEnter,
		},
		{
			name:     "enter line feed",
			input:    "\n",
			wantKind: keyEnter,
		},
		{
			name:     "ctrl+c",
			input:    "\x03",
			wantKind: keyInterrupt,
		},
		{
			name:     "ctrl+d",
			input:    "\x04",
			wantKind: keyEOF,
		},
		{
			name:     "backspace del",
			input:    "\x7f",
			wantKind: keyBackspace,
		},
		{
			name:     "backspace bs",
			input:    "\b",
			wantKind: keyBackspace,
		},
		{
			name:     "up arrow",
			input:    "\x1b[A",
			wantKind: keyUp,
		},
		{
			name:     "down arrow",
			input:    "\x1b[B",
			wantKind: keyDown,
		},
		{
			name:     "right arrow",
			input:    "\x1b[C",
			wantKind: keyRight,
		},
		{
			name:     "left arrow",
			input:    "\x1b[D",
			wantKind: keyLeft,
		},
		{
			name:     "delete",
			input:    "\x1b[3~",
			wantKind: keyDelete,
		},
		{
			name:     "home is unsupported",
			input:    "\x1b[H",
			wantKind: keyUnknown,
		},
		{
			name:     "page up is unsupported",
			input:    "\x1b[5~",
			wantKind: keyUnknown,
		},
		{
			name:     "unbound control code",
			input:    "\x0c",
			wantKind: keyUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ev, err := readKeyEvent(newMockInput(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, ev.kind)
			if tt.wantKind == keyRune {
				assert.Equal(t, tt.wantRune, ev.r)
			}
		})
	}
}

func TestReadKeyEventStreamEnd(t *testing.T) {
	t.Parallel()

	_, err := readKeyEvent(newMockInput(""))
	assert.ErrorIs(t, err, io.EOF)

	// A truncated escape sequence surfaces the stream error too.
	_, err = readKeyEvent(newMockInput("\x1b["))
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadKeyEventSequencePerEvent(t *testing.T) {
	t.Parallel()

	// Consecutive events decode independently from one stream.
	src := newMockInput("ab\x1b[D\x7f\r")

	wants := []keyKind{keyRune, keyRune, keyLeft, keyBackspace, keyEnter}
	for _, want := range wants {
		ev, err := readKeyEvent(src)
		require.NoError(t, err)
		assert.Equal(t, want, ev.kind)
	}
}
