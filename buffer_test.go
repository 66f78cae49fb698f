package readline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineBufferInsert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      string
		cursor     int
		insert     rune
		wantText   string
		wantCursor int
	}{
		{
			name:       "insert into empty buffer",
			setup:      "",
			cursor:     0,
			insert:     'a',
			wantText:   "a",
			wantCursor: 1,
		},
		{
			name:       "insert at end",
			setup:      "ab",
			cursor:     2,
			insert:     'c',
			wantText:   "abc",
			wantCursor: 3,
		},
		{
			name:       "insert in middle",
			setup:      "ac",
			cursor:     1,
			insert:     'b',
			wantText:   "abc",
			wantCursor: 2,
		},
		{
			name:       "insert at start",
			setup:      "bc",
			cursor:     0,
			insert:     'a',
			wantText:   "abc",
			wantCursor: 1,
		},
		{
			name:       "insert wide rune",
			setup:      "ab",
			cursor:     1,
			insert:     'あ',
			wantText:   "aあb",
			wantCursor: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf lineBuffer
			buf.setText(tt.setup)
			buf.cursor = tt.cursor

			buf.insert(tt.insert)

			assert.Equal(t, tt.wantText, buf.String())
			assert.Equal(t, tt.wantCursor, buf.cursor)
		})
	}
}

func TestLineBufferDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      string
		cursor     int
		before     bool // deleteBefore vs deleteAt
		wantText   string
		wantCursor int
		wantOK     bool
	}{
		{
			name:       "backspace in middle",
			setup:      "abc",
			cursor:     2,
			before:     true,
			wantText:   "ac",
			wantCursor: 1,
			wantOK:     true,
		},
		{
			name:       "backspace at start is a no-op",
			setup:      "abc",
			cursor:     0,
			before:     true,
			wantText:   "abc",
			wantCursor: 0,
			wantOK:     false,
		},
		{
			name:       "backspace on empty buffer is a no-op",
			setup:      "",
			cursor:     0,
			before:     true,
			wantText:   "",
			wantCursor: 0,
			wantOK:     false,
		},
		{
			name:       "delete under cursor",
			setup:      "abc",
			cursor:     1,
			before:     false,
			wantText:   "ac",
			wantCursor: 1,
			wantOK:     true,
		},
		{
			name:       "delete at end is a no-op",
			setup:      "abc",
			cursor:     3,
			before:     false,
			wantText:   "abc",
			wantCursor: 3,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf lineBuffer
			buf.setText(tt.setup)
			buf.cursor = tt.cursor

			var ok bool
			if tt.before {
				ok = buf.deleteBefore()
			} else {
				ok = buf.deleteAt()
			}

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, buf.String())
			assert.Equal(t, tt.wantCursor, buf.cursor)
		})
	}
}

func TestLineBufferMoveBounds(t *testing.T) {
	t.Parallel()

	var buf lineBuffer
	buf.setText("ab")

	// Cursor starts at end; any sequence of moves keeps it in [0, len].
	assert.False(t, buf.moveRight(), "moveRight at end should be a no-op")
	assert.Equal(t, 2, buf.cursor)

	assert.True(t, buf.moveLeft())
	assert.True(t, buf.moveLeft())
	assert.Equal(t, 0, buf.cursor)

	assert.False(t, buf.moveLeft(), "moveLeft at start should be a no-op")
	assert.Equal(t, 0, buf.cursor)

	assert.True(t, buf.moveRight())
	assert.Equal(t, 1, buf.cursor)
}

func TestLineBufferLengthDeltas(t *testing.T) {
	t.Parallel()

	// Every effective operation changes the length by exactly one;
	// boundary no-ops change nothing.
	var buf lineBuffer

	before := buf.len()
	buf.insert('x')
	assert.Equal(t, before+1, buf.len())

	before = buf.len()
	require.True(t, buf.deleteBefore())
	assert.Equal(t, before-1, buf.len())

	before = buf.len()
	require.False(t, buf.deleteBefore())
	assert.Equal(t, before, buf.len())

	buf.setText("xyz")
	buf.cursor = 3
	before = buf.len()
	require.False(t, buf.deleteAt())
	assert.Equal(t, before, buf.len())
}

func TestLineBufferSetTextAndTake(t *testing.T) {
	t.Parallel()

	var buf lineBuffer
	buf.setText("cd /tmp")
	assert.Equal(t, "cd /tmp", buf.String())
	assert.Equal(t, 7, buf.cursor, "setText should place cursor at end")

	got := buf.take()
	assert.Equal(t, "cd /tmp", got)
	assert.Equal(t, "", buf.String())
	assert.Equal(t, 0, buf.cursor)
	assert.Equal(t, 0, buf.len())
}
