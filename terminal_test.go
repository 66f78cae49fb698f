package readline

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderInput(t *testing.T) {
	t.Parallel()

	in := newReaderInput(strings.NewReader("aあ"))

	r, size, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, size)

	r, size, err = in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'あ', r)
	assert.Equal(t, 3, size, "multibyte rune size should be its byte length")

	_, _, err = in.ReadRune()
	assert.ErrorIs(t, err, io.EOF)

	assert.NoError(t, in.Close())
}

func TestMockInput(t *testing.T) {
	t.Parallel()

	in := newMockInput("ab")

	r, _, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	require.NoError(t, in.Close())

	// Closed input fails even with script remaining.
	_, _, err = in.ReadRune()
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenInputPrefersCustomReader(t *testing.T) {
	t.Parallel()

	in, err := openInput(strings.NewReader("x"))
	require.NoError(t, err)

	_, ok := in.(*readerInput)
	assert.True(t, ok, "a custom reader should bypass the terminal")
}

func TestDefaultOutput(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, defaultOutput())
}

func TestDisableRawModeWithoutEnable(t *testing.T) {
	// Not parallel: raw mode state is process-wide.
	assert.NoError(t, DisableRawMode(), "disable without enable should be a no-op")
}
