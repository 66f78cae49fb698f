package readline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// inputSource abstracts where key strokes come from. The session loop
// depends only on this capability, never on a concrete source, so a real
// TTY, a pipe, an in-memory script, or a network stream all work.
//
// Implementations:
//   - realTerminal: go-tty backed input for interactive use
//   - readerInput: any io.Reader (pipes, custom sources)
//   - mockInput: scripted input for tests
type inputSource interface {
	ReadRune() (rune, int, error) // Read a single Unicode character
	Close() error                 // Release the source; further reads fail
}

// realTerminal reads key strokes from the controlling terminal via go-tty.
//
// go-tty gives cross-platform character-at-a-time input without relying on
// stdin being the terminal. The 'closed' flag prevents a double-close
// panic on Windows.
type realTerminal struct {
	tty    *tty.TTY
	closed bool
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{tty: t}, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}

// readerInput adapts an arbitrary io.Reader to the inputSource interface.
// Used for the custom-reader option and for non-terminal stdin (pipes).
type readerInput struct {
	br *bufio.Reader
}

func newReaderInput(r io.Reader) *readerInput {
	return &readerInput{br: bufio.NewReader(r)}
}

func (ri *readerInput) ReadRune() (rune, int, error) {
	return ri.br.ReadRune()
}

func (ri *readerInput) Close() error {
	return nil
}

// stdinIsTerminal reports whether standard input is attached to a terminal.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// defaultOutput returns the writer renders go to: stdout, wrapped by
// go-colorable on Windows so ANSI escape sequences are interpreted.
func defaultOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

// rawState holds the saved terminal state while raw mode is active. Raw
// mode is a process-wide resource: one saved state, guarded by one mutex.
var rawState struct {
	mu    sync.Mutex
	saved *term.State
}

// EnableRawMode switches standard input into raw (character-at-a-time,
// no-echo) mode. The caller owns this resource: enable it before the first
// Run call and pair it with DisableRawMode on every exit path, including
// cancellation. Calling it while raw mode is already active is a no-op.
func EnableRawMode() error {
	rawState.mu.Lock()
	defer rawState.mu.Unlock()

	if rawState.saved != nil {
		return nil
	}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	rawState.saved = state
	return nil
}

// DisableRawMode restores the terminal state saved by EnableRawMode.
// Calling it when raw mode is not active is a no-op.
func DisableRawMode() error {
	rawState.mu.Lock()
	defer rawState.mu.Unlock()

	if rawState.saved == nil {
		return nil
	}
	err := term.Restore(int(os.Stdin.Fd()), rawState.saved)
	rawState.saved = nil
	if err != nil {
		return fmt.Errorf("failed to disable raw mode: %w", err)
	}
	return nil
}
