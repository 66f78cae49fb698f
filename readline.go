package readline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// Common errors
var (
	// ErrEOF is returned when the input stream ends or the user presses
	// Ctrl+D on an empty line
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
)

// Readline reads edited lines from a terminal or any byte stream.
//
// A Readline instance may be shared across goroutines: the prompt can be
// read and replaced at any time, including while a Run call is in flight,
// and the history store is safe for concurrent use. Only one edit loop is
// active at a time; concurrent Run calls serialize on an internal mutex.
//
// Raw terminal mode is a caller-owned, process-wide resource. Enable it
// with EnableRawMode before the first Run call and guarantee DisableRawMode
// on every exit path; Run assumes raw mode but never toggles it.
type Readline struct {
	promptMu sync.RWMutex
	prompt   string

	sessionMu sync.Mutex // serializes Run; held for the whole edit loop
	input     inputSource
	output    io.Writer
	renderer  *renderer
	history   *History
}

// Config holds the configuration for a Readline instance.
type Config struct {
	Prompt      string       // Prompt string displayed before the line
	Reader      io.Reader    // Custom input source (nil = terminal/stdin)
	Output      io.Writer    // Render target (nil = stdout)
	HistoryFile string       // History persistence path (empty = memory only)
	HistorySize int          // Max in-memory history entries (0 = 1000)
	History     *History     // Shared history store (overrides file/size)
	ColorScheme *ColorScheme // Prompt colors (nil = no coloring)
}

// Option represents a configuration option for Readline.
type Option func(*Config)

// WithReader sets a custom input source. Any io.Reader works: a pipe, an
// in-memory buffer, a network stream. When unset, input comes from the
// controlling terminal, or from standard input when stdin is not a
// terminal.
func WithReader(r io.Reader) Option {
	return func(c *Config) {
		c.Reader = r
	}
}

// WithOutput sets the writer renders go to. Mainly useful for tests and
// for redirecting the edit line to stderr.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithHistoryFile enables history persistence at the given path. The file
// is a plain newline-delimited list of entries, read in full at
// construction and appended to on each successful submission. Supports
// ~/ expansion and relative paths.
func WithHistoryFile(path string) Option {
	return func(c *Config) {
		c.HistoryFile = path
	}
}

// WithHistorySize caps the number of history entries kept in memory.
func WithHistorySize(n int) Option {
	return func(c *Config) {
		c.HistorySize = n
	}
}

// WithHistory shares an existing history store with this instance. Useful
// when several prompts should see each other's submissions. Overrides
// WithHistoryFile and WithHistorySize.
func WithHistory(h *History) Option {
	return func(c *Config) {
		c.History = h
	}
}

// WithColorScheme sets the colors used when rendering the prompt line.
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// New creates a Readline with the given prompt and options.
//
// Example:
//
//	rl, err := readline.New("$ ", readline.WithHistoryFile("~/.myapp_history"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer rl.Close()
//
//	if err := readline.EnableRawMode(); err != nil {
//		log.Fatal(err)
//	}
//	defer readline.DisableRawMode()
//
//	line, err := rl.Run()
func New(prompt string, options ...Option) (*Readline, error) {
	config := Config{
		Prompt: prompt,
	}
	for _, option := range options {
		option(&config)
	}
	return newFromConfig(config)
}

func newFromConfig(config Config) (*Readline, error) {
	input, err := openInput(config.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	output := config.Output
	if output == nil {
		output = defaultOutput()
	}

	colorScheme := config.ColorScheme
	if colorScheme == nil {
		colorScheme = ThemeDefault
	}

	history := config.History
	if history == nil {
		history, err = NewHistory(config.HistoryFile, config.HistorySize)
		if err != nil {
			input.Close()
			return nil, fmt.Errorf("failed to load history: %w", err)
		}
	}

	return &Readline{
		prompt:   config.Prompt,
		input:    input,
		output:   output,
		renderer: newRenderer(output, colorScheme),
		history:  history,
	}, nil
}

// openInput picks the input source: a custom reader when configured, the
// controlling terminal when stdin is one, and plain stdin otherwise so
// piped input still works.
func openInput(reader io.Reader) (inputSource, error) {
	if reader != nil {
		return newReaderInput(reader), nil
	}
	if stdinIsTerminal() {
		return newRealTerminal()
	}
	return newReaderInput(os.Stdin), nil
}

// Run reads one edited line and returns it.
//
// It blocks until the user presses Enter (the line is returned and, when
// non-empty, recorded in history) or until the session ends another way:
// Ctrl+C returns ErrInterrupted, end of input returns ErrEOF, and any input
// or render failure is returned wrapped. The Readline stays valid after
// every outcome, so callers typically loop:
//
//	for {
//		line, err := rl.Run()
//		if errors.Is(err, readline.ErrInterrupted) {
//			continue
//		}
//		if err != nil {
//			break
//		}
//		handle(line)
//	}
func (rl *Readline) Run() (string, error) {
	return rl.RunWithContext(context.Background())
}

// RunWithContext is Run with cancellation support. Context cancellation is
// observed between key events; the pending read itself is not interrupted.
func (rl *Readline) RunWithContext(ctx context.Context) (string, error) {
	rl.sessionMu.Lock()
	defer rl.sessionMu.Unlock()

	var buf lineBuffer
	if err := rl.render(&buf); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		ev, err := readKeyEvent(rl.input)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		switch ev.kind {
		case keyEnter:
			line := buf.take()
			if _, err := fmt.Fprint(rl.output, "\r\n"); err != nil {
				return "", fmt.Errorf("failed to write output: %w", err)
			}
			if line != "" {
				if err := rl.history.AddEntry(line); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\r\n", err)
				}
			}
			rl.history.reset()
			return line, nil

		case keyInterrupt:
			rl.history.reset()
			fmt.Fprint(rl.output, "^C\r\n")
			return "", ErrInterrupted

		case keyEOF:
			if buf.len() == 0 {
				return "", ErrEOF
			}
			continue

		case keyLeft:
			if !buf.moveLeft() {
				continue
			}

		case keyRight:
			if !buf.moveRight() {
				continue
			}

		case keyBackspace:
			if !buf.deleteBefore() {
				continue
			}

		case keyDelete:
			if !buf.deleteAt() {
				continue
			}

		case keyUp:
			entry, ok := rl.history.previous(buf.String())
			if !ok {
				continue
			}
			buf.setText(entry)

		case keyDown:
			entry, ok := rl.history.next()
			if !ok {
				continue
			}
			buf.setText(entry)

		case keyRune:
			buf.insert(ev.r)

		default:
			// Unsupported key: ignored, no re-render.
			continue
		}

		if err := rl.render(&buf); err != nil {
			return "", fmt.Errorf("failed to render: %w", err)
		}
	}
}

// render snapshots the prompt under the read lock and redraws the line.
// The lock is released before any terminal write.
func (rl *Readline) render(buf *lineBuffer) error {
	return rl.renderer.render(rl.Prompt(), buf.String(), buf.cursor)
}

// Prompt returns the current prompt string. Safe to call from any
// goroutine.
func (rl *Readline) Prompt() string {
	rl.promptMu.RLock()
	defer rl.promptMu.RUnlock()
	return rl.prompt
}

// SetPrompt replaces the prompt string. Safe to call from any goroutine,
// including while a Run call is in flight; the new prompt shows on the
// next re-render.
func (rl *Readline) SetPrompt(prompt string) {
	rl.promptMu.Lock()
	defer rl.promptMu.Unlock()
	rl.prompt = prompt
}

// History returns a copy of the stored history, oldest first.
func (rl *Readline) History() []string {
	return rl.history.Entries()
}

// AddHistory records a line in the history without going through an edit
// session. Empty lines and consecutive duplicates are skipped.
func (rl *Readline) AddHistory(line string) error {
	return rl.history.AddEntry(line)
}

// Close releases the input source. Safe to call multiple times. A Run call
// blocked on input will fail after Close.
func (rl *Readline) Close() error {
	if rl.input != nil {
		return rl.input.Close()
	}
	return nil
}
