package readline

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// defaultMaxEntries is the in-memory history cap used when no explicit
// size is configured.
const defaultMaxEntries = 1000

// History stores past submitted lines and a browse cursor over them.
//
// Entries are kept in insertion order. The browse cursor tracks which entry
// is currently swapped into the edit buffer during Up/Down navigation; a
// cursor equal to len(entries) means "not browsing". When browsing starts,
// the unsubmitted line is parked in pending so that navigating back past the
// newest entry restores it.
//
// A History may be shared by several Readline instances (or mutated from
// another goroutine via AddEntry), so every method takes the mutex. Critical
// sections are short and never span terminal I/O.
//
// When a backing file is configured, entries are loaded from it once at
// construction and each added entry is mirrored with an append-only write.
// The file is never truncated or rewritten in place.
type History struct {
	mu         sync.Mutex
	entries    []string
	browse     int
	pending    string
	maxEntries int
	file       string
}

// NewHistory creates a History, loading existing entries from file when one
// is configured. A missing file is not an error: the first session simply
// starts with empty history. Any other read failure is returned.
//
// A store built here can be shared between several Readline instances via
// WithHistory, so that submissions from one session are browsable in the
// others.
func NewHistory(file string, maxEntries int) (*History, error) {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}

	if file != "" {
		expanded, err := expandHistoryPath(file)
		if err != nil {
			return nil, err
		}
		file = expanded
	}

	h := &History{
		maxEntries: maxEntries,
		file:       file,
	}
	if err := h.load(); err != nil {
		return nil, err
	}
	h.browse = len(h.entries)
	return h, nil
}

// load reads the backing file into memory, skipping blank lines.
func (h *History) load() error {
	if h.file == "" {
		return nil
	}

	f, err := os.Open(h.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// Skip blank lines, but keep entries verbatim: a reload must
		// yield exactly what was submitted, padding included.
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			h.entries = append(h.entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	return nil
}

// AddEntry appends a line to the history and mirrors it to the backing file.
// Empty lines and consecutive duplicates are skipped. The in-memory list is
// capped at maxEntries; the file keeps everything (append-only).
func (h *History) AddEntry(entry string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if entry == "" {
		return nil
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		h.browse = len(h.entries)
		h.pending = ""
		return nil
	}

	h.entries = append(h.entries, entry)
	if len(h.entries) > h.maxEntries {
		h.entries = h.entries[len(h.entries)-h.maxEntries:]
	}
	h.browse = len(h.entries)
	h.pending = ""

	if h.file == "" {
		return nil
	}
	if err := h.appendToFile(entry); err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

// appendToFile writes a single entry to the backing file, creating the file
// and its directory on first use.
func (h *History) appendToFile(entry string) error {
	if dir := filepath.Dir(h.file); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(h.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, entry); err != nil {
		return err
	}
	return nil
}

// previous moves the browse cursor one step toward older entries and returns
// the entry now under it. On the first call of a browsing session the
// in-progress line is parked so next can restore it later. Returns false at
// the oldest entry or when the history is empty.
func (h *History) previous(current string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 || h.browse == 0 {
		return "", false
	}
	if h.browse == len(h.entries) {
		h.pending = current
	}
	h.browse--
	return h.entries[h.browse], true
}

// next moves the browse cursor one step toward newer entries. Stepping past
// the newest entry hands back the parked in-progress line and leaves
// browsing mode. Returns false when not browsing.
func (h *History) next() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.browse >= len(h.entries) {
		return "", false
	}
	h.browse++
	if h.browse == len(h.entries) {
		line := h.pending
		h.pending = ""
		return line, true
	}
	return h.entries[h.browse], true
}

// reset leaves browsing mode and clears the parked line. Called on submit
// and on cancellation; the stored entries are untouched.
func (h *History) reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.browse = len(h.entries)
	h.pending = ""
}

// Entries returns a copy of the stored history, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.entries...)
}

// expandHistoryPath expands a history file path to an absolute path.
// Supports absolute paths, ~/ home expansion, and relative paths.
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = home
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return absPath, nil
}
