// Package readline provides an interactive line-editing engine for
// terminal applications.
//
// The library reads raw key strokes from an input stream, maintains an
// editable buffer with a cursor, navigates a persisted command history, and
// renders the current edit state back to the terminal with incremental ANSI
// updates. It serves any program that needs a readline-style prompt:
// shells, REPLs, and CLI tools.
//
// Quick Start:
//
//	package main
//
//	import (
//		"errors"
//		"fmt"
//		"log"
//
//		"github.com/nao1215/readline"
//	)
//
//	func main() {
//		rl, err := readline.New("$ ")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer rl.Close()
//
//		if err := readline.EnableRawMode(); err != nil {
//			log.Fatal(err)
//		}
//		defer readline.DisableRawMode()
//
//		for {
//			line, err := rl.Run()
//			if errors.Is(err, readline.ErrInterrupted) {
//				continue
//			}
//			if err != nil {
//				break
//			}
//			fmt.Printf("You entered: %s\r\n", line)
//		}
//	}
//
// Key Bindings:
//
// The binding surface is fixed and not user-remappable:
//
//   - Enter: Submit the line
//   - Ctrl+C: Cancel and return ErrInterrupted
//   - Ctrl+D: Return ErrEOF when the buffer is empty
//   - Left/Right arrows: Move the cursor
//   - Up/Down arrows: Navigate history
//   - Backspace: Delete the character before the cursor
//   - Delete: Delete the character under the cursor
//
// All other keys are ignored.
//
// History:
//
// Submitted non-empty lines are recorded in memory, skipping consecutive
// duplicates. With WithHistoryFile, entries are also mirrored to a plain
// newline-delimited file with append-only writes; the file is read in full
// at construction and never rewritten. Browsing with Up parks the line
// being typed, and stepping Down past the newest entry restores it.
//
// Raw Mode:
//
// Raw mode is a process-wide resource owned by the caller, not by the
// library. Acquire it with EnableRawMode before the first Run call and
// guarantee DisableRawMode on every exit path, including cancellation:
//
//	if err := readline.EnableRawMode(); err != nil {
//		log.Fatal(err)
//	}
//	defer readline.DisableRawMode()
//
// Custom Input Sources:
//
// WithReader accepts any io.Reader as the key stroke source, which makes
// sessions scriptable:
//
//	rl, err := readline.New("> ", readline.WithReader(strings.NewReader("hello\r")))
//
// Concurrency:
//
// The prompt can be read and replaced from any goroutine while a Run call
// is in flight; the change shows on the next re-render. The history store
// is safe for concurrent use and may be fed via AddHistory from other
// goroutines. Concurrent Run calls on the same instance serialize.
//
// Error Handling:
//
//   - readline.ErrInterrupted: the user pressed Ctrl+C
//   - readline.ErrEOF: the input stream ended, or Ctrl+D on an empty line
//   - context errors from RunWithContext when the context is done
//
// A missing history file at construction is not an error; the session
// starts with empty history.
package readline
