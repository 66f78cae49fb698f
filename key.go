package readline

import "strings"

// keyKind identifies a decoded input event. The set of recognized keys is
// fixed: Enter, Ctrl+C, Ctrl+D, Backspace, Delete, the four arrow keys, and
// printable characters. Anything else decodes to keyUnknown and is ignored
// by the session loop.
type keyKind int

const (
	keyUnknown keyKind = iota
	keyRune            // printable character, carried in keyEvent.r
	keyEnter
	keyInterrupt // Ctrl+C
	keyEOF       // Ctrl+D
	keyBackspace
	keyDelete
	keyLeft
	keyRight
	keyUp
	keyDown
)

// keyEvent is one decoded unit of input.
type keyEvent struct {
	kind keyKind
	r    rune
}

// runeSource is the capability the decoder needs from an input: a stream of
// runes. Both the real terminal and scripted test inputs satisfy it.
type runeSource interface {
	ReadRune() (rune, int, error)
}

// readKeyEvent reads enough runes from src to decode a single key event.
// Escape sequences are accumulated until a complete CSI sequence is seen;
// unrecognized sequences yield keyUnknown so that the caller's transition
// table stays the single source of truth for what happens next.
func readKeyEvent(src runeSource) (keyEvent, error) {
	r, _, err := src.ReadRune()
	if err != nil {
		return keyEvent{}, err
	}

	switch r {
	case '\r', '\n':
		return keyEvent{kind: keyEnter}, nil
	case '\x03':
		return keyEvent{kind: keyInterrupt}, nil
	case '\x04':
		return keyEvent{kind: keyEOF}, nil
	case '\x7f', '\b':
		return keyEvent{kind: keyBackspace}, nil
	case '\x1b':
		seq, err := readEscapeSequence(src)
		if err != nil {
			return keyEvent{}, err
		}
		return keyEvent{kind: sequenceKind(seq)}, nil
	}

	if r >= 32 && r != 127 {
		return keyEvent{kind: keyRune, r: r}, nil
	}
	return keyEvent{kind: keyUnknown, r: r}, nil
}

// readEscapeSequence reads the remainder of an escape sequence after the
// initial ESC byte. The scan is bounded so a malformed sequence cannot
// stall the read loop.
func readEscapeSequence(src runeSource) (string, error) {
	seq := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		r, _, err := src.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		s := string(seq)
		if s == "[A" || s == "[B" || s == "[C" || s == "[D" || s == "[H" || s == "[F" {
			return s, nil
		}
		if strings.HasSuffix(s, "~") && len(s) >= 3 {
			return s, nil
		}
		if len(seq) >= 3 && (seq[len(seq)-1] < '0' || seq[len(seq)-1] > '9') {
			return s, nil
		}
	}
	return string(seq), nil
}

// sequenceKind maps a completed escape sequence (without the leading ESC)
// to a key event kind.
func sequenceKind(seq string) keyKind {
	switch seq {
	case "[A":
		return keyUp
	case "[B":
		return keyDown
	case "[C":
		return keyRight
	case "[D":
		return keyLeft
	case "[3~":
		return keyDelete
	}
	return keyUnknown
}
