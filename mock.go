package readline

import "io"

// mockInput implements inputSource with a pre-scripted key stroke sequence.
//
// It plays the same role as a fake stdin in integration tests: whole
// editing sessions (typing, arrow navigation, backspace, Ctrl+C) can be
// driven deterministically without a terminal, which keeps the tests safe
// for CI and headless environments. Reading past the script returns io.EOF,
// which the session loop surfaces as ErrEOF.
type mockInput struct {
	input  []rune
	pos    int
	closed bool
}

func newMockInput(input string) *mockInput {
	return &mockInput{input: []rune(input)}
}

func (m *mockInput) ReadRune() (rune, int, error) {
	if m.closed || m.pos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.pos]
	m.pos++
	return r, 1, nil
}

func (m *mockInput) Close() error {
	m.closed = true
	return nil
}
