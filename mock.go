package fontprompt

import "time"

// mockTerminal implements terminalInterface for testing and development.
//
// It replays a pre-configured rune sequence, one rune per poll. Once the
// sequence is used up, polls behave like a terminal with nobody typing: they
// sleep for the timeout and report that nothing arrived, unless pollErr is
// set, in which case that error is returned instead.
type mockTerminal struct {
	input    []rune // Pre-configured input sequence for testing
	inputPos int    // Current position in the input sequence
	rawMode  bool   // Track raw mode state for test verification
	restores int    // Number of Restore calls
	closed   bool

	setRawErr error // Returned by SetRaw when set
	pollErr   error // Returned by PollRune once input is exhausted
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input: []rune(input),
	}
}

func (m *mockTerminal) SetRaw() error {
	if m.setRawErr != nil {
		return m.setRawErr
	}
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restores++
	return nil
}

func (m *mockTerminal) PollRune(timeout time.Duration) (rune, bool, error) {
	if m.inputPos >= len(m.input) {
		if m.pollErr != nil {
			return 0, false, m.pollErr
		}
		time.Sleep(timeout)
		return 0, false, nil
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, true, nil
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}
