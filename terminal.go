package fontprompt

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// errTerminalClosed is returned by PollRune after Close.
var errTerminalClosed = errors.New("terminal closed")

// terminalInterface abstracts terminal operations for testability and cross-platform compatibility.
//
// Implementations:
//   - realTerminal: Uses go-tty for actual terminal interaction
//   - mockTerminal: Provides deterministic behavior for testing
type terminalInterface interface {
	SetRaw() error  // Enter raw mode for immediate key processing
	Restore() error // Restore original terminal settings
	// PollRune waits up to timeout for one rune of input. ok is false when the
	// timeout expired first.
	PollRune(timeout time.Duration) (r rune, ok bool, err error)
	Close() error // Clean up resources and prevent fd leaks
}

// runeReader is the blocking input side of a tty.
type runeReader interface {
	ReadRune() (rune, error)
}

// readResult is one completed ReadRune call.
type readResult struct {
	r   rune
	err error
}

// realTerminal implements terminalInterface using go-tty for input and
// golang.org/x/term for raw mode.
//
// go-tty only offers a blocking ReadRune, so a single goroutine reads runes
// and hands them over on a channel; PollRune waits on that channel with a
// timer. The goroutine is the only reader and stops on the first read error
// or when the terminal is closed.
//
// Once the first poll has started the reader, the terminal owns the tty input
// until Close: keys typed between sessions are kept for the next session, not
// left for other readers of stdin.
type realTerminal struct {
	tty           *tty.TTY    // TTY handle from go-tty for cross-platform terminal operations
	input         runeReader  // Source of runes; the tty itself outside of tests
	closed        bool        // Track if terminal is already closed to prevent double-close panic on Windows
	stdinFd       int         // File descriptor for stdin for raw mode management
	originalState *term.State // Original terminal state to restore on exit

	startReader sync.Once
	runes       chan readResult
	done        chan struct{}
	readErr     error // First read error; every later poll returns it
}

// newRealTerminal opens the controlling terminal.
func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	return &realTerminal{
		tty:     t,
		input:   t,
		stdinFd: int(os.Stdin.Fd()),
		runes:   make(chan readResult),
		done:    make(chan struct{}),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Always capture current terminal state before entering raw mode
	// This ensures proper restoration regardless of how many times we enter/exit raw mode
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		// Reset the state so that SetRaw can capture a fresh baseline next time
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) PollRune(timeout time.Duration) (rune, bool, error) {
	if t.closed {
		return 0, false, errTerminalClosed
	}
	if t.readErr != nil {
		return 0, false, t.readErr
	}
	t.startReader.Do(func() { go t.readLoop() })

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-t.runes:
		if res.err != nil {
			t.readErr = res.err
			return 0, false, res.err
		}
		return res.r, true, nil
	case <-timer.C:
		return 0, false, nil
	}
}

func (t *realTerminal) readLoop() {
	for {
		r, err := t.input.ReadRune()
		select {
		case t.runes <- readResult{r: r, err: err}:
		case <-t.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// Close stops the reader goroutine and releases the tty. A read already in
// progress completes, but its rune is discarded.
func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.done)
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}
