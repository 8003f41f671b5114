package fontprompt

// Outcome tells the event loop what a key press requires of the screen.
type Outcome int

const (
	// OutcomeNone leaves the screen untouched.
	OutcomeNone Outcome = iota
	// OutcomeUpdate repaints the input line and every candidate line.
	OutcomeUpdate
	// OutcomeConfirm ends the session with the selected font.
	OutcomeConfirm
	// OutcomeCancel ends the session without a result.
	OutcomeCancel
)

// String returns a readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdate:
		return "update"
	case OutcomeConfirm:
		return "confirm"
	case OutcomeCancel:
		return "cancel"
	default:
		return "none"
	}
}

// State is the editable part of a prompt session: what has been typed and
// which font is selected. Selected always stays within [0, NumFonts).
type State struct {
	Input    Buffer
	Selected int
	NumFonts int

	// removed is the rune taken off by the last Apply, if any.
	removed    rune
	hasRemoved bool
}

// newState returns the initial state for a session over numFonts fonts.
func newState(numFonts int) *State {
	return &State{NumFonts: numFonts}
}

// Apply updates the state for one key press and reports how the screen must
// react. It has no side effects beyond the state itself.
func (s *State) Apply(ev KeyEvent) Outcome {
	s.removed, s.hasRemoved = 0, false

	switch ev.Action {
	case ActionSubmit:
		return OutcomeConfirm

	case ActionCancel:
		return OutcomeCancel

	case ActionDeleteChar:
		// An empty buffer still repaints; only the cursor move is skipped.
		s.removed, s.hasRemoved = s.Input.RemoveLast()
		return OutcomeUpdate

	case ActionMoveUp:
		if s.Selected > 0 {
			s.Selected--
			return OutcomeUpdate
		}
		return OutcomeNone

	case ActionMoveDown:
		if s.Selected < s.NumFonts-1 {
			s.Selected++
			return OutcomeUpdate
		}
		return OutcomeNone

	case ActionInsertChar:
		s.Input.Append(ev.Rune)
		return OutcomeUpdate

	default:
		return OutcomeNone
	}
}

// LastRemoved returns the rune removed by the most recent Apply. ok is false
// when that Apply removed nothing.
func (s *State) LastRemoved() (r rune, ok bool) {
	return s.removed, s.hasRemoved
}
