package fontprompt

import (
	"time"
	"unicode"
)

// KeyAction represents the action to perform when a key is pressed
type KeyAction int

// Key action constants define the actions that can be performed when keys are pressed
const (
	ActionNone KeyAction = iota
	ActionSubmit
	ActionCancel
	ActionDeleteChar
	ActionMoveUp
	ActionMoveDown
	ActionInsertChar
)

// String returns a readable name for the action.
func (a KeyAction) String() string {
	switch a {
	case ActionSubmit:
		return "submit"
	case ActionCancel:
		return "cancel"
	case ActionDeleteChar:
		return "delete-char"
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionInsertChar:
		return "insert-char"
	default:
		return "none"
	}
}

// KeyEvent is a decoded key press. Rune is only meaningful for ActionInsertChar.
type KeyEvent struct {
	Action KeyAction
	Rune   rune
}

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings  map[rune]KeyAction
	sequences map[string]KeyAction
}

// NewDefaultKeyMap creates the default key bindings for the prompt.
//
// Default key bindings:
//   - Enter/Return: Confirm the selected font
//   - Backspace: Delete the last character
//   - Up/Down arrows: Move the font selection
//   - Ctrl+C: Cancel the session
//
// Any other printable character is appended to the input.
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}

	km.bindings['\r'] = ActionSubmit
	km.bindings['\n'] = ActionSubmit
	km.bindings['\x03'] = ActionCancel     // Ctrl+C
	km.bindings['\x7f'] = ActionDeleteChar // Backspace
	km.bindings['\b'] = ActionDeleteChar   // Backspace

	// Escape sequences; the O forms are sent in application cursor mode
	km.sequences["[A"] = ActionMoveUp
	km.sequences["[B"] = ActionMoveDown
	km.sequences["OA"] = ActionMoveUp
	km.sequences["OB"] = ActionMoveDown

	return km
}

// Bind adds or updates a key binding for a single character.
//
// Example:
//
//	keyMap := fontprompt.NewDefaultKeyMap()
//	// Ctrl+P and Ctrl+N move the selection like in emacs
//	keyMap.Bind('\x10', fontprompt.ActionMoveUp)
//	keyMap.Bind('\x0e', fontprompt.ActionMoveDown)
func (km *KeyMap) Bind(key rune, action KeyAction) {
	km.bindings[key] = action
}

// BindSequence adds or updates an escape sequence binding.
// The sequence should not include the initial ESC character.
func (km *KeyMap) BindSequence(seq string, action KeyAction) {
	km.sequences[seq] = action
}

// GetAction returns the action for a key, or ActionNone if not bound
func (km *KeyMap) GetAction(key rune) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	if action, exists := km.bindings[key]; exists {
		return action
	}
	return ActionNone
}

// GetSequenceAction returns the action for an escape sequence, or ActionNone if not bound
func (km *KeyMap) GetSequenceAction(seq string) KeyAction {
	if km == nil || km.sequences == nil {
		return ActionNone
	}
	if action, exists := km.sequences[seq]; exists {
		return action
	}
	return ActionNone
}

// Decode classifies a single rune that is not the start of an escape
// sequence. Bound runes win over insertion, so a printable rune can be
// rebound to an action.
func (km *KeyMap) Decode(r rune) KeyEvent {
	if action := km.GetAction(r); action != ActionNone {
		return KeyEvent{Action: action}
	}
	if unicode.IsPrint(r) {
		return KeyEvent{Action: ActionInsertChar, Rune: r}
	}
	return KeyEvent{Action: ActionNone}
}

// escapeTimeout bounds the wait for the rest of an escape sequence. A bare
// ESC press is followed by nothing, so it times out and is ignored.
const escapeTimeout = 25 * time.Millisecond

// maxEscapeLen limits how many runes are consumed after ESC.
const maxEscapeLen = 10

// readKey waits up to timeout for the next key press. ok is false when no key
// arrived in time.
func (p *Prompt) readKey(timeout time.Duration) (ev KeyEvent, ok bool, err error) {
	r, ok, err := p.terminal.PollRune(timeout)
	if err != nil || !ok {
		return KeyEvent{}, false, err
	}
	if r != '\x1b' {
		return p.keyMap.Decode(r), true, nil
	}

	seq, err := p.readEscapeSequence()
	if err != nil {
		return KeyEvent{}, false, err
	}
	if seq == "" {
		// Lone Escape
		return KeyEvent{Action: ActionNone}, true, nil
	}
	return KeyEvent{Action: p.keyMap.GetSequenceAction(seq)}, true, nil
}

// readEscapeSequence reads the runes following ESC until the sequence is
// complete, input pauses, or maxEscapeLen runes have been read.
func (p *Prompt) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, maxEscapeLen)
	for range maxEscapeLen {
		r, ok, err := p.terminal.PollRune(escapeTimeout)
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		seq = append(seq, r)
		if escapeComplete(seq) {
			break
		}
	}
	return string(seq), nil
}

// escapeComplete reports whether seq (without the leading ESC) forms a whole
// CSI or SS3 sequence.
func escapeComplete(seq []rune) bool {
	// A second ESC is a Meta prefix; the sequence after it decides
	if len(seq) > 0 && seq[0] == '\x1b' {
		return escapeComplete(seq[1:])
	}
	if len(seq) < 2 {
		return false
	}
	switch seq[0] {
	case 'O':
		// SS3: a single final character
		return true
	case '[':
		// Linux console function keys: ESC [ [ A through ESC [ [ E
		if seq[1] == '[' {
			return len(seq) >= 3
		}
		// CSI: parameters and intermediates up to a final byte in 0x40–0x7E
		last := seq[len(seq)-1]
		return last >= 0x40 && last <= 0x7e
	default:
		// Alt+key and other two-rune forms
		return true
	}
}
