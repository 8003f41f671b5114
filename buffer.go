package fontprompt

// Buffer holds the runes typed during a prompt session.
//
// Editing only happens at the end: runes are appended and removed one at a
// time. The zero value is an empty buffer ready to use.
type Buffer struct {
	runes []rune
}

// Append adds r to the end of the buffer.
func (b *Buffer) Append(r rune) {
	b.runes = append(b.runes, r)
}

// RemoveLast removes the last rune and returns it. ok is false, and the
// buffer is left untouched, when the buffer is empty.
func (b *Buffer) RemoveLast() (r rune, ok bool) {
	if len(b.runes) == 0 {
		return 0, false
	}
	r = b.runes[len(b.runes)-1]
	b.runes = b.runes[:len(b.runes)-1]
	return r, true
}

// Runes returns a copy of the buffer contents.
func (b *Buffer) Runes() []rune {
	return append([]rune(nil), b.runes...)
}

// String returns the buffer contents as a string.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.runes)
}
