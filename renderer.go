package fontprompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderer keeps the reserved screen region in sync with the prompt state.
//
// The region is one input line followed by one candidate line per font. Only
// relative cursor motion and line clearing are used: saving and restoring the
// cursor position is not reliable here, because printing the newlines that
// reserve the region may scroll the screen and invalidate a saved position.
//
// Between passes the cursor rests on the input line and col tracks its
// column. backspace, confirm and abort move by col. repaint ignores it and
// moves by the width of the input it is given, so that repainting the same
// state twice writes the same bytes.
type renderer struct {
	output      io.Writer    // Target output writer (typically stderr or colorable wrapper)
	colorScheme *ColorScheme // Color configuration; nil renders plain text
	marker      rune         // Marker placed in front of the selected candidate
	lines       int          // Reserved lines: the input line plus one per font
	col         int          // Cursor column on the input line
}

// newRenderer creates a new renderer for a region holding numFonts candidates.
func newRenderer(output io.Writer, colorScheme *ColorScheme, marker rune, numFonts int) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
		marker:      marker,
		lines:       numFonts + 1,
	}
}

// reserve prints enough newlines to make room for the region and moves the
// cursor back to its first line. If the cursor was near the bottom of the
// screen, the terminal scrolls so that the whole region is visible.
func (r *renderer) reserve() error {
	var f frame
	for range r.lines {
		f.print("\r\n")
	}
	f.prevLine(r.lines)
	r.col = 0
	return r.flush(&f)
}

// repaint redraws the input line and every candidate line, then parks the
// cursor right after the last typed character.
//
// The first move goes left by the full width of the input. After an
// insertion the cursor is one character short of that, and the terminal
// stops it at the left margin, so the move always lands on column 0.
func (r *renderer) repaint(input []rune, candidates []string, selected int) error {
	width := runewidth.StringWidth(string(input))

	var f frame
	f.left(width)
	f.clearLine()
	f.print(r.styled(r.inputColor(), string(input)))

	for i, candidate := range candidates {
		f.nextLine(1)
		f.clearLine()
		f.print(r.candidateLine(candidate, i == selected))
	}

	f.prevLine(r.lines - 1)
	f.right(width)

	r.col = width
	return r.flush(&f)
}

// backspace moves the cursor left over the removed rune before the repaint.
// The column never goes below the start of the input line.
func (r *renderer) backspace(removed rune) error {
	w := min(runewidth.RuneWidth(removed), r.col)
	if w <= 0 {
		return nil
	}

	var f frame
	f.left(w)
	r.col -= w
	return r.flush(&f)
}

// confirm replaces the input line with the final text and clears every
// candidate line below it.
func (r *renderer) confirm(text string) error {
	var f frame
	f.left(r.col)
	f.clearLine()
	f.print(text)
	f.print("\r\n")
	f.clearDown()
	r.col = 0
	return r.flush(&f)
}

// abort clears the whole region and leaves the cursor at its top.
func (r *renderer) abort() error {
	var f frame
	f.left(r.col)
	f.clearLine()
	f.clearDown()
	r.col = 0
	return r.flush(&f)
}

// candidateLine formats one preview line, e.g. "[x]𝐡𝐢".
func (r *renderer) candidateLine(text string, selected bool) string {
	mark := ' '
	textColor := r.candidateColor()
	if selected {
		mark = r.marker
		textColor = r.selectedColor()
	}
	return r.styled(r.markerColor(), "["+string(mark)+"]") + r.styled(textColor, text)
}

// styled wraps s in the given color, or returns s as is when color is empty.
func (r *renderer) styled(color, s string) string {
	if color == "" || s == "" {
		return s
	}
	return color + s + Reset()
}

func (r *renderer) inputColor() string {
	if r.colorScheme == nil {
		return ""
	}
	return r.colorScheme.Input.ToANSI()
}

func (r *renderer) markerColor() string {
	if r.colorScheme == nil {
		return ""
	}
	return r.colorScheme.Marker.ToANSI()
}

func (r *renderer) candidateColor() string {
	if r.colorScheme == nil {
		return ""
	}
	return r.colorScheme.Candidate.ToANSI()
}

func (r *renderer) selectedColor() string {
	if r.colorScheme == nil {
		return ""
	}
	return r.colorScheme.Selected.ToANSI()
}

// flush writes a pass with a single Write so that it reaches the terminal
// as one unit.
func (r *renderer) flush(f *frame) error {
	if f.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(r.output, f.String())
	return err
}

// frame collects the terminal operations of one rendering pass.
//
// Cursor movement uses ANSI escape codes:
//   - \x1b[<n>D: Move cursor left n columns
//   - \x1b[<n>C: Move cursor right n columns
//   - \x1b[<n>E: Move cursor to the beginning of the line n lines down
//   - \x1b[<n>F: Move cursor to the beginning of the line n lines up
//   - \x1b[2K:   Clear the whole current line
//   - \x1b[J:    Clear from the cursor to the end of the screen
//
// Terminals read a count of 0 as 1, so moves of zero are dropped.
type frame struct {
	strings.Builder
}

func (f *frame) move(n int, final byte) {
	if n > 0 {
		fmt.Fprintf(f, "\x1b[%d%c", n, final)
	}
}

func (f *frame) left(n int)     { f.move(n, 'D') }
func (f *frame) right(n int)    { f.move(n, 'C') }
func (f *frame) nextLine(n int) { f.move(n, 'E') }
func (f *frame) prevLine(n int) { f.move(n, 'F') }
func (f *frame) clearLine()     { f.WriteString("\x1b[2K") }
func (f *frame) clearDown()     { f.WriteString("\x1b[J") }
func (f *frame) print(s string) { f.WriteString(s) }
