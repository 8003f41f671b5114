package fontprompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemeDefault, 'x', 3)

	require.NotNil(t, renderer)
	assert.Equal(t, &output, renderer.output)
	assert.Equal(t, ThemeDefault, renderer.colorScheme)
	assert.Equal(t, 4, renderer.lines, "one input line plus one line per font")
	assert.Equal(t, 0, renderer.col)
}

func TestRendererReserve(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, nil, 'x', 2)

	require.NoError(t, renderer.reserve())
	assert.Equal(t, "\r\n\r\n\r\n\x1b[3F", output.String())
	assert.Equal(t, 0, renderer.col)
}

func TestRendererRepaint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		candidates []string
		selected   int
		want       string
	}{
		{
			name:       "single candidate",
			input:      "ab",
			candidates: []string{"AB"},
			selected:   0,
			want:       "\x1b[2D\x1b[2Kab" + "\x1b[1E\x1b[2K[x]AB" + "\x1b[1F\x1b[2C",
		},
		{
			name:       "second candidate selected",
			input:      "hi",
			candidates: []string{"HI", "hi!"},
			selected:   1,
			want: "\x1b[2D\x1b[2Khi" +
				"\x1b[1E\x1b[2K[ ]HI" +
				"\x1b[1E\x1b[2K[x]hi!" +
				"\x1b[2F\x1b[2C",
		},
		{
			name:       "empty input emits no horizontal moves",
			input:      "",
			candidates: []string{"", ""},
			selected:   0,
			want:       "\x1b[2K" + "\x1b[1E\x1b[2K[x]" + "\x1b[1E\x1b[2K[ ]" + "\x1b[2F",
		},
		{
			name:       "wide characters count two columns",
			input:      "日本",
			candidates: []string{"x"},
			selected:   0,
			want:       "\x1b[4D\x1b[2K日本" + "\x1b[1E\x1b[2K[x]x" + "\x1b[1F\x1b[4C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var output bytes.Buffer
			renderer := newRenderer(&output, nil, 'x', len(tt.candidates))

			require.NoError(t, renderer.repaint([]rune(tt.input), tt.candidates, tt.selected))
			assert.Equal(t, tt.want, output.String())
		})
	}
}

func TestRendererRepaintIsIdempotent(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemeDracula, 'x', 3)
	input := []rune("hello")
	candidates := []string{"one", "two", "three"}

	require.NoError(t, renderer.repaint(input, candidates, 1))
	first := output.String()
	output.Reset()

	require.NoError(t, renderer.repaint(input, candidates, 1))
	assert.Equal(t, first, output.String())
}

func TestRendererRepaintInvariants(t *testing.T) {
	t.Parallel()

	candidates := []string{"a", "b", "c", "d"}
	for selected := range candidates {
		var output bytes.Buffer
		renderer := newRenderer(&output, nil, '*', len(candidates))
		require.NoError(t, renderer.repaint([]rune("text"), candidates, selected))

		lines := strings.Split(output.String(), "\x1b[1E")
		require.Len(t, lines, len(candidates)+1)

		// The input line holds exactly the buffer text
		assert.Equal(t, "\x1b[4D\x1b[2Ktext", lines[0])

		marked := 0
		for i, line := range lines[1:] {
			if strings.Contains(line, "[*]") {
				marked++
				assert.Equal(t, selected, i, "marker must be on the selected font")
			}
		}
		assert.Equal(t, 1, marked, "exactly one candidate carries the marker")

		// The cursor ends right after the input on the input line
		assert.True(t, strings.HasSuffix(output.String(), "\x1b[4F\x1b[4C"))
		assert.Equal(t, 4, renderer.col)
	}
}

func TestRendererRepaintWithColor(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemeDefault, 'x', 2)
	require.NoError(t, renderer.repaint([]rune("hi"), []string{"A", "B"}, 0))

	result := output.String()
	assert.Contains(t, result, ThemeDefault.Input.ToANSI()+"hi"+Reset())
	assert.Contains(t, result, ThemeDefault.Marker.ToANSI()+"[x]"+Reset()+ThemeDefault.Selected.ToANSI()+"A"+Reset())
	assert.Contains(t, result, ThemeDefault.Marker.ToANSI()+"[ ]"+Reset()+ThemeDefault.Candidate.ToANSI()+"B"+Reset())
	// Colors do not change cursor arithmetic
	assert.True(t, strings.HasPrefix(result, "\x1b[2D\x1b[2K"))
	assert.True(t, strings.HasSuffix(result, "\x1b[2F\x1b[2C"))
}

func TestRendererBackspace(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, nil, 'x', 1)
	renderer.col = 3

	require.NoError(t, renderer.backspace('a'))
	assert.Equal(t, "\x1b[1D", output.String())
	assert.Equal(t, 2, renderer.col)

	output.Reset()
	require.NoError(t, renderer.backspace('日'))
	assert.Equal(t, "\x1b[2D", output.String())
	assert.Equal(t, 0, renderer.col)

	output.Reset()
	require.NoError(t, renderer.backspace('a'))
	assert.Empty(t, output.String(), "cursor must not leave the input line")
	assert.Equal(t, 0, renderer.col)
}

func TestRendererConfirm(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, ThemeDefault, 'x', 2)
	require.NoError(t, renderer.repaint([]rune("abc"), []string{"1", "2"}, 0))
	output.Reset()

	require.NoError(t, renderer.confirm("RESULT"))
	assert.Equal(t, "\x1b[3D\x1b[2KRESULT\r\n\x1b[J", output.String(), "final text is printed without color")
	assert.Equal(t, 0, renderer.col)
}

func TestRendererAbort(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	renderer := newRenderer(&output, nil, 'x', 2)

	require.NoError(t, renderer.abort())
	assert.Equal(t, "\x1b[2K\x1b[J", output.String())
}

type failingWriter struct {
	err error
}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestRendererWriteError(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("broken pipe")
	renderer := newRenderer(&failingWriter{err: writeErr}, nil, 'x', 1)

	assert.ErrorIs(t, renderer.reserve(), writeErr)
	assert.ErrorIs(t, renderer.repaint([]rune("a"), []string{"A"}, 0), writeErr)
	assert.ErrorIs(t, renderer.confirm("A"), writeErr)
	assert.ErrorIs(t, renderer.abort(), writeErr)
}
