package fontprompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/nao1215/fontprompt/font"
)

// Common errors
var (
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrTerminal wraps every failure of the terminal: raw mode, reading input or writing output
	ErrTerminal = errors.New("terminal I/O failure")
	// ErrNoFonts is returned when a prompt is created without any font
	ErrNoFonts = errors.New("no fonts to choose from")
)

// DefaultPollInterval is how long the prompt waits for a key before checking
// for cancellation again.
const DefaultPollInterval = 50 * time.Millisecond

// DefaultMarker marks the selected candidate line.
const DefaultMarker = 'x'

// Prompt represents an interactive font picker.
type Prompt struct {
	config   Config
	output   io.Writer
	fonts    []font.Font
	state    *State
	renderer *renderer
	terminal terminalInterface
	keyMap   *KeyMap
}

// Config holds the configuration for a prompt.
type Config struct {
	ColorScheme  *ColorScheme                   // Color scheme (nil for default)
	Theme        *ColorScheme                   // Alias for ColorScheme for compatibility
	NoColor      bool                           // Render plain text without ANSI colors
	KeyMap       *KeyMap                        // Key bindings (nil for default)
	PollInterval time.Duration                  // Wait for a key per poll (0 for DefaultPollInterval)
	Converter    func([]rune, font.Font) string // Font transform (nil for font.Convert)
	Output       io.Writer                      // Destination of the prompt (nil for stderr)
	Marker       rune                           // Selection marker (0 for DefaultMarker)
}

// Option represents a configuration option for prompt
type Option func(*Config)

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithTheme sets the color scheme (alias for compatibility)
func WithTheme(theme *ColorScheme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithoutColor disables colored output
func WithoutColor() Option {
	return func(c *Config) {
		c.NoColor = true
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithPollInterval sets how long each poll waits for a key
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		c.PollInterval = d
	}
}

// WithConverter replaces the font transform used for previews and the final result
func WithConverter(convert func([]rune, font.Font) string) Option {
	return func(c *Config) {
		c.Converter = convert
	}
}

// WithOutput sets where the prompt is drawn
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithMarker sets the character shown in front of the selected font
func WithMarker(marker rune) Option {
	return func(c *Config) {
		c.Marker = marker
	}
}

// New creates a new prompt offering the given fonts, in order.
//
// The prompt is drawn on stderr by default so that stdout stays free for the
// program's own output.
//
// Example:
//
//	p, err := fontprompt.New(font.All(), fontprompt.WithTheme(fontprompt.ThemeDark))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	result, err := p.Run()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result)
func New(fonts []font.Font, options ...Option) (*Prompt, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}
	return newFromConfig(fonts, config)
}

func newFromConfig(fonts []font.Font, config Config) (*Prompt, error) {
	if len(fonts) == 0 {
		return nil, ErrNoFonts
	}

	// Create terminal interface using external libraries
	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open terminal: %w", ErrTerminal, err)
	}
	return newWithTerminal(fonts, config, terminal), nil
}

// newWithTerminal fills in configuration defaults and builds the prompt on
// top of an already opened terminal.
func newWithTerminal(fonts []font.Font, config Config, terminal terminalInterface) *Prompt {
	// Handle Theme alias
	if config.Theme != nil && config.ColorScheme == nil {
		config.ColorScheme = config.Theme
	}
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}
	if config.Converter == nil {
		config.Converter = font.Convert
	}
	if config.Marker == 0 {
		config.Marker = DefaultMarker
	}
	if config.Output == nil {
		config.Output = os.Stderr
		if runtime.GOOS == "windows" {
			// Use colorable for Windows ANSI color support
			config.Output = colorable.NewColorableStderr()
		}
	}

	return &Prompt{
		config:   config,
		output:   config.Output,
		fonts:    append([]font.Font(nil), fonts...),
		terminal: terminal,
		keyMap:   config.KeyMap,
	}
}

// Run starts the interactive prompt and returns the confirmed text.
//
// This is a convenience method that calls RunWithContext with a background context.
func (p *Prompt) Run() (string, error) {
	return p.RunWithContext(context.Background())
}

// RunWithContext starts the interactive prompt with context support.
//
// It reserves one line for the input and one line per font below the cursor,
// then repaints them on every key press:
//   - Printable characters: Append to the input
//   - Backspace: Delete the last character
//   - Up/Down arrows: Move the selection
//   - Enter: Print the input in the selected font and return it
//   - Ctrl+C: Clear the prompt and return ErrInterrupted
//
// When ctx is done, the prompt is cleared and ctx.Err() is returned. Any
// terminal failure ends the session with an error wrapping ErrTerminal.
// Raw mode is restored on every return path.
func (p *Prompt) RunWithContext(ctx context.Context) (result string, err error) {
	if err := p.terminal.SetRaw(); err != nil {
		return "", terminalError("failed to enter raw mode", err)
	}
	defer func() {
		if restoreErr := p.terminal.Restore(); restoreErr != nil {
			if err == nil {
				result, err = "", terminalError("failed to exit raw mode", restoreErr)
				return
			}
			fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", restoreErr)
		}
	}()

	p.state = newState(len(p.fonts))
	p.renderer = newRenderer(p.output, p.colorScheme(), p.config.Marker, len(p.fonts))
	if err := p.renderer.reserve(); err != nil {
		return "", terminalError("failed to reserve screen", err)
	}

	for {
		select {
		case <-ctx.Done():
			if err := p.renderer.abort(); err != nil {
				return "", terminalError("failed to clear prompt", err)
			}
			return "", ctx.Err()
		default:
		}

		ev, ok, err := p.readKey(p.config.PollInterval)
		if err != nil {
			return "", terminalError("failed to read input", err)
		}
		if !ok {
			continue
		}

		switch p.state.Apply(ev) {
		case OutcomeConfirm:
			result := p.convert(p.state.Input.Runes(), p.fonts[p.state.Selected])
			if err := p.renderer.confirm(result); err != nil {
				return "", terminalError("failed to render result", err)
			}
			return result, nil

		case OutcomeCancel:
			if err := p.renderer.abort(); err != nil {
				return "", terminalError("failed to clear prompt", err)
			}
			return "", ErrInterrupted

		case OutcomeUpdate:
			if r, removed := p.state.LastRemoved(); removed {
				if err := p.renderer.backspace(r); err != nil {
					return "", terminalError("failed to move cursor", err)
				}
			}
			if err := p.repaint(); err != nil {
				return "", terminalError("failed to render", err)
			}

		case OutcomeNone:
		}
	}
}

// Close closes the prompt and cleans up resources.
//
// The prompt keeps reading the terminal between sessions, so input typed
// after Run returns belongs to the next Run until Close is called. Close the
// prompt before reading stdin by other means.
//
// It's safe to call Close multiple times.
func (p *Prompt) Close() error {
	// Close terminal resources to prevent file descriptor leaks
	if p.terminal != nil {
		return p.terminal.Close()
	}
	return nil
}

// Fonts returns the fonts offered by the prompt, in display order.
func (p *Prompt) Fonts() []font.Font {
	return append([]font.Font(nil), p.fonts...)
}

// SetFonts replaces the fonts offered by later sessions.
func (p *Prompt) SetFonts(fonts []font.Font) error {
	if len(fonts) == 0 {
		return ErrNoFonts
	}
	p.fonts = append([]font.Font(nil), fonts...)
	return nil
}

// SetTheme changes the color theme of the prompt
func (p *Prompt) SetTheme(theme *ColorScheme) {
	p.config.ColorScheme = theme
	p.config.Theme = theme
}

// Helper methods

func (p *Prompt) repaint() error {
	input := p.state.Input.Runes()
	candidates := make([]string, len(p.fonts))
	for i, f := range p.fonts {
		candidates[i] = p.convert(input, f)
	}
	return p.renderer.repaint(input, candidates, p.state.Selected)
}

func (p *Prompt) convert(input []rune, f font.Font) string {
	return p.config.Converter(input, f)
}

func (p *Prompt) colorScheme() *ColorScheme {
	if p.config.NoColor {
		return nil
	}
	return p.config.ColorScheme
}

func terminalError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTerminal, msg, err)
}
