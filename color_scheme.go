package fontprompt

import (
	"fmt"
	"strings"
)

// ColorScheme defines the color configuration for the prompt.
type ColorScheme struct {
	Name      string `json:"name"`
	Input     Color  `json:"input"`     // Typed text on the input line
	Marker    Color  `json:"marker"`    // Brackets of the selection marker
	Candidate Color  `json:"candidate"` // Preview text of unselected fonts
	Selected  Color  `json:"selected"`  // Preview text of the selected font
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with white input and a green selection
var ThemeDefault = &ColorScheme{
	Name:      "default",
	Input:     Color{R: 255, G: 255, B: 255, Bold: true},
	Marker:    Color{R: 128, G: 128, B: 128},
	Candidate: Color{R: 200, G: 200, B: 200},
	Selected:  Color{R: 0, G: 255, B: 0, Bold: true},
}

// ThemeDark is a dark theme with light blue selection and off-white text
var ThemeDark = &ColorScheme{
	Name:      "dark",
	Input:     Color{R: 248, G: 248, B: 242},
	Marker:    Color{R: 98, G: 114, B: 164},
	Candidate: Color{R: 189, G: 147, B: 249},
	Selected:  Color{R: 102, G: 217, B: 239, Bold: true},
}

// ThemeLight is a light theme with blue selection and dark gray text
var ThemeLight = &ColorScheme{
	Name:      "light",
	Input:     Color{R: 36, G: 41, B: 46},
	Marker:    Color{R: 149, G: 157, B: 165},
	Candidate: Color{R: 88, G: 96, B: 105},
	Selected:  Color{R: 0, G: 119, B: 187, Bold: true},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:      "accessible",
	Input:     Color{R: 255, G: 255, B: 255},
	Marker:    Color{R: 204, G: 204, B: 204},
	Candidate: Color{R: 255, G: 255, B: 255},
	Selected:  Color{R: 230, G: 159, B: 0, Bold: true},
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &ColorScheme{
	Name:      "dracula",
	Input:     Color{R: 248, G: 248, B: 242},
	Marker:    Color{R: 98, G: 114, B: 164},
	Candidate: Color{R: 139, G: 233, B: 253},
	Selected:  Color{R: 80, G: 250, B: 123, Bold: true},
}

// ThemeMonokai is the Monokai color scheme
var ThemeMonokai = &ColorScheme{
	Name:      "monokai",
	Input:     Color{R: 248, G: 248, B: 242},
	Marker:    Color{R: 117, G: 113, B: 94},
	Candidate: Color{R: 166, G: 226, B: 46},
	Selected:  Color{R: 249, G: 38, B: 114, Bold: true},
}

// Themes returns the built-in color schemes.
func Themes() []*ColorScheme {
	return []*ColorScheme{ThemeDefault, ThemeDark, ThemeLight, ThemeAccessible, ThemeDracula, ThemeMonokai}
}

// ThemeByName returns the built-in color scheme with the given name, ignoring case.
func ThemeByName(name string) (*ColorScheme, bool) {
	for _, theme := range Themes() {
		if strings.EqualFold(theme.Name, name) {
			return theme, true
		}
	}
	return nil, false
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
