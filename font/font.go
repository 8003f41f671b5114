// Package font provides the text transforms that fontprompt previews.
//
// Each Font maps ASCII letters (and, for some fonts, digits) onto a Unicode
// block that renders in a distinct typeface, such as the Mathematical
// Alphanumeric Symbols block. Runes without a mapping pass through unchanged,
// so every Font accepts any input.
package font

// Font identifies a single text transform.
type Font int

// Available fonts, in their default display order.
const (
	Bold Font = iota
	Italic
	BoldItalic
	Script
	BoldScript
	Fraktur
	BoldFraktur
	DoubleStruck
	SansSerif
	SansSerifBold
	SansSerifItalic
	SansSerifBoldItalic
	Monospace
	Fullwidth
	Circled
	numFonts
)

var names = [numFonts]string{
	Bold:                "bold",
	Italic:              "italic",
	BoldItalic:          "bold-italic",
	Script:              "script",
	BoldScript:          "bold-script",
	Fraktur:             "fraktur",
	BoldFraktur:         "bold-fraktur",
	DoubleStruck:        "double-struck",
	SansSerif:           "sans-serif",
	SansSerifBold:       "sans-serif-bold",
	SansSerifItalic:     "sans-serif-italic",
	SansSerifBoldItalic: "sans-serif-bold-italic",
	Monospace:           "monospace",
	Fullwidth:           "fullwidth",
	Circled:             "circled",
}

// String returns the name used to select the font on the command line.
func (f Font) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return names[f]
}

// Valid reports whether f is one of the defined fonts.
func (f Font) Valid() bool {
	return f >= 0 && f < numFonts
}

// All returns every defined font in display order.
func All() []Font {
	fonts := make([]Font, 0, numFonts)
	for f := range numFonts {
		fonts = append(fonts, f)
	}
	return fonts
}
