package font

import "strings"

// mathBlock describes where a font lives inside the Mathematical Alphanumeric
// Symbols block (U+1D400–U+1D7FF).
type mathBlock struct {
	upper rune // code point of 'A'
	lower rune // code point of 'a'
	digit rune // code point of '0', or 0 when the font has no digits
}

var mathBlocks = map[Font]mathBlock{
	Bold:                {upper: 0x1D400, lower: 0x1D41A, digit: 0x1D7CE},
	Italic:              {upper: 0x1D434, lower: 0x1D44E},
	BoldItalic:          {upper: 0x1D468, lower: 0x1D482},
	Script:              {upper: 0x1D49C, lower: 0x1D4B6},
	BoldScript:          {upper: 0x1D4D0, lower: 0x1D4EA},
	Fraktur:             {upper: 0x1D504, lower: 0x1D51E},
	DoubleStruck:        {upper: 0x1D538, lower: 0x1D552, digit: 0x1D7D8},
	BoldFraktur:         {upper: 0x1D56C, lower: 0x1D586},
	SansSerif:           {upper: 0x1D5A0, lower: 0x1D5BA, digit: 0x1D7E2},
	SansSerifBold:       {upper: 0x1D5D4, lower: 0x1D5EE, digit: 0x1D7EC},
	SansSerifItalic:     {upper: 0x1D608, lower: 0x1D622},
	SansSerifBoldItalic: {upper: 0x1D63C, lower: 0x1D656},
	Monospace:           {upper: 0x1D670, lower: 0x1D68A, digit: 0x1D7F6},
}

// Some letters were encoded in Letterlike Symbols before the mathematical
// block existed; the corresponding slots in the block are unassigned.
var letterlike = map[Font]map[rune]rune{
	Italic: {
		'h': 0x210E,
	},
	Script: {
		'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B, 'I': 0x2110,
		'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
		'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
	},
	Fraktur: {
		'C': 0x212D, 'H': 0x210C, 'I': 0x2111, 'R': 0x211C, 'Z': 0x2128,
	},
	DoubleStruck: {
		'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119, 'Q': 0x211A,
		'R': 0x211D, 'Z': 0x2124,
	},
}

// Convert renders input in font f. Runes the font has no glyph for are copied
// unchanged; an invalid font returns the input as is.
func Convert(input []rune, f Font) string {
	var sb strings.Builder
	sb.Grow(len(input) * 4)
	for _, r := range input {
		sb.WriteRune(convertRune(r, f))
	}
	return sb.String()
}

// ConvertString is Convert for string input.
func ConvertString(s string, f Font) string {
	return Convert([]rune(s), f)
}

func convertRune(r rune, f Font) rune {
	switch f {
	case Fullwidth:
		return fullwidth(r)
	case Circled:
		return circled(r)
	}

	block, ok := mathBlocks[f]
	if !ok {
		return r
	}
	if mapped, ok := letterlike[f][r]; ok {
		return mapped
	}
	switch {
	case r >= 'A' && r <= 'Z':
		return block.upper + (r - 'A')
	case r >= 'a' && r <= 'z':
		return block.lower + (r - 'a')
	case r >= '0' && r <= '9' && block.digit != 0:
		return block.digit + (r - '0')
	}
	return r
}

// fullwidth maps printable ASCII onto the Halfwidth and Fullwidth Forms block.
func fullwidth(r rune) rune {
	switch {
	case r == ' ':
		return 0x3000 // ideographic space
	case r >= '!' && r <= '~':
		return 0xFF01 + (r - '!')
	}
	return r
}

// circled maps letters and digits onto Enclosed Alphanumerics.
func circled(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return 0x24B6 + (r - 'A')
	case r >= 'a' && r <= 'z':
		return 0x24D0 + (r - 'a')
	case r == '0':
		return 0x24EA
	case r >= '1' && r <= '9':
		return 0x2460 + (r - '1')
	}
	return r
}
