package font

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFont is returned when a name does not identify any font.
var ErrUnknownFont = errors.New("unknown font")

// Parse returns the font with the given name. Matching ignores case and
// treats spaces and underscores like hyphens. When nothing matches, the
// error wraps ErrUnknownFont and suggests the closest name if one is close
// enough.
func Parse(name string) (Font, error) {
	key := normalize(name)
	for f := range numFonts {
		if names[f] == key {
			return f, nil
		}
	}

	if best, ok := Suggest(name); ok {
		return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownFont, name, best.String())
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFont, name)
}

// ParseList parses a comma separated list of font names. Empty elements are
// skipped; an empty list yields every font.
func ParseList(list string) ([]Font, error) {
	var fonts []Font
	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := Parse(name)
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, f)
	}
	if len(fonts) == 0 {
		return All(), nil
	}
	return fonts, nil
}

// Suggest returns the font whose name best matches name. ok is false when no
// name matches at all.
func Suggest(name string) (best Font, ok bool) {
	key := normalize(name)
	bestScore := 0
	for f := range numFonts {
		if score := calculateFuzzyScore(key, names[f]); score > bestScore {
			best, bestScore = f, score
		}
	}
	// A single stray character is not a suggestion.
	return best, bestScore > 10
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(name)
}

// calculateFuzzyScore calculates a fuzzy matching score between input and candidate.
// Returns 0 if no match, higher scores for better matches.
func calculateFuzzyScore(input, candidate string) int {
	if input == "" || candidate == "" {
		return 0
	}

	// Exact match gets highest score
	if input == candidate {
		return 1000
	}

	// Prefix match gets high score
	if strings.HasPrefix(candidate, input) {
		return 800 + len(input)*10
	}

	// Contains match gets medium score
	if strings.Contains(candidate, input) {
		return 500 + len(input)*5
	}

	// Character-by-character fuzzy matching; every input rune must appear in order
	score := 0
	candidateRunes := []rune(candidate)
	candidateIdx := 0
	for _, inputChar := range input {
		found := false
		for candidateIdx < len(candidateRunes) {
			c := candidateRunes[candidateIdx]
			candidateIdx++
			if c == inputChar {
				score += 10
				found = true
				break
			}
		}
		if !found {
			return 0
		}
	}
	return score
}
