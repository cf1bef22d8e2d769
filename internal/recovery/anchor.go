package recovery

import "strings"

// Anchor marks the line where a contact's record is judged to begin.
type Anchor struct {
	// Line is the zero-based index into the text's lines.
	Line int

	// TokenMatches is how many distinct name tokens were found at or
	// near the line. Equal to the token count when coverage is full.
	TokenMatches int
}

// LocateContact finds the best-guess anchor line for a contact name
// inside loosely structured text. Reports false when no line contains
// any token of the name.
//
// A single-line pass picks the line matching the most name tokens
// (first seen wins ties). Contact tables frequently wrap first and
// last names onto adjacent lines, so when the single-line winner does
// not cover every token, a sliding two-line window pass looks for full
// coverage and, on success, overrides the result with the window's
// first line.
func LocateContact(text, name string) (Anchor, bool) {
	if text == "" || name == "" {
		return Anchor{}, false
	}

	tokens := strings.Fields(strings.ToLower(name))
	if len(tokens) == 0 {
		return Anchor{}, false
	}

	lines := strings.Split(text, "\n")

	best := -1
	bestCount := 0
	for i, line := range lines {
		lower := strings.ToLower(line)
		count := 0
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = i
		}
	}

	if best == -1 || bestCount < len(tokens) {
		for i := 0; i+1 < len(lines); i++ {
			window := strings.ToLower(lines[i] + " " + lines[i+1])
			count := 0
			for _, tok := range tokens {
				if strings.Contains(window, tok) {
					count++
				}
			}
			if count >= len(tokens) {
				return Anchor{Line: i, TokenMatches: count}, true
			}
		}
	}

	if best == -1 {
		return Anchor{}, false
	}
	return Anchor{Line: best, TokenMatches: bestCount}, true
}
