package recovery

import (
	"regexp"
	"strings"
)

// Window of lines inspected around an anchor. Contact tables keep the
// profile URL close to the name, usually below it.
const (
	windowBefore = 2
	windowAfter  = 8
)

// slugToken is the character set accepted while extending a URL slug.
var slugToken = regexp.MustCompile(`^[a-z0-9\-]+$`)

// slugStopWords are common English words that qualify as slug tokens by
// charset but never belong to a profile URL.
var slugStopWords = map[string]struct{}{
	"and": {}, "the": {}, "of": {}, "in": {}, "for": {}, "with": {},
	"a": {}, "an": {}, "at": {}, "as": {}, "to": {},
}

// requiredPathMarker must appear in a stitched URL for it to be
// accepted as a profile link.
const requiredPathMarker = "linkedin.com/in/"

// ExtractProfileURL locates the contact in the text and reconstructs
// their profile URL from the surrounding lines. Returns "" when the
// contact cannot be anchored or no URL survives validation.
func ExtractProfileURL(text, name string) string {
	if text == "" || name == "" {
		return ""
	}
	anchor, ok := LocateContact(text, name)
	if !ok {
		return ""
	}
	return ReconstructProfileURL(text, name, anchor.Line)
}

// ReconstructProfileURL stitches together a profile URL that print
// formatting has split across lines near the anchor. Pass a negative
// anchor to scan the whole text.
//
// The parser targets one observed corruption pattern: a URL wrapped at
// the column boundary of a print-formatted PDF ("http://www.lin" /
// "kedin.com/in/e" / "ddie-guerrero-42"). It finds a start token
// carrying a protocol or www hint that ends in a truncated domain
// fragment, joins it with the continuation token on the next line, and
// keeps consuming one slug token per line while the tokens plausibly
// belong to the slug: lowercase, restricted charset, not a stop word,
// and carrying either a fragment of the contact's name, a digit, or a
// bare hyphen connector. Correctness is approximate by design; the
// name-or-digit gate is tuned to this document style and numeric-only
// slugs pass only via the digit test.
func ReconstructProfileURL(text, name string, anchor int) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")

	start, end := 0, len(lines)
	if anchor >= 0 {
		start = max(0, anchor-windowBefore)
		end = min(len(lines), anchor+windowAfter)
	}
	window := lines[start:end]

	nameTokens := strings.Fields(strings.ToLower(name))

	for i := range window {
		startTok := findStartToken(window[i])
		if startTok == "" || i+1 >= len(window) {
			continue
		}

		contTok := findContinuationToken(window[i+1])
		if contTok == "" {
			continue
		}

		url := startTok + contTok

		// Extend the slug one line at a time until a line offers no
		// qualifying token.
		for off := i + 2; off < len(window); off++ {
			part, ok := findSlugToken(window[off], nameTokens)
			if !ok {
				break
			}
			url += part
		}

		url = strings.Trim(url, "-,.;:")
		if strings.Contains(url, requiredPathMarker) {
			return url
		}
	}

	return ""
}

// findStartToken returns the first token that looks like the head of a
// line-wrapped profile URL, or "".
func findStartToken(line string) string {
	for _, tok := range strings.Fields(line) {
		truncated := strings.HasSuffix(tok, "lin") || strings.HasSuffix(tok, "linkedin")
		hinted := strings.Contains(tok, "http") || strings.Contains(tok, "www")
		if truncated && hinted {
			return tok
		}
	}
	return ""
}

// findContinuationToken returns the first token that continues a
// truncated domain, or "".
func findContinuationToken(line string) string {
	for _, tok := range strings.Fields(line) {
		if strings.HasPrefix(tok, "kedin") || strings.HasPrefix(tok, ".com") {
			return tok
		}
	}
	return ""
}

// findSlugToken returns the first token on the line that qualifies as a
// slug continuation. Title-cased tokens signal a new sentence and stop
// the scan for that line.
func findSlugToken(line string, nameTokens []string) (string, bool) {
	for _, tok := range strings.Fields(line) {
		clean := strings.TrimRight(tok, ",.;!:")
		if clean == "" {
			continue
		}
		if tok[0] >= 'A' && tok[0] <= 'Z' {
			continue
		}
		if !slugToken.MatchString(clean) {
			continue
		}
		if _, stop := slugStopWords[strings.ToLower(clean)]; stop {
			continue
		}

		if containsNameFragment(clean, nameTokens) || containsDigit(clean) || clean == "-" {
			return clean, true
		}
	}
	return "", false
}

// containsNameFragment reports whether any name token longer than two
// characters appears in the candidate. Short tokens match too much
// unrelated text to be trusted.
func containsNameFragment(candidate string, nameTokens []string) bool {
	lower := strings.ToLower(candidate)
	for _, tok := range nameTokens {
		if len(tok) > 2 && strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
