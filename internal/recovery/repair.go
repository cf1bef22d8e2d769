package recovery

import (
	"regexp"
	"strconv"
	"strings"
)

// lineBreakMarkup replaces inline break tags that PDF table extraction
// tends to leave inside cell values.
var lineBreakMarkup = strings.NewReplacer("<br>", " ", "<br/>", " ")

// RepairContactName normalises occurrences of a contact name inside
// text so the exact literal appears for downstream string matching.
//
// Strategies are tried in order, first success wins:
//  1. The literal already occurs: return the text unchanged.
//  2. Strip inline break markup; adopt the cleaned text if that alone
//     makes the literal contiguous.
//  3. Whitespace repair: replace every case-insensitive occurrence of
//     the name tokens separated by whitespace runs with the canonical
//     literal.
//  4. Proximity injection: when the first and last name tokens appear
//     within 200 characters of each other, prepend the canonical name
//     to the matched span. The span itself is preserved, so this never
//     destroys source content, only duplicates the mention.
//
// Single-token names are too ambiguous to repair and pass through
// untouched, as do empty inputs.
func RepairContactName(text, name string) string {
	if text == "" || name == "" {
		return text
	}

	// Fast path: nothing to repair.
	if strings.Contains(text, name) {
		return text
	}

	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return text
	}

	cleaned := lineBreakMarkup.Replace(text)
	if strings.Contains(cleaned, name) {
		// Break tags were the only fragmentation. Replacing them with
		// spaces is safe for readability, so keep the cleaned text.
		text = cleaned
	}

	if repaired, ok := repairWhitespaceSplit(text, name, tokens); ok {
		return repaired
	}

	return injectNearProximityMatch(text, name, tokens)
}

// repairWhitespaceSplit replaces "Michael\n  Stevens" style splits with
// the canonical literal. Reports whether at least one match was found.
func repairWhitespaceSplit(text, name string, tokens []string) (string, bool) {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	re := regexp.MustCompile(`(?i)` + strings.Join(quoted, `\s+`))

	if !re.MatchString(text) {
		return text, false
	}
	return re.ReplaceAllLiteralString(text, name), true
}

// proximitySpan is how far apart the first and last name tokens may sit
// for proximity injection to consider them the same person.
const proximitySpan = 200

// injectNearProximityMatch prepends the canonical name before every
// span where the first token is followed by the last token within
// proximitySpan characters. Lossy-safe: duplicated mentions are an
// accepted trade-off over dropping source text.
func injectNearProximityMatch(text, name string, tokens []string) string {
	first := regexp.QuoteMeta(tokens[0])
	last := regexp.QuoteMeta(tokens[len(tokens)-1])

	re := regexp.MustCompile(`(?is)` + first + `.{0,` + strconv.Itoa(proximitySpan) + `}?` + last)

	return re.ReplaceAllStringFunc(text, func(span string) string {
		return name + " " + span
	})
}
