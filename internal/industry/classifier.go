// Package industry infers the single best-matching industry for a body
// of free text by scoring it against a fixed keyword taxonomy.
package industry

import (
	"strings"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

// Score holds the keyword-occurrence total for one industry.
type Score struct {
	Label string
	Count int
}

// Classify returns the industry whose keywords occur most often in the
// text. Reports false when every industry scores zero, meaning no
// confident match.
//
// Counting is plain non-overlapping substring counting on the
// lowercased text, not word-boundary aware: a keyword that is a
// substring of an unrelated word over-counts. That approximation is
// part of the contract. Ties between equal non-zero scores resolve to
// the industry listed first in the taxonomy.
func Classify(text string, taxonomy domain.Taxonomy) (string, bool) {
	best, _ := ClassifyScored(text, taxonomy)
	if best.Count == 0 {
		return "", false
	}
	return best.Label, true
}

// ClassifyScored is Classify with the winning score and the full
// per-industry tally exposed, for logging and diagnostics.
func ClassifyScored(text string, taxonomy domain.Taxonomy) (Score, []Score) {
	lower := strings.ToLower(text)

	scores := make([]Score, len(taxonomy))
	var best Score
	for i, entry := range taxonomy {
		count := 0
		for _, kw := range entry.Keywords {
			count += strings.Count(lower, kw)
		}
		scores[i] = Score{Label: entry.Label, Count: count}

		// Strictly greater keeps the first-in-taxonomy tie-break.
		if count > best.Count {
			best = scores[i]
		}
	}
	if best.Label == "" && len(scores) > 0 {
		best = Score{Label: scores[0].Label, Count: 0}
	}
	return best, scores
}
