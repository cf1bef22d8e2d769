package recovery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairContactName_AlreadyPresent(t *testing.T) {
	text := "Meeting with Michael Stevens next Tuesday."

	got := RepairContactName(text, "Michael Stevens")

	assert.Equal(t, text, got, "text containing the literal must pass through unchanged")
}

func TestRepairContactName_EmptyInputs(t *testing.T) {
	assert.Equal(t, "", RepairContactName("", "Michael Stevens"))
	assert.Equal(t, "some text", RepairContactName("some text", ""))
}

func TestRepairContactName_SingleTokenNotRepaired(t *testing.T) {
	text := "mich ael was here"

	assert.Equal(t, text, RepairContactName(text, "Michael"))
}

func TestRepairContactName_BreakTagSplit(t *testing.T) {
	text := "Key Contacts: Abhushan<br>Sahu, CTO"

	got := RepairContactName(text, "Abhushan Sahu")

	assert.Contains(t, got, "Abhushan Sahu")
	assert.NotContains(t, got, "<br>")
}

func TestRepairContactName_WhitespaceSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"newline split", "Contact: Michael\nStevens, VP Sales"},
		{"multi space split", "Contact: Michael    Stevens, VP Sales"},
		{"mixed case", "Contact: MICHAEL\n stevens, VP Sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairContactName(tt.text, "Michael Stevens")

			assert.Contains(t, got, "Michael Stevens")
		})
	}
}

func TestRepairContactName_WhitespaceSplit_RepairsAllOccurrences(t *testing.T) {
	text := "Michael\nStevens spoke first. Later Michael  Stevens closed."

	got := RepairContactName(text, "Michael Stevens")

	assert.Equal(t, 2, strings.Count(got, "Michael Stevens"))
}

func TestRepairContactName_ProximityInjection(t *testing.T) {
	// First and last tokens separated by a title; whitespace repair
	// cannot match, so the canonical name is injected before the span.
	text := "Michael (VP of Sales) Stevens will attend."

	got := RepairContactName(text, "Michael Stevens")

	assert.Contains(t, got, "Michael Stevens")
	// Injection preserves the original span rather than replacing it.
	assert.Contains(t, got, "(VP of Sales)")
}

func TestRepairContactName_ProximityRespectsDistanceCap(t *testing.T) {
	filler := strings.Repeat("x", 300)
	text := "Michael " + filler + " Stevens"

	got := RepairContactName(text, "Michael Stevens")

	assert.Equal(t, text, got, "tokens beyond the proximity span must not trigger injection")
}

func TestRepairContactName_ThreeTokenName(t *testing.T) {
	// Proximity injection only keys on the first and last tokens.
	text := "Mary J.\nWatson joins the call."

	got := RepairContactName(text, "Mary J. Watson")

	assert.Contains(t, got, "Mary J. Watson")
}

func TestRepairContactName_UnrelatedTextUntouched(t *testing.T) {
	text := "Quarterly revenue grew 14% across EMEA."

	assert.Equal(t, text, RepairContactName(text, "Michael Stevens"))
}
