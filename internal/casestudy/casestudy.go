// Package casestudy parses the solved-challenges dataset and renders
// the subset relevant to an inferred industry as a prompt-ready report.
package casestudy

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

// MaxEntries caps the number of formatted case studies so the report
// cannot blow up the generation prompt.
const MaxEntries = 30

// notAvailable is rendered in place of missing row fields so the
// report always has a consistent shape.
const notAvailable = "N/A"

// ParseRows reads case-study rows out of CSV text. The first record is
// the header; unknown columns are ignored and short rows tolerated.
func ParseRows(csvText string) ([]domain.CaseStudyRow, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse case-study CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]domain.CaseStudyRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, domain.CaseStudyRow{
			Industry:        field(record, "industry"),
			CustomerInfo:    field(record, "customer_info"),
			ProblemOverview: field(record, "problem_overview"),
			Challenge:       field(record, "challenge"),
			Product:         field(record, "product"),
			Capability:      field(record, "capability"),
			Solution:        field(record, "solution"),
			Reference:       field(record, "reference"),
		})
	}
	return rows, nil
}

// BuildReport renders the case studies matching the inferred industry.
//
// With a confident industry label, only rows whose industry field
// equals it exactly are included; zero matches produce an explicit
// notice, never a silent fallback to all rows. Without a label every
// row is included up to MaxEntries, then the list is truncated with a
// marker. Parse failures become an inline error string; bad
// case-study data must never crash payload assembly.
//
// Empty or whitespace-only input yields an empty report, which callers
// treat as "section absent".
func BuildReport(csvText, label string, matched bool) string {
	if strings.TrimSpace(csvText) == "" {
		return ""
	}

	rows, err := ParseRows(csvText)
	if err != nil {
		return fmt.Sprintf("Error processing Solved Challenges data: %v", err)
	}

	var lines []string
	count := 0
	for _, row := range rows {
		if matched && row.Industry != label {
			continue
		}
		lines = append(lines, formatRow(row)...)

		count++
		if count >= MaxEntries {
			lines = append(lines, "... (List truncated for length)")
			break
		}
	}

	if len(lines) == 0 && matched {
		lines = append(lines, fmt.Sprintf("No specific case studies found for inferred industry: %s", label))
	}
	if len(lines) == 0 {
		return "No solved challenges data found."
	}

	scope := "All"
	if matched {
		scope = label
	}
	header := fmt.Sprintf("Relevant Solved Challenges (Inferred Industry: %s)\n", scope)
	return header + "\n" + strings.Join(lines, "\n")
}

// formatRow renders one case study as a fixed-shape markdown block.
func formatRow(row domain.CaseStudyRow) []string {
	return []string{
		fmt.Sprintf("### Case Study: %s", orNA(row.CustomerInfo)),
		fmt.Sprintf("- **Industry**: %s", orNA(row.Industry)),
		fmt.Sprintf("- **Challenge**: %s", orNA(row.Challenge)),
		fmt.Sprintf("- **Solution (%s)**: %s", orNA(row.Product), orNA(row.Solution)),
		fmt.Sprintf("- **Reference**: %s", orNA(row.Reference)),
		"",
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
