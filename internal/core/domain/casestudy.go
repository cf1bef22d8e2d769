package domain

// CaseStudyRow is one record of the solved-challenges dataset.
// Fields mirror the source spreadsheet columns; missing values stay
// empty here and are rendered as an explicit placeholder by the
// report builder, so downstream consumers always see the same shape.
type CaseStudyRow struct {
	Industry        string
	CustomerInfo    string
	ProblemOverview string
	Challenge       string
	Product         string
	Capability      string
	Solution        string
	Reference       string
}
