package domain

import "time"

// FileRef points at a caller-supplied document on disk.
// The Path is resolved by the CLI before the request reaches the core.
type FileRef struct {
	// ID is a unique identifier chosen by the caller.
	ID string

	// Filename is the original base name, used for company-id inference.
	Filename string

	// Path is the filesystem location of the document.
	Path string
}

// BriefRequest carries everything needed to assemble one meeting brief.
// Only ContactName and CompanyName are mandatory; every other field
// degrades to an explicit placeholder in the payload.
type BriefRequest struct {
	// Primary contact.
	ContactName string
	Title       string
	CompanyName string
	Email       string
	LinkedInURL string

	// Strategy context.
	MeetingAgenda string
	AEGoal        string
	RegionCity    string
	GTMVendor     string

	// Source documents. Any of these may be nil.
	QPilotDoc           *FileRef
	ResearchDoc         *FileRef
	PlaybookDoc         *FileRef
	SolvedChallengesDoc *FileRef

	// Days is the recency window hint passed through to the prompt.
	Days int

	// Optional identifiers; inferred when empty.
	EventID   string
	CompanyID string
}

// Brief is a generated meeting brief deck.
type Brief struct {
	// ID is the unique identifier for the stored brief.
	ID string

	// EventID groups briefs belonging to the same meeting.
	EventID string

	// CompanyID is the slug of the target company.
	CompanyID string

	// ContactName is the attendee the brief was prepared for.
	ContactName string

	// Step names the pipeline stage that produced this deck.
	Step string

	// Markdown is the full deck content.
	Markdown string

	// CreatedAt is when the brief was generated.
	CreatedAt time.Time
}

// DefaultStep is the pipeline stage recorded for generated briefs.
const DefaultStep = "meeting_prep"
