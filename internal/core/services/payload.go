package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

// payloadDocs carries the processed document texts into payload
// assembly.
type payloadDocs struct {
	qpilot    string
	research  string
	playbook  string
	caseStudy string
	linkedIn  string
	task      string
}

// notProvided is rendered for absent context fields so the payload
// shape stays fixed regardless of input completeness.
const notProvided = "N/A"

// buildPayload renders the generation payload in its fixed section
// order: meeting context, strategy context, then one section per
// non-empty document, then the task instructions.
func buildPayload(req domain.BriefRequest, docs payloadDocs) string {
	vendor := req.GTMVendor
	if vendor == "" {
		vendor = defaultGTMVendor
	}

	linkedInField := notProvided
	if docs.linkedIn != "" {
		linkedInField = docs.linkedIn + " (ACTION REQUIRED: FETCH PROFILE)"
	}

	var b strings.Builder
	b.WriteString("You are the Meeting Prep Specialist Agent.\n")
	b.WriteString("Use the following inputs to create a presentation-ready Meeting Brief deck.\n\n")

	b.WriteString("# MEETING CONTEXT\n")
	fmt.Fprintf(&b, "Attendee: %s\n", req.ContactName)
	fmt.Fprintf(&b, "Title: %s\n", orDefault(req.Title))
	fmt.Fprintf(&b, "Company: %s\n", req.CompanyName)
	fmt.Fprintf(&b, "Email: %s\n", orDefault(req.Email))
	fmt.Fprintf(&b, "LinkedIn: %s\n", linkedInField)
	fmt.Fprintf(&b, "Region/City: %s\n", orDefault(req.RegionCity))
	fmt.Fprintf(&b, "GTM Vendor (Us): %s\n\n", vendor)

	b.WriteString("# STRATEGY CONTEXT\n")
	fmt.Fprintf(&b, "Meeting Agenda: %s\n", orDefault(req.MeetingAgenda))
	fmt.Fprintf(&b, "Ultimate Goal (AE Goal): %s\n", orDefault(req.AEGoal))
	if req.Days > 0 {
		fmt.Fprintf(&b, "Recency Window: last %d days\n", req.Days)
	}
	b.WriteString("\n")

	writeSection(&b, "Q-Pilot Document", docs.qpilot)
	writeSection(&b, "Research Document", docs.research)
	writeSection(&b, "Playbook Document", docs.playbook)
	writeSection(&b, "Solved Challenges Document", docs.caseStudy)

	b.WriteString(docs.task)
	b.WriteString("\n")

	return b.String()
}

// writeSection appends a named document section, skipped entirely when
// the content is empty or whitespace.
func writeSection(b *strings.Builder, name, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	fmt.Fprintf(b, "# INPUT: %s\n", name)
	b.WriteString(content)
	b.WriteString("\n\n")
}

func orDefault(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}
